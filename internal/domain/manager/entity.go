package manager

import "github.com/google/uuid"

// Manager is the fixed, pre-seeded owning entity Users reference.
// The seed set is created at migration time; only the activity flag is
// relevant to the rest of the system, and nothing here mutates it.
type (
	UUID    = uuid.UUID
	Manager struct {
		ManagerID UUID
		IsActive  bool
	}
	Managers []*Manager
)
