package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID = uuid.UUID
	User struct {
		UserID    UUID
		FullName  string
		MobNum    string
		PanNum    string
		ManagerID UUID

		CreatedAt time.Time
		UpdatedAt time.Time

		IsActive bool
	}
	Users []*User

	// Patch carries the editable fields of a batch update; a nil field
	// keeps the stored value.
	Patch struct {
		FullName  *string
		MobNum    *string
		PanNum    *string
		ManagerID *UUID
	}
)
