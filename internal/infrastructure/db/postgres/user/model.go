package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		UserID    uuid.UUID
		FullName  string
		MobNum    string
		PanNum    string
		ManagerID uuid.UUID

		CreatedAt time.Time
		UpdatedAt time.Time

		IsActive bool
	}
	Users []*User
)
