package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		UserID    uuid.UUID `json:"user_id"`
		FullName  string    `json:"full_name"`
		MobNum    string    `json:"mob_num"`
		PanNum    string    `json:"pan_num"`
		ManagerID uuid.UUID `json:"manager_id"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
		IsActive  bool      `json:"is_active"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
