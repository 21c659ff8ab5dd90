package user

import (
	"user-records-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		UserID:    uDomain.UserID,
		FullName:  uDomain.FullName,
		MobNum:    uDomain.MobNum,
		PanNum:    uDomain.PanNum,
		ManagerID: uDomain.ManagerID,
		CreatedAt: uDomain.CreatedAt,
		UpdatedAt: uDomain.UpdatedAt,
		IsActive:  uDomain.IsActive,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}
