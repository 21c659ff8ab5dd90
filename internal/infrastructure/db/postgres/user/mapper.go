package user

import (
	domain "user-records-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		UserID:    model.UserID,
		FullName:  model.FullName,
		MobNum:    model.MobNum,
		PanNum:    model.PanNum,
		ManagerID: model.ManagerID,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,

		IsActive: model.IsActive,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
