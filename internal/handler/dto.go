package handler

import (
	"time"

	"github.com/NattanSilva/curd-user-and-admin/internal/domain"
)

// UserDTO is the JSON projection of a user record. The password hash is
// not part of it and must never be.
type UserDTO struct {
	UUID      string `json:"uuid"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsAdm     bool   `json:"isAdm"`
	CreatedOn string `json:"createdOn"`
	UpdatedOn string `json:"updatedOn"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		UUID:      u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdm:     u.IsAdm,
		CreatedOn: u.CreatedAt.Format(time.RFC3339),
		UpdatedOn: u.UpdatedAt.Format(time.RFC3339),
	}
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = toUserDTO(&users[i])
	}
	return dtos
}
