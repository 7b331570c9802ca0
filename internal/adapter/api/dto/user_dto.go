package dto

import (
	"time"

	"github.com/hugohenrick/filial-service/internal/domain/user"
)

// UserResponse representa a estrutura de resposta para usuário
type UserResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Role           string    `json:"role"`
	SelectedFilial string    `json:"selected_filial"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserListResponse representa a resposta de listagem de usuários
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	TotalCount int            `json:"total_count"`
}

// ToUserResponse converte um modelo de domínio em uma resposta DTO
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Phone:          u.Phone,
		Role:           string(u.Role),
		SelectedFilial: u.SelectedFilial,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// ToUserListResponse converte uma lista de usuários para o formato de resposta
func ToUserListResponse(users []*user.User) UserListResponse {
	response := UserListResponse{
		Users:      make([]UserResponse, len(users)),
		TotalCount: len(users),
	}

	for i, u := range users {
		response.Users[i] = ToUserResponse(u)
	}

	return response
}
