package dto

import (
	"time"

	"github.com/hugohenrick/filial-service/internal/domain/filial"
)

// FilialRequest representa a estrutura de dados para criação de filial
type FilialRequest struct {
	FilialID  string `json:"filial_id"`
	Name      string `json:"name" binding:"required"`
	UserPhone string `json:"user_phone" binding:"required"`
	Address   string `json:"address"`
}

// FilialResponse representa a estrutura de resposta para filial
type FilialResponse struct {
	ID        string    `json:"id"`
	FilialID  string    `json:"filial_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	UserPhone string    `json:"user_phone"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FilialWithOwnerResponse agrupa uma filial e o usuário dono. User é nulo
// quando o telefone copiado na criação não corresponde mais a nenhum usuário.
type FilialWithOwnerResponse struct {
	Filial FilialResponse `json:"filial"`
	User   *UserResponse  `json:"user"`
}

// FilialListResponse representa a resposta de listagem de filiais
type FilialListResponse struct {
	Filials    []FilialWithOwnerResponse `json:"filials"`
	TotalCount int                       `json:"total_count"`
}

// ToFilialResponse converte um modelo de domínio em uma resposta DTO
func ToFilialResponse(f *filial.Filial) FilialResponse {
	return FilialResponse{
		ID:        f.ID,
		FilialID:  f.FilialID,
		Name:      f.Name,
		Address:   f.Address,
		UserPhone: f.UserPhone,
		UserID:    f.UserID,
		CreatedAt: f.CreatedAt,
	}
}

// ToFilialListResponse converte as filiais e seus donos para o formato de resposta
func ToFilialListResponse(listings []filial.Listing) FilialListResponse {
	response := FilialListResponse{
		Filials:    make([]FilialWithOwnerResponse, len(listings)),
		TotalCount: len(listings),
	}

	for i, l := range listings {
		item := FilialWithOwnerResponse{
			Filial: ToFilialResponse(l.Filial),
		}
		if l.Owner != nil {
			owner := ToUserResponse(l.Owner)
			item.User = &owner
		}
		response.Filials[i] = item
	}

	return response
}
