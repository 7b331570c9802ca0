package user

import (
	"context"
)

// Repository define a interface para operações de repositório de usuários.
// O cadastro de usuários é mantido por fluxos externos a este serviço; aqui
// apenas consultamos e atualizamos o papel do usuário.
type Repository interface {
	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByPhone busca um usuário pelo telefone
	FindByPhone(ctx context.Context, phone string) (*User, error)

	// FindBySelectedFilial lista os usuários que selecionaram a filial informada
	FindBySelectedFilial(ctx context.Context, filialText string) ([]*User, error)

	// Update atualiza os dados de um usuário existente
	Update(ctx context.Context, u *User) error
}
