package filial

import (
	"context"
)

// Repository define as operações de persistência para filiais
type Repository interface {
	// Create persiste uma nova filial
	Create(ctx context.Context, f *Filial) error

	// FindByID busca uma filial pelo ID do registro
	FindByID(ctx context.Context, id string) (*Filial, error)

	// FindByUserID busca a filial vinculada ao usuário informado
	FindByUserID(ctx context.Context, userID string) (*Filial, error)

	// FindByUserPhone busca a filial pelo telefone do usuário dono
	FindByUserPhone(ctx context.Context, phone string) (*Filial, error)

	// List retorna todas as filiais ordenadas pela data de criação
	List(ctx context.Context) ([]*Filial, error)

	// Delete remove uma filial
	Delete(ctx context.Context, id string) error
}
