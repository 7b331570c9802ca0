package filial

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrFilialNotFound = errors.New("filial não encontrada")
	ErrOwnerNotFound  = errors.New("usuário com o telefone informado não encontrado")
	ErrOwnerIsAdmin   = errors.New("não é possível criar filial para usuário com papel de administrador")
	ErrOwnerHasFilial = errors.New("o usuário já possui uma filial")
	ErrOwnerMissing   = errors.New("usuário vinculado à filial não encontrado")
	ErrPhoneRequired  = errors.New("telefone não informado")
)

// Filial representa uma filial vinculada a exatamente um usuário operador.
// O registro não possui operação de atualização: é criado e, eventualmente,
// removido.
type Filial struct {
	ID        string    `json:"id"`        // Identificador do registro (chave de remoção)
	FilialID  string    `json:"filial_id"` // Identificador externo informado pelo chamador
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	UserPhone string    `json:"user_phone"` // Telefone do usuário dono, copiado na criação
	UserID    string    `json:"user_id"`    // Referência ao usuário dono
	CreatedAt time.Time `json:"created_at"`
}

// NewFilial cria uma nova filial vinculada ao usuário informado
func NewFilial(filialID, name, address, userPhone, userID string) *Filial {
	return &Filial{
		ID:        uuid.New().String(),
		FilialID:  filialID,
		Name:      name,
		Address:   address,
		UserPhone: userPhone,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
}
