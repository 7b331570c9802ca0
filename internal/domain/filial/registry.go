package filial

import (
	"context"
	"errors"

	"github.com/hugohenrick/filial-service/internal/domain/user"
)

// Listing agrupa uma filial e o usuário dono correspondente. Owner é nil
// quando o telefone copiado na criação não corresponde mais a nenhum usuário.
type Listing struct {
	Filial *Filial
	Owner  *user.User
}

// Registry concentra as regras de negócio de filiais: garante uma única
// filial por usuário e mantém a troca de papel do usuário dono como efeito
// colateral da criação e remoção.
type Registry struct {
	filials Repository
	users   user.Repository
}

// NewRegistry cria uma nova instância de Registry
func NewRegistry(filials Repository, users user.Repository) *Registry {
	return &Registry{
		filials: filials,
		users:   users,
	}
}

// Create cria uma nova filial para o usuário identificado pelo telefone.
// O papel do usuário é alterado para "filial" e persistido antes do registro
// da filial; se a gravação da filial falhar em seguida, a troca de papel não
// é desfeita.
func (r *Registry) Create(ctx context.Context, filialID, name, userPhone, address string) (*Filial, error) {
	// Verificar se existe um usuário com o telefone informado
	owner, err := r.users.FindByPhone(ctx, userPhone)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	// Administradores não podem ser donos de filial
	if owner.IsAdmin() {
		return nil, ErrOwnerIsAdmin
	}

	// Verificar se o usuário já possui uma filial
	_, err = r.filials.FindByUserID(ctx, owner.ID)
	if err == nil {
		return nil, ErrOwnerHasFilial
	}
	if !errors.Is(err, ErrFilialNotFound) {
		return nil, err
	}

	// Atribuir o papel "filial" ao usuário antes de gravar o registro
	owner.SetRole(user.RoleFilial)
	if err := r.users.Update(ctx, owner); err != nil {
		return nil, err
	}

	f := NewFilial(filialID, name, address, userPhone, owner.ID)
	if err := r.filials.Create(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

// ListAll retorna todas as filiais ordenadas pela data de criação, cada uma
// acompanhada do usuário dono localizado pelo telefone copiado na criação.
// Uma filial cujo telefone não corresponde a nenhum usuário entra na lista
// com Owner nil em vez de abortar a consulta.
func (r *Registry) ListAll(ctx context.Context) ([]Listing, error) {
	filials, err := r.filials.List(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]Listing, 0, len(filials))
	for _, f := range filials {
		owner, err := r.users.FindByPhone(ctx, f.UserPhone)
		if err != nil {
			if !errors.Is(err, user.ErrUserNotFound) {
				return nil, err
			}
			owner = nil
		}
		listings = append(listings, Listing{Filial: f, Owner: owner})
	}

	return listings, nil
}

// Delete remove a filial identificada pelo ID do registro e devolve o papel
// "client" ao usuário dono. A troca de papel é incondicional e é persistida
// antes da remoção do registro, espelhando a ordem da criação.
func (r *Registry) Delete(ctx context.Context, id string) error {
	f, err := r.filials.FindByID(ctx, id)
	if err != nil {
		return err
	}

	// Localizar o usuário vinculado à filial
	owner, err := r.users.FindByID(ctx, f.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return ErrOwnerMissing
		}
		return err
	}

	// Devolver o papel "client" ao usuário
	owner.SetRole(user.RoleClient)
	if err := r.users.Update(ctx, owner); err != nil {
		return err
	}

	return r.filials.Delete(ctx, id)
}

// FindByUserPhone busca a filial pelo telefone do usuário dono
func (r *Registry) FindByUserPhone(ctx context.Context, phone string) (*Filial, error) {
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	return r.filials.FindByUserPhone(ctx, phone)
}

// FindUsersByFilial lista os usuários cuja filial selecionada corresponde ao
// nome informado. A seleção é autodeclarada pelo usuário e independe de
// vínculo de propriedade com alguma filial.
func (r *Registry) FindUsersByFilial(ctx context.Context, filialText string) ([]*user.User, error) {
	users, err := r.users.FindBySelectedFilial(ctx, filialText)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, user.ErrNoUsersFound
	}

	return users, nil
}
