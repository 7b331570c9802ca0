package filial

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/filial-service/internal/domain/user"
)

// memFilialRepo é uma implementação em memória de Repository para os testes
type memFilialRepo struct {
	filials   []*Filial
	createErr error
}

func (m *memFilialRepo) Create(_ context.Context, f *Filial) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.filials = append(m.filials, f)
	return nil
}

func (m *memFilialRepo) FindByID(_ context.Context, id string) (*Filial, error) {
	for _, f := range m.filials {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, ErrFilialNotFound
}

func (m *memFilialRepo) FindByUserID(_ context.Context, userID string) (*Filial, error) {
	for _, f := range m.filials {
		if f.UserID == userID {
			return f, nil
		}
	}
	return nil, ErrFilialNotFound
}

func (m *memFilialRepo) FindByUserPhone(_ context.Context, phone string) (*Filial, error) {
	for _, f := range m.filials {
		if f.UserPhone == phone {
			return f, nil
		}
	}
	return nil, ErrFilialNotFound
}

func (m *memFilialRepo) List(_ context.Context) ([]*Filial, error) {
	out := make([]*Filial, len(m.filials))
	copy(out, m.filials)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memFilialRepo) Delete(_ context.Context, id string) error {
	for i, f := range m.filials {
		if f.ID == id {
			m.filials = append(m.filials[:i], m.filials[i+1:]...)
			return nil
		}
	}
	return ErrFilialNotFound
}

// memUserRepo é uma implementação em memória de user.Repository para os testes
type memUserRepo struct {
	users       []*user.User
	phoneCalls  int
	updateCalls int
}

func (m *memUserRepo) FindByID(_ context.Context, id string) (*user.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (m *memUserRepo) FindByPhone(_ context.Context, phone string) (*user.User, error) {
	m.phoneCalls++
	for _, u := range m.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (m *memUserRepo) FindBySelectedFilial(_ context.Context, filialText string) ([]*user.User, error) {
	var out []*user.User
	for _, u := range m.users {
		if u.SelectedFilial == filialText {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUserRepo) Update(_ context.Context, u *user.User) error {
	m.updateCalls++
	for i, existing := range m.users {
		if existing.ID == u.ID {
			m.users[i] = u
			return nil
		}
	}
	return user.ErrUserNotFound
}

func newClient(id, phone string) *user.User {
	return &user.User{
		ID:        id,
		Name:      "Usuário " + id,
		Phone:     phone,
		Role:      user.RoleClient,
		CreatedAt: time.Now(),
	}
}

func newRegistry(filials *memFilialRepo, users *memUserRepo) *Registry {
	return NewRegistry(filials, users)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("cria filial e atribui papel filial ao dono", func(t *testing.T) {
		users := &memUserRepo{users: []*user.User{newClient("u1", "5511999990001")}}
		filials := &memFilialRepo{}
		registry := newRegistry(filials, users)

		f, err := registry.Create(ctx, "F-001", "Filial Centro", "5511999990001", "Rua Principal, 100")
		require.NoError(t, err)
		require.NotNil(t, f)

		assert.NotEmpty(t, f.ID)
		assert.Equal(t, "F-001", f.FilialID)
		assert.Equal(t, "Filial Centro", f.Name)
		assert.Equal(t, "Rua Principal, 100", f.Address)
		assert.Equal(t, "5511999990001", f.UserPhone)
		assert.Equal(t, "u1", f.UserID)

		owner, err := users.FindByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, user.RoleFilial, owner.Role)
		assert.Len(t, filials.filials, 1)
	})

	t.Run("telefone sem usuário correspondente", func(t *testing.T) {
		users := &memUserRepo{}
		filials := &memFilialRepo{}
		registry := newRegistry(filials, users)

		f, err := registry.Create(ctx, "F-001", "Filial Centro", "5511000000000", "Rua Principal, 100")
		assert.ErrorIs(t, err, ErrOwnerNotFound)
		assert.Nil(t, f)
		assert.Empty(t, filials.filials)
		assert.Zero(t, users.updateCalls)
	})

	t.Run("administrador não pode ser dono de filial", func(t *testing.T) {
		admin := newClient("u1", "5511999990001")
		admin.Role = user.RoleAdmin
		users := &memUserRepo{users: []*user.User{admin}}
		filials := &memFilialRepo{}
		registry := newRegistry(filials, users)

		_, err := registry.Create(ctx, "F-001", "Filial Centro", "5511999990001", "Rua Principal, 100")
		assert.ErrorIs(t, err, ErrOwnerIsAdmin)
		assert.Empty(t, filials.filials)
		assert.Equal(t, user.RoleAdmin, admin.Role)
		assert.Zero(t, users.updateCalls)
	})

	t.Run("usuário já possui filial", func(t *testing.T) {
		users := &memUserRepo{users: []*user.User{newClient("u1", "5511999990001")}}
		filials := &memFilialRepo{}
		registry := newRegistry(filials, users)

		first, err := registry.Create(ctx, "F-001", "Filial Centro", "5511999990001", "Rua Principal, 100")
		require.NoError(t, err)

		_, err = registry.Create(ctx, "F-002", "Filial Norte", "5511999990001", "Avenida Norte, 200")
		assert.ErrorIs(t, err, ErrOwnerHasFilial)

		require.Len(t, filials.filials, 1)
		assert.Equal(t, first.ID, filials.filials[0].ID)

		owner, err := users.FindByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, user.RoleFilial, owner.Role)
	})

	t.Run("falha ao gravar a filial não desfaz a troca de papel", func(t *testing.T) {
		users := &memUserRepo{users: []*user.User{newClient("u1", "5511999990001")}}
		filials := &memFilialRepo{createErr: errors.New("conexão perdida")}
		registry := newRegistry(filials, users)

		_, err := registry.Create(ctx, "F-001", "Filial Centro", "5511999990001", "Rua Principal, 100")
		require.Error(t, err)

		// Janela de inconsistência conhecida: o papel já foi persistido
		owner, findErr := users.FindByID(ctx, "u1")
		require.NoError(t, findErr)
		assert.Equal(t, user.RoleFilial, owner.Role)
		assert.Empty(t, filials.filials)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("remove filial e devolve papel client ao dono", func(t *testing.T) {
		users := &memUserRepo{users: []*user.User{newClient("u1", "5511999990001")}}
		filials := &memFilialRepo{}
		registry := newRegistry(filials, users)

		f, err := registry.Create(ctx, "F-001", "Filial Centro", "5511999990001", "Rua Principal, 100")
		require.NoError(t, err)

		require.NoError(t, registry.Delete(ctx, f.ID))

		_, err = filials.FindByID(ctx, f.ID)
		assert.ErrorIs(t, err, ErrFilialNotFound)

		owner, err := users.FindByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, user.RoleClient, owner.Role)
	})

	t.Run("filial inexistente", func(t *testing.T) {
		registry := newRegistry(&memFilialRepo{}, &memUserRepo{})

		err := registry.Delete(ctx, "nao-existe")
		assert.ErrorIs(t, err, ErrFilialNotFound)
	})

	t.Run("filial sem usuário vinculado", func(t *testing.T) {
		f := NewFilial("F-001", "Filial Centro", "Rua Principal, 100", "5511999990001", "u-sumiu")
		filials := &memFilialRepo{filials: []*Filial{f}}
		registry := newRegistry(filials, &memUserRepo{})

		err := registry.Delete(ctx, f.ID)
		assert.ErrorIs(t, err, ErrOwnerMissing)
		// A filial permanece: anomalia de integridade reportada ao chamador
		assert.Len(t, filials.filials, 1)
	})

	t.Run("troca de papel é incondicional mesmo com papel divergente", func(t *testing.T) {
		drifted := newClient("u1", "5511999990001")
		drifted.Role = user.RoleAdmin // papel divergiu por fluxo externo
		f := NewFilial("F-001", "Filial Centro", "Rua Principal, 100", "5511999990001", "u1")
		users := &memUserRepo{users: []*user.User{drifted}}
		filials := &memFilialRepo{filials: []*Filial{f}}
		registry := newRegistry(filials, users)

		require.NoError(t, registry.Delete(ctx, f.ID))
		assert.Equal(t, user.RoleClient, drifted.Role)
	})
}

func TestCreateDeleteRoundTrip(t *testing.T) {
	ctx := context.Background()

	other := newClient("u2", "5511999990002")
	other.SelectedFilial = "Filial Norte"
	users := &memUserRepo{users: []*user.User{newClient("u1", "5511999990001"), other}}
	filials := &memFilialRepo{}
	registry := newRegistry(filials, users)

	f, err := registry.Create(ctx, "F-001", "Filial Centro", "5511999990001", "Rua Principal, 100")
	require.NoError(t, err)
	require.NoError(t, registry.Delete(ctx, f.ID))

	owner, err := users.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, user.RoleClient, owner.Role)

	// O restante do cadastro de usuários permanece intacto
	bystander, err := users.FindByID(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, user.RoleClient, bystander.Role)
	assert.Equal(t, "Filial Norte", bystander.SelectedFilial)
	assert.Empty(t, filials.filials)
}

func TestListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("ordena por data de criação ascendente", func(t *testing.T) {
		u1 := newClient("u1", "5511999990001")
		u2 := newClient("u2", "5511999990002")
		u3 := newClient("u3", "5511999990003")
		users := &memUserRepo{users: []*user.User{u1, u2, u3}}

		base := time.Now()
		newest := NewFilial("F-003", "Filial Sul", "Rua C", "5511999990003", "u3")
		newest.CreatedAt = base.Add(2 * time.Hour)
		oldest := NewFilial("F-001", "Filial Centro", "Rua A", "5511999990001", "u1")
		oldest.CreatedAt = base
		middle := NewFilial("F-002", "Filial Norte", "Rua B", "5511999990002", "u2")
		middle.CreatedAt = base.Add(time.Hour)

		filials := &memFilialRepo{filials: []*Filial{newest, oldest, middle}}
		registry := newRegistry(filials, users)

		listings, err := registry.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, listings, 3)

		assert.Equal(t, "F-001", listings[0].Filial.FilialID)
		assert.Equal(t, "F-002", listings[1].Filial.FilialID)
		assert.Equal(t, "F-003", listings[2].Filial.FilialID)

		for _, l := range listings {
			require.NotNil(t, l.Owner)
			assert.Equal(t, l.Filial.UserPhone, l.Owner.Phone)
		}
	})

	t.Run("telefone sem usuário correspondente não aborta a listagem", func(t *testing.T) {
		users := &memUserRepo{users: []*user.User{newClient("u1", "5511999990001")}}
		linked := NewFilial("F-001", "Filial Centro", "Rua A", "5511999990001", "u1")
		dangling := NewFilial("F-002", "Filial Norte", "Rua B", "5511999990099", "u-sumiu")
		dangling.CreatedAt = linked.CreatedAt.Add(time.Minute)

		filials := &memFilialRepo{filials: []*Filial{linked, dangling}}
		registry := newRegistry(filials, users)

		listings, err := registry.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, listings, 2)

		assert.NotNil(t, listings[0].Owner)
		assert.Nil(t, listings[1].Owner)
	})

	t.Run("lista vazia é um resultado válido", func(t *testing.T) {
		registry := newRegistry(&memFilialRepo{}, &memUserRepo{})

		listings, err := registry.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, listings)
	})
}

func TestFindByUserPhone(t *testing.T) {
	ctx := context.Background()

	t.Run("telefone vazio é rejeitado antes da consulta", func(t *testing.T) {
		users := &memUserRepo{}
		registry := newRegistry(&memFilialRepo{}, users)

		_, err := registry.FindByUserPhone(ctx, "")
		assert.ErrorIs(t, err, ErrPhoneRequired)
		assert.Zero(t, users.phoneCalls)
	})

	t.Run("busca pelo telefone copiado na criação", func(t *testing.T) {
		f := NewFilial("F-001", "Filial Centro", "Rua A", "5511999990001", "u1")
		registry := newRegistry(&memFilialRepo{filials: []*Filial{f}}, &memUserRepo{})

		found, err := registry.FindByUserPhone(ctx, "5511999990001")
		require.NoError(t, err)
		assert.Equal(t, f.ID, found.ID)
	})

	t.Run("nenhuma filial para o telefone", func(t *testing.T) {
		registry := newRegistry(&memFilialRepo{}, &memUserRepo{})

		_, err := registry.FindByUserPhone(ctx, "5511999990001")
		assert.ErrorIs(t, err, ErrFilialNotFound)
	})
}

func TestFindUsersByFilial(t *testing.T) {
	ctx := context.Background()

	t.Run("lista usuários que selecionaram a filial", func(t *testing.T) {
		u1 := newClient("u1", "5511999990001")
		u1.SelectedFilial = "Filial Centro"
		u2 := newClient("u2", "5511999990002")
		u2.SelectedFilial = "Filial Centro"
		u3 := newClient("u3", "5511999990003")
		u3.SelectedFilial = "Filial Norte"
		registry := newRegistry(&memFilialRepo{}, &memUserRepo{users: []*user.User{u1, u2, u3}})

		found, err := registry.FindUsersByFilial(ctx, "Filial Centro")
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "u1", found[0].ID)
		assert.Equal(t, "u2", found[1].ID)
	})

	t.Run("nenhum usuário para a filial é erro, não lista vazia", func(t *testing.T) {
		registry := newRegistry(&memFilialRepo{}, &memUserRepo{})

		found, err := registry.FindUsersByFilial(ctx, "Filial Fantasma")
		assert.ErrorIs(t, err, user.ErrNoUsersFound)
		assert.Nil(t, found)
	})
}
