package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/filial-service/internal/domain/user"
	"github.com/hugohenrick/filial-service/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresUserRepository implementa a interface user.Repository usando PostgreSQL.
// O cadastro de usuários é alimentado por fluxos externos; este repositório
// cobre apenas as consultas e a atualização usadas pelo registro de filiais.
type PostgresUserRepository struct {
	db *database.PostgresDB
}

// NewPostgresUserRepository cria uma nova instância de PostgresUserRepository
func NewPostgresUserRepository(db *database.PostgresDB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

// FindByID implementa user.Repository.FindByID
func (r *PostgresUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	return r.findUserByQuery(ctx, conn,
		"SELECT id, name, phone, role, selected_filial, created_at, updated_at FROM users WHERE id = $1", id)
}

// FindByPhone implementa user.Repository.FindByPhone
func (r *PostgresUserRepository) FindByPhone(ctx context.Context, phone string) (*user.User, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	return r.findUserByQuery(ctx, conn,
		"SELECT id, name, phone, role, selected_filial, created_at, updated_at FROM users WHERE phone = $1", phone)
}

// findUserByQuery é um método auxiliar para executar queries de busca de usuário
func (r *PostgresUserRepository) findUserByQuery(ctx context.Context, conn *pgxpool.Conn, query string, args ...interface{}) (*user.User, error) {
	u := &user.User{}

	var role string

	err := conn.QueryRow(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.Phone,
		&role,
		&u.SelectedFilial,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	u.Role = user.Role(role)

	return u, nil
}

// FindBySelectedFilial implementa user.Repository.FindBySelectedFilial
func (r *PostgresUserRepository) FindBySelectedFilial(ctx context.Context, filialText string) ([]*user.User, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		SELECT
			id, name, phone, role, selected_filial, created_at, updated_at
		FROM
			users
		WHERE
			selected_filial = $1
	`

	rows, err := conn.Query(ctx, query, filialText)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar usuários: %w", err)
	}
	defer rows.Close()

	var users []*user.User

	for rows.Next() {
		u := &user.User{}
		var role string

		err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Phone,
			&role,
			&u.SelectedFilial,
			&u.CreatedAt,
			&u.UpdatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("falha ao ler usuário: %w", err)
		}

		u.Role = user.Role(role)
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return users, nil
}

// Update implementa user.Repository.Update
func (r *PostgresUserRepository) Update(ctx context.Context, u *user.User) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		UPDATE users
		SET
			name = $1,
			phone = $2,
			role = $3,
			selected_filial = $4,
			updated_at = $5
		WHERE
			id = $6
	`

	result, err := conn.Exec(ctx, query,
		u.Name,
		u.Phone,
		string(u.Role),
		u.SelectedFilial,
		u.UpdatedAt,
		u.ID,
	)

	if err != nil {
		return fmt.Errorf("falha ao atualizar usuário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
