package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/filial-service/internal/domain/filial"
	"github.com/hugohenrick/filial-service/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresFilialRepository implementa a interface filial.Repository usando PostgreSQL
type PostgresFilialRepository struct {
	db *database.PostgresDB
}

// NewPostgresFilialRepository cria uma nova instância de PostgresFilialRepository
func NewPostgresFilialRepository(db *database.PostgresDB) *PostgresFilialRepository {
	return &PostgresFilialRepository{
		db: db,
	}
}

// Create implementa filial.Repository.Create
func (r *PostgresFilialRepository) Create(ctx context.Context, f *filial.Filial) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO filiais (
				id, filial_id, name, address, user_phone, user_id, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7
			)
		`

		_, err := tx.Exec(ctx, query,
			f.ID,
			f.FilialID,
			f.Name,
			f.Address,
			f.UserPhone,
			f.UserID,
			f.CreatedAt,
		)

		if err != nil {
			return fmt.Errorf("falha ao inserir filial: %w", err)
		}

		return nil
	})
}

// FindByID implementa filial.Repository.FindByID
func (r *PostgresFilialRepository) FindByID(ctx context.Context, id string) (*filial.Filial, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	return r.findFilialByQuery(ctx, conn,
		"SELECT id, filial_id, name, address, user_phone, user_id, created_at FROM filiais WHERE id = $1", id)
}

// FindByUserID implementa filial.Repository.FindByUserID
func (r *PostgresFilialRepository) FindByUserID(ctx context.Context, userID string) (*filial.Filial, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	return r.findFilialByQuery(ctx, conn,
		"SELECT id, filial_id, name, address, user_phone, user_id, created_at FROM filiais WHERE user_id = $1", userID)
}

// FindByUserPhone implementa filial.Repository.FindByUserPhone
func (r *PostgresFilialRepository) FindByUserPhone(ctx context.Context, phone string) (*filial.Filial, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	return r.findFilialByQuery(ctx, conn,
		"SELECT id, filial_id, name, address, user_phone, user_id, created_at FROM filiais WHERE user_phone = $1", phone)
}

// findFilialByQuery é um método auxiliar para executar queries de busca de filial
func (r *PostgresFilialRepository) findFilialByQuery(ctx context.Context, conn *pgxpool.Conn, query string, args ...interface{}) (*filial.Filial, error) {
	f := &filial.Filial{}

	err := conn.QueryRow(ctx, query, args...).Scan(
		&f.ID,
		&f.FilialID,
		&f.Name,
		&f.Address,
		&f.UserPhone,
		&f.UserID,
		&f.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, filial.ErrFilialNotFound
		}
		return nil, fmt.Errorf("falha ao buscar filial: %w", err)
	}

	return f, nil
}

// List implementa filial.Repository.List
func (r *PostgresFilialRepository) List(ctx context.Context) ([]*filial.Filial, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		SELECT
			id, filial_id, name, address, user_phone, user_id, created_at
		FROM
			filiais
		ORDER BY
			created_at ASC
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar filiais: %w", err)
	}
	defer rows.Close()

	var filials []*filial.Filial

	for rows.Next() {
		f := &filial.Filial{}

		err := rows.Scan(
			&f.ID,
			&f.FilialID,
			&f.Name,
			&f.Address,
			&f.UserPhone,
			&f.UserID,
			&f.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("falha ao ler filial: %w", err)
		}

		filials = append(filials, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return filials, nil
}

// Delete implementa filial.Repository.Delete
func (r *PostgresFilialRepository) Delete(ctx context.Context, id string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	result, err := conn.Exec(ctx, "DELETE FROM filiais WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("falha ao excluir filial: %w", err)
	}

	if result.RowsAffected() == 0 {
		return filial.ErrFilialNotFound
	}

	return nil
}
