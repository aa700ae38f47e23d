package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/teashop-server/internal/model"
)

var _ model.TeaStore = (*TeaRepository)(nil)

type TeaRepository struct {
	db *Connection
}

func NewTeaRepository(db *Connection) *TeaRepository {
	return &TeaRepository{
		db: db,
	}
}

func (r *TeaRepository) List(ctx context.Context) ([]model.Tea, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, origin FROM teas ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list teas: %w", err)
	}

	teas, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Tea, error) {
		var tea model.Tea
		err := row.Scan(&tea.ID, &tea.Name, &tea.Origin)
		return tea, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan teas: %w", err)
	}
	if teas == nil {
		teas = []model.Tea{}
	}

	return teas, nil
}

func (r *TeaRepository) Create(ctx context.Context, tea model.Tea) (model.Tea, error) {
	query := `INSERT INTO teas (name, origin) VALUES ($1, $2)
			  RETURNING id, name, origin`

	var saved model.Tea
	err := r.db.QueryRow(ctx, query, tea.Name, tea.Origin).Scan(&saved.ID, &saved.Name, &saved.Origin)
	if err != nil {
		return model.Tea{}, fmt.Errorf("failed to create tea: %w", err)
	}

	return saved, nil
}

func (r *TeaRepository) Update(ctx context.Context, tea model.Tea) (model.Tea, error) {
	query := `UPDATE teas SET name = $1, origin = $2 WHERE id = $3
			  RETURNING id, name, origin`

	var saved model.Tea
	err := r.db.QueryRow(ctx, query, tea.Name, tea.Origin, tea.ID).Scan(&saved.ID, &saved.Name, &saved.Origin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Tea{}, model.ErrNotFound
		}
		return model.Tea{}, fmt.Errorf("failed to update tea: %w", err)
	}

	return saved, nil
}

func (r *TeaRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM teas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tea: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
