package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtroode/teashop-server/internal/model"
)

var _ model.TeaStore = (*TeaRepository)(nil)

type TeaRepository struct {
	db *Connection
}

func NewTeaRepository(db *Connection) *TeaRepository {
	return &TeaRepository{db: db}
}

func (r *TeaRepository) List(ctx context.Context) ([]model.Tea, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, origin FROM teas ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list teas: %w", err)
	}
	defer rows.Close()

	teas := []model.Tea{}
	for rows.Next() {
		var tea model.Tea
		if err := rows.Scan(&tea.ID, &tea.Name, &tea.Origin); err != nil {
			return nil, fmt.Errorf("failed to scan tea: %w", err)
		}
		teas = append(teas, tea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teas: %w", err)
	}

	return teas, nil
}

func (r *TeaRepository) Create(ctx context.Context, tea model.Tea) (model.Tea, error) {
	query := `INSERT INTO teas (name, origin) VALUES (?, ?)
			  RETURNING id, name, origin`

	var saved model.Tea
	err := r.db.QueryRowContext(ctx, query, tea.Name, tea.Origin).Scan(&saved.ID, &saved.Name, &saved.Origin)
	if err != nil {
		return model.Tea{}, fmt.Errorf("failed to create tea: %w", err)
	}

	return saved, nil
}

func (r *TeaRepository) Update(ctx context.Context, tea model.Tea) (model.Tea, error) {
	query := `UPDATE teas SET name = ?, origin = ? WHERE id = ?
			  RETURNING id, name, origin`

	var saved model.Tea
	err := r.db.QueryRowContext(ctx, query, tea.Name, tea.Origin, tea.ID).Scan(&saved.ID, &saved.Name, &saved.Origin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Tea{}, model.ErrNotFound
		}
		return model.Tea{}, fmt.Errorf("failed to update tea: %w", err)
	}

	return saved, nil
}

func (r *TeaRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teas WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tea: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}
