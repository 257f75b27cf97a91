// internal/repository/postgres/teacher_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"bookings-service/internal/domain/teacher"
	xerrors "bookings-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeacherRepository struct {
	db *pgxpool.Pool
}

func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// FindAll retrieves all teachers ordered by id
func (r *TeacherRepository) FindAll(ctx context.Context) ([]teacher.Teacher, error) {
	query := `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM teachers
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	defer rows.Close()

	teachers := []teacher.Teacher{}
	for rows.Next() {
		var t teacher.Teacher
		if err := rows.Scan(&t.ID, &t.FirstName, &t.LastName, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan teacher: %w", err)
		}
		teachers = append(teachers, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}

	return teachers, nil
}

// FindByID retrieves a teacher by ID
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*teacher.Teacher, error) {
	query := `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM teachers
		WHERE id = $1
	`

	var t teacher.Teacher
	err := r.db.QueryRow(ctx, query, id).Scan(&t.ID, &t.FirstName, &t.LastName, &t.CreatedAt, &t.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find teacher: %w", err)
	}

	return &t, nil
}
