// internal/repository/postgres/session_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookings-service/internal/domain/session"
	"bookings-service/internal/domain/user"
	xerrors "bookings-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository persists sessions and their rosters. The roster lives in
// session_participants keyed by (session_id, user_id) with an explicit
// position column so insertion order survives round-trips.
type SessionRepository struct {
	db   *pgxpool.Pool
	txdb *DB
}

func NewSessionRepository(db *pgxpool.Pool, txdb *DB) *SessionRepository {
	return &SessionRepository{db: db, txdb: txdb}
}

// FindAll retrieves every session with its roster.
func (r *SessionRepository) FindAll(ctx context.Context) ([]session.Session, error) {
	query := `
		SELECT id, name, date, description, teacher_id, created_at, updated_at
		FROM sessions
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []session.Session{}
	index := map[int64]int{}
	for rows.Next() {
		var s session.Session
		if err := rows.Scan(&s.ID, &s.Name, &s.Date, &s.Description, &s.TeacherID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		s.Users = []user.User{}
		index[s.ID] = len(sessions)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	participantsQuery := `
		SELECT sp.session_id, u.id, u.email, u.first_name, u.last_name, u.password, u.admin, u.created_at, u.updated_at
		FROM session_participants sp
		JOIN users u ON u.id = sp.user_id
		ORDER BY sp.session_id, sp.position
	`

	prows, err := r.db.Query(ctx, participantsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer prows.Close()

	for prows.Next() {
		var sessionID int64
		var u user.User
		if err := prows.Scan(&sessionID, &u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Password, &u.Admin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		if i, ok := index[sessionID]; ok {
			sessions[i].Users = append(sessions[i].Users, u)
		}
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	return sessions, nil
}

// FindByID retrieves a session with its roster ordered by join position.
func (r *SessionRepository) FindByID(ctx context.Context, id int64) (*session.Session, error) {
	query := `
		SELECT id, name, date, description, teacher_id, created_at, updated_at
		FROM sessions
		WHERE id = $1
	`

	var s session.Session
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Date, &s.Description, &s.TeacherID, &s.CreatedAt, &s.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	users, err := r.participants(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Users = users

	return &s, nil
}

func (r *SessionRepository) participants(ctx context.Context, sessionID int64) ([]user.User, error) {
	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, u.password, u.admin, u.created_at, u.updated_at
		FROM session_participants sp
		JOIN users u ON u.id = sp.user_id
		WHERE sp.session_id = $1
		ORDER BY sp.position
	`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Password, &u.Admin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}

	return users, nil
}

// Create persists a session and its roster in one transaction.
func (r *SessionRepository) Create(ctx context.Context, s *session.Session) error {
	tx, err := r.txdb.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO sessions (name, date, description, teacher_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRow(ctx, query, s.Name, s.Date, s.Description, s.TeacherID).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if err := replaceParticipants(ctx, tx, s.ID, s.Users); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update overwrites the session row and its full roster. The session keeps
// the id passed here regardless of what the entity carries.
func (r *SessionRepository) Update(ctx context.Context, id int64, s *session.Session) error {
	tx, err := r.txdb.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE sessions
		SET name = $1, date = $2, description = $3, teacher_id = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := tx.Exec(ctx, query, s.Name, s.Date, s.Description, s.TeacherID, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	s.ID = id
	if err := replaceParticipants(ctx, tx, id, s.Users); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes a session; participants go with it via cascade.
func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

func replaceParticipants(ctx context.Context, tx pgx.Tx, sessionID int64, users []user.User) error {
	if _, err := tx.Exec(ctx, `DELETE FROM session_participants WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("failed to clear participants: %w", err)
	}

	for i, u := range users {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO session_participants (session_id, user_id, position) VALUES ($1, $2, $3)`,
			sessionID, u.ID, i,
		)
		if err != nil {
			return fmt.Errorf("failed to add participant: %w", err)
		}
	}

	return nil
}
