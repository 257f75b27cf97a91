// internal/service/session/session_service.go
package session

import (
	"context"
	"errors"
	"fmt"

	"bookings-service/internal/domain/session"
	"bookings-service/internal/domain/teacher"
	"bookings-service/internal/domain/user"
	xerrors "bookings-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type SessionStore interface {
	FindAll(ctx context.Context) ([]session.Session, error)
	FindByID(ctx context.Context, id int64) (*session.Session, error)
	Create(ctx context.Context, s *session.Session) error
	Update(ctx context.Context, id int64, s *session.Session) error
	Delete(ctx context.Context, id int64) error
}

type UserStore interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)
}

type TeacherStore interface {
	FindByID(ctx context.Context, id int64) (*teacher.Teacher, error)
}

// SessionService owns the roster invariants: it is the only place that
// decides membership, purely by user id equality.
type SessionService struct {
	sessions SessionStore
	users    UserStore
	teachers TeacherStore
	logger   *zap.Logger
}

func NewSessionService(sessions SessionStore, users UserStore, teachers TeacherStore, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessions: sessions,
		users:    users,
		teachers: teachers,
		logger:   logger,
	}
}

// FindAll retrieves every session.
func (s *SessionService) FindAll(ctx context.Context) ([]session.Session, error) {
	return s.sessions.FindAll(ctx)
}

// GetByID retrieves one session; a missing id is a first-class NotFound.
func (s *SessionService) GetByID(ctx context.Context, id int64) (*session.Session, error) {
	sess, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.NotFound("Session not found")
		}
		return nil, err
	}
	sess.NormalizeRoster()
	return sess, nil
}

// Create persists a new session built from the payload. No existence
// precondition beyond the referenced teacher and users.
func (s *SessionService) Create(ctx context.Context, req *session.SessionRequest) (*session.Session, error) {
	sess, err := s.toEntity(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("session created", zap.Int64("session_id", sess.ID))
	return sess, nil
}

// Update verifies existence, then persists with the id forced to the path
// id; an id embedded in the payload is never honored.
func (s *SessionService) Update(ctx context.Context, id int64, req *session.SessionRequest) (*session.Session, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	sess, err := s.toEntity(ctx, req)
	if err != nil {
		return nil, err
	}

	sess.ID = id
	if err := s.sessions.Update(ctx, id, sess); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	s.logger.Info("session updated", zap.Int64("session_id", id))
	return sess, nil
}

// Delete verifies existence, then removes the session.
func (s *SessionService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Info("session deleted", zap.Int64("session_id", id))
	return nil
}

// Participate adds a user to a session roster. Duplicate joins fail without
// touching the roster.
func (s *SessionService) Participate(ctx context.Context, sessionID, userID int64) error {
	sess, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return xerrors.NotFound("User not found")
		}
		return err
	}

	if sess.HasParticipant(userID) {
		return xerrors.BadRequest("User is already participating in this session")
	}

	sess.Users = append(sess.Users, *u)
	if err := s.sessions.Update(ctx, sessionID, sess); err != nil {
		return fmt.Errorf("failed to save participation: %w", err)
	}

	s.logger.Info("user joined session",
		zap.Int64("session_id", sessionID),
		zap.Int64("user_id", userID),
	)
	return nil
}

// NoLongerParticipate removes a user from a session roster. Leaving a
// session the user is not in fails without touching the roster.
func (s *SessionService) NoLongerParticipate(ctx context.Context, sessionID, userID int64) error {
	sess, err := s.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if !sess.HasParticipant(userID) {
		return xerrors.BadRequest("User is not participating in this session")
	}

	kept := make([]user.User, 0, len(sess.Users))
	for _, u := range sess.Users {
		if u.ID != userID {
			kept = append(kept, u)
		}
	}
	sess.Users = kept

	if err := s.sessions.Update(ctx, sessionID, sess); err != nil {
		return fmt.Errorf("failed to save participation: %w", err)
	}

	s.logger.Info("user left session",
		zap.Int64("session_id", sessionID),
		zap.Int64("user_id", userID),
	)
	return nil
}

// toEntity resolves the payload's teacher and user references. A nil users
// list is normalized to an empty roster, never left nil.
func (s *SessionService) toEntity(ctx context.Context, req *session.SessionRequest) (*session.Session, error) {
	sess := &session.Session{
		Name:        req.Name,
		Date:        req.Date,
		Description: req.Description,
		Users:       []user.User{},
	}

	if req.TeacherID != nil {
		t, err := s.teachers.FindByID(ctx, *req.TeacherID)
		if err != nil {
			if errors.Is(err, xerrors.ErrNotFound) {
				return nil, xerrors.NotFound("Teacher not found")
			}
			return nil, err
		}
		sess.TeacherID = &t.ID
	}

	for _, userID := range req.Users {
		u, err := s.users.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, xerrors.ErrNotFound) {
				return nil, xerrors.NotFound(fmt.Sprintf("User not found with id: %d", userID))
			}
			return nil, err
		}
		sess.Users = append(sess.Users, *u)
	}

	return sess, nil
}
