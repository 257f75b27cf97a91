package session

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "bookings-service/internal/domain/session"
	"bookings-service/internal/domain/teacher"
	"bookings-service/internal/domain/user"
	xerrors "bookings-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type mockSessionStore struct {
	sessions map[int64]*domain.Session
	updates  int
}

func (m *mockSessionStore) FindAll(ctx context.Context) ([]domain.Session, error) {
	out := []domain.Session{}
	for _, s := range m.sessions {
		out = append(out, *clone(s))
	}
	return out, nil
}

func (m *mockSessionStore) FindByID(ctx context.Context, id int64) (*domain.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return clone(s), nil
}

func (m *mockSessionStore) Create(ctx context.Context, s *domain.Session) error {
	s.ID = int64(len(m.sessions) + 1)
	m.sessions[s.ID] = clone(s)
	return nil
}

func (m *mockSessionStore) Update(ctx context.Context, id int64, s *domain.Session) error {
	if _, ok := m.sessions[id]; !ok {
		return xerrors.ErrNotFound
	}
	s.ID = id
	m.sessions[id] = clone(s)
	m.updates++
	return nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id int64) error {
	if _, ok := m.sessions[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func clone(s *domain.Session) *domain.Session {
	c := *s
	c.Users = append([]user.User{}, s.Users...)
	return &c
}

type mockUserStore struct {
	users map[int64]*user.User
}

func (m *mockUserStore) FindByID(ctx context.Context, id int64) (*user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return u, nil
}

type mockTeacherStore struct {
	teachers map[int64]*teacher.Teacher
}

func (m *mockTeacherStore) FindByID(ctx context.Context, id int64) (*teacher.Teacher, error) {
	t, ok := m.teachers[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return t, nil
}

func testUser(id int64) user.User {
	return user.User{ID: id, Email: "user@example.com", FirstName: "First", LastName: "Last"}
}

func newTestService(t *testing.T, roster ...user.User) (*SessionService, *mockSessionStore) {
	t.Helper()

	sessions := &mockSessionStore{sessions: map[int64]*domain.Session{
		1: {
			ID:          1,
			Name:        "Morning flow",
			Date:        time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
			Description: "A gentle session",
			Users:       roster,
		},
	}}
	users := &mockUserStore{users: map[int64]*user.User{}}
	for i := int64(1); i <= 5; i++ {
		u := testUser(i)
		users.users[i] = &u
	}
	teachers := &mockTeacherStore{teachers: map[int64]*teacher.Teacher{
		1: {ID: 1, FirstName: "Margot", LastName: "DELAHAYE"},
	}}

	return NewSessionService(sessions, users, teachers, zap.NewNop()), sessions
}

func rosterIDs(s *domain.Session) []int64 {
	ids := make([]int64, 0, len(s.Users))
	for _, u := range s.Users {
		ids = append(ids, u.ID)
	}
	return ids
}

func assertRoster(t *testing.T, s *domain.Session, want ...int64) {
	t.Helper()
	got := rosterIDs(s)
	if len(got) != len(want) {
		t.Fatalf("expected roster %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected roster %v, got %v", want, got)
		}
	}
}

func TestParticipateAddsUser(t *testing.T) {
	svc, store := newTestService(t, testUser(1), testUser(2))

	if err := svc.Participate(context.Background(), 1, 3); err != nil {
		t.Fatalf("participate failed: %v", err)
	}

	assertRoster(t, store.sessions[1], 1, 2, 3)
}

func TestParticipateDuplicate(t *testing.T) {
	svc, store := newTestService(t, testUser(1), testUser(2))

	err := svc.Participate(context.Background(), 1, 2)
	if !errors.Is(err, xerrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
	if err.Error() != "User is already participating in this session" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	if store.updates != 0 {
		t.Fatal("roster must not be persisted on duplicate join")
	}
	assertRoster(t, store.sessions[1], 1, 2)
}

func TestParticipateSessionNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Participate(context.Background(), 99, 1)
	if !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestParticipateUserNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Participate(context.Background(), 1, 99)
	if !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestNoLongerParticipateRemovesUser(t *testing.T) {
	svc, store := newTestService(t, testUser(1), testUser(2), testUser(3))

	if err := svc.NoLongerParticipate(context.Background(), 1, 2); err != nil {
		t.Fatalf("no longer participate failed: %v", err)
	}

	assertRoster(t, store.sessions[1], 1, 3)
}

func TestNoLongerParticipateAbsent(t *testing.T) {
	svc, store := newTestService(t, testUser(1))

	err := svc.NoLongerParticipate(context.Background(), 1, 2)
	if !errors.Is(err, xerrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
	if err.Error() != "User is not participating in this session" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	if store.updates != 0 {
		t.Fatal("roster must not be persisted on spurious leave")
	}
	assertRoster(t, store.sessions[1], 1)
}

func TestNoLongerParticipateSessionNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.NoLongerParticipate(context.Background(), 99, 1)
	if !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), 99)
	if !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateNormalizesNilRoster(t *testing.T) {
	svc, store := newTestService(t)

	sess, err := svc.Create(context.Background(), &domain.SessionRequest{
		Name:        "Evening flow",
		Date:        time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC),
		Description: "Wind down",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if sess.Users == nil {
		t.Fatal("roster must never be nil")
	}
	if len(store.sessions[sess.ID].Users) != 0 {
		t.Fatal("expected empty roster")
	}
}

func TestCreateUnknownTeacher(t *testing.T) {
	svc, _ := newTestService(t)
	missing := int64(42)

	_, err := svc.Create(context.Background(), &domain.SessionRequest{
		Name:        "Evening flow",
		Date:        time.Now(),
		Description: "Wind down",
		TeacherID:   &missing,
	})
	if !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateUnknownParticipant(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), &domain.SessionRequest{
		Name:        "Evening flow",
		Date:        time.Now(),
		Description: "Wind down",
		Users:       []int64{42},
	})
	if !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateForcesPathID(t *testing.T) {
	svc, store := newTestService(t, testUser(1))

	sess, err := svc.Update(context.Background(), 1, &domain.SessionRequest{
		Name:        "Renamed",
		Date:        time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		Description: "Changed",
		Users:       []int64{2},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if sess.ID != 1 {
		t.Fatalf("expected id forced to 1, got %d", sess.ID)
	}
	if store.sessions[1].Name != "Renamed" {
		t.Fatalf("expected persisted name Renamed, got %q", store.sessions[1].Name)
	}
	assertRoster(t, store.sessions[1], 2)
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), 99, &domain.SessionRequest{
		Name:        "Renamed",
		Date:        time.Now(),
		Description: "Changed",
	})
	if !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.Delete(context.Background(), 99); !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteRemovesSession(t *testing.T) {
	svc, store := newTestService(t)

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := store.sessions[1]; ok {
		t.Fatal("expected session removed")
	}
}
