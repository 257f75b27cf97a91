package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domain "bookings-service/internal/domain/session"
	"bookings-service/internal/domain/teacher"
	"bookings-service/internal/domain/user"
	xerrors "bookings-service/internal/pkg/errors"
	service "bookings-service/internal/service/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type mockSessionStore struct {
	sessions map[int64]*domain.Session
	nextID   int64
}

func (m *mockSessionStore) FindAll(ctx context.Context) ([]domain.Session, error) {
	out := []domain.Session{}
	for _, s := range m.sessions {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockSessionStore) FindByID(ctx context.Context, id int64) (*domain.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	c := *s
	c.Users = append([]user.User{}, s.Users...)
	return &c, nil
}

func (m *mockSessionStore) Create(ctx context.Context, s *domain.Session) error {
	m.nextID++
	s.ID = m.nextID
	m.sessions[s.ID] = s
	return nil
}

func (m *mockSessionStore) Update(ctx context.Context, id int64, s *domain.Session) error {
	if _, ok := m.sessions[id]; !ok {
		return xerrors.ErrNotFound
	}
	s.ID = id
	m.sessions[id] = s
	return nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id int64) error {
	if _, ok := m.sessions[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(m.sessions, id)
	return nil
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

type mockTeacherStore struct{}

func (m *mockTeacherStore) FindByID(ctx context.Context, id int64) (*teacher.Teacher, error) {
	if id != 1 {
		return nil, xerrors.ErrNotFound
	}
	return &teacher.Teacher{ID: 1, FirstName: "Margot", LastName: "DELAHAYE"}, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := &mockSessionStore{
		sessions: map[int64]*domain.Session{
			1: {
				ID:          1,
				Name:        "Morning flow",
				Date:        time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
				Description: "A gentle session",
				Users:       []user.User{},
			},
		},
		nextID: 1,
	}
	users := &mockUserStore{users: map[int64]*user.User{
		1: {ID: 1, Email: "test@example.com", FirstName: "Test", LastName: "User"},
	}}

	svc := service.NewSessionService(sessions, users, &mockTeacherStore{}, zap.NewNop())
	h := NewSessionHandler(svc)

	r := gin.New()
	api := r.Group("/api/session")
	api.GET("", h.FindAll)
	api.GET("/:id", h.FindByID)
	api.POST("", h.Create)
	api.PUT("/:id", h.Update)
	api.DELETE("/:id", h.Delete)
	api.POST("/:id/participate/:userId", h.Participate)
	api.DELETE("/:id/participate/:userId", h.NoLongerParticipate)

	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestParticipateTwice(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/session/1/participate/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("first join: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/session/1/participate/1", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second join: expected 400, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if body["message"] != "User is already participating in this session" {
		t.Fatalf("unexpected message: %q", body["message"])
	}
}

func TestFindByIDMissing(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/session/99", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestLeaveThenRejoin(t *testing.T) {
	r := newTestRouter(t)

	if w := do(r, http.MethodPost, "/api/session/1/participate/1", ""); w.Code != http.StatusOK {
		t.Fatalf("join: expected 200, got %d", w.Code)
	}
	if w := do(r, http.MethodDelete, "/api/session/1/participate/1", ""); w.Code != http.StatusOK {
		t.Fatalf("leave: expected 200, got %d", w.Code)
	}
	if w := do(r, http.MethodDelete, "/api/session/1/participate/1", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("second leave: expected 400, got %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/api/session/1/participate/1", ""); w.Code != http.StatusOK {
		t.Fatalf("rejoin: expected 200, got %d", w.Code)
	}
}

func TestCreateValidation(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/session", `{"date":"2026-03-01T09:00:00Z","description":"x"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if _, ok := body["name"]; !ok {
		t.Fatalf("expected per-field entry for name, got %v", body)
	}
}

func TestUpdateIgnoresPayloadID(t *testing.T) {
	r := newTestRouter(t)

	payload := `{"id":99,"name":"Renamed","date":"2026-04-01T09:00:00Z","description":"Changed"}`
	w := do(r, http.MethodPut, "/api/session/1", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp domain.SessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if resp.ID != 1 {
		t.Fatalf("expected id 1 from the path, got %d", resp.ID)
	}
}

func TestDeleteMissing(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodDelete, "/api/session/99", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
