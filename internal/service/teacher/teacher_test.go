package teacher

import (
	"context"
	"errors"
	"testing"

	domain "bookings-service/internal/domain/teacher"
	xerrors "bookings-service/internal/pkg/errors"
)

type mockTeacherStore struct {
	teachers map[int64]*domain.Teacher
}

func (m *mockTeacherStore) FindAll(ctx context.Context) ([]domain.Teacher, error) {
	out := []domain.Teacher{}
	for _, t := range m.teachers {
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTeacherStore) FindByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	t, ok := m.teachers[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return t, nil
}

func TestFindByID(t *testing.T) {
	svc := NewTeacherService(&mockTeacherStore{teachers: map[int64]*domain.Teacher{
		1: {ID: 1, FirstName: "Margot", LastName: "DELAHAYE"},
	}})

	got, err := svc.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got.LastName != "DELAHAYE" {
		t.Fatalf("unexpected teacher: %+v", got)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	svc := NewTeacherService(&mockTeacherStore{teachers: map[int64]*domain.Teacher{}})

	_, err := svc.FindByID(context.Background(), 42)
	if !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
