// internal/service/teacher/teacher_service.go
package teacher

import (
	"context"
	"errors"

	"bookings-service/internal/domain/teacher"
	xerrors "bookings-service/internal/pkg/errors"
)

type TeacherStore interface {
	FindAll(ctx context.Context) ([]teacher.Teacher, error)
	FindByID(ctx context.Context, id int64) (*teacher.Teacher, error)
}

type TeacherService struct {
	teachers TeacherStore
}

func NewTeacherService(teachers TeacherStore) *TeacherService {
	return &TeacherService{teachers: teachers}
}

func (s *TeacherService) FindAll(ctx context.Context) ([]teacher.Teacher, error) {
	return s.teachers.FindAll(ctx)
}

func (s *TeacherService) FindByID(ctx context.Context, id int64) (*teacher.Teacher, error) {
	t, err := s.teachers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.NotFound("Teacher not found")
		}
		return nil, err
	}
	return t, nil
}
