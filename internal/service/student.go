package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/studentdesk/studentdesk-go/internal/apperror"
	"github.com/studentdesk/studentdesk-go/internal/events"
	"github.com/studentdesk/studentdesk-go/internal/model"
	"github.com/studentdesk/studentdesk-go/internal/repository"
)

// StudentStore persists students. FindByID returns repository.ErrStudentNotFound
// for a missing id.
type StudentStore interface {
	Save(ctx context.Context, s model.Student) (model.Student, error)
	FindByID(ctx context.Context, id int64) (*model.Student, error)
	DeleteByID(ctx context.Context, id int64) error
	FindAll(ctx context.Context) ([]model.Student, error)
}

// StudentService handles student business logic.
type StudentService struct {
	store     StudentStore
	publisher events.Publisher
	validate  *validator.Validate
	logger    zerolog.Logger
}

// NewStudentService creates a new StudentService. A nil publisher disables
// change events.
func NewStudentService(store StudentStore, publisher events.Publisher, logger zerolog.Logger) *StudentService {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &StudentService{
		store:     store,
		publisher: publisher,
		validate:  validator.New(),
		logger:    logger,
	}
}

// CreateStudent stores a new student built from cmd and returns it with its
// assigned id.
func (s *StudentService) CreateStudent(ctx context.Context, cmd model.CreateStudentCommand) (model.StudentDto, error) {
	if err := validateStruct(s.validate, s.logger, cmd); err != nil {
		return model.StudentDto{}, err
	}

	saved, err := s.store.Save(ctx, cmd.ToEntity())
	if err != nil {
		return model.StudentDto{}, fmt.Errorf("failed to save student: %w", err)
	}

	dto := model.ToStudentDto(saved)
	s.publish(ctx, events.NewStudentEvent(events.StudentCreated, saved.ID, &dto))

	return dto, nil
}

func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (model.StudentDto, error) {
	student, err := s.find(ctx, id)
	if err != nil {
		return model.StudentDto{}, err
	}
	return model.ToStudentDto(*student), nil
}

// UpdateStudent overwrites every mutable field of an existing student. A
// missing id is reported before the command is validated.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, cmd model.CreateStudentCommand) (model.StudentDto, error) {
	student, err := s.find(ctx, id)
	if err != nil {
		return model.StudentDto{}, err
	}

	if err := validateStruct(s.validate, s.logger, cmd); err != nil {
		return model.StudentDto{}, err
	}

	cmd.Apply(student)

	saved, err := s.store.Save(ctx, *student)
	if err != nil {
		return model.StudentDto{}, fmt.Errorf("failed to update student %d: %w", id, err)
	}

	dto := model.ToStudentDto(saved)
	s.publish(ctx, events.NewStudentEvent(events.StudentUpdated, saved.ID, &dto))

	return dto, nil
}

// DeleteStudent removes a student. A missing id is not an error.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete student %d: %w", id, err)
	}

	s.publish(ctx, events.NewStudentEvent(events.StudentDeleted, id, nil))
	return nil
}

func (s *StudentService) GetAllStudents(ctx context.Context) ([]model.StudentDto, error) {
	students, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	dtos := make([]model.StudentDto, 0, len(students))
	for _, st := range students {
		dtos = append(dtos, model.ToStudentDto(st))
	}
	return dtos, nil
}

func (s *StudentService) find(ctx context.Context, id int64) (*model.Student, error) {
	student, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return nil, apperror.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to find student %d: %w", id, err)
	}
	return student, nil
}

// publish never fails the caller; the change is already stored.
func (s *StudentService) publish(ctx context.Context, event events.StudentEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn().
			Err(err).
			Str("type", string(event.Type)).
			Int64("student_id", event.StudentID).
			Msg("failed to publish student event")
	}
}
