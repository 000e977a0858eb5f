package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/studentdesk/studentdesk-go/internal/model"
)

type EventType string

// Event types double as routing keys.
const (
	StudentCreated EventType = "student.created"
	StudentUpdated EventType = "student.updated"
	StudentDeleted EventType = "student.deleted"
)

// StudentEvent announces a change to a student record. Student is nil for
// deletions.
type StudentEvent struct {
	ID         string            `json:"id"`
	Type       EventType         `json:"type"`
	StudentID  int64             `json:"studentId"`
	Student    *model.StudentDto `json:"student,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
}

func NewStudentEvent(t EventType, studentID int64, student *model.StudentDto) StudentEvent {
	return StudentEvent{
		ID:         uuid.NewString(),
		Type:       t,
		StudentID:  studentID,
		Student:    student,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event StudentEvent) error
	Close() error
}

// Noop discards every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, StudentEvent) error { return nil }

func (Noop) Close() error { return nil }
