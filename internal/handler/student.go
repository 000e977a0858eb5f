package handler

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/studentdesk/studentdesk-go/internal/model"
)

type StudentService interface {
	CreateStudent(ctx context.Context, cmd model.CreateStudentCommand) (model.StudentDto, error)
	GetStudentByID(ctx context.Context, id int64) (model.StudentDto, error)
	UpdateStudent(ctx context.Context, id int64, cmd model.CreateStudentCommand) (model.StudentDto, error)
	DeleteStudent(ctx context.Context, id int64) error
	GetAllStudents(ctx context.Context) ([]model.StudentDto, error)
}

// StudentHandler handles HTTP requests for student records.
type StudentHandler struct {
	service StudentService
	logger  zerolog.Logger
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(svc StudentService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{service: svc, logger: logger}
}

// HandleCreate handles POST /api/students. The created record is not echoed.
func (h *StudentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var cmd model.CreateStudentCommand
	if err := decodeJSON(w, r, &cmd); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if _, err := h.service.CreateStudent(r.Context(), cmd); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleList handles GET /api/students.
func (h *StudentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	students, err := h.service.GetAllStudents(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, students)
}

// HandleGet handles GET /api/students/{id}.
func (h *StudentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	student, err := h.service.GetStudentByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, student)
}

// HandleUpdate handles PUT /api/students/{id}.
func (h *StudentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var cmd model.CreateStudentCommand
	if err := decodeJSON(w, r, &cmd); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	student, err := h.service.UpdateStudent(r.Context(), id, cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, student)
}

// HandleDelete handles DELETE /api/students/{id}.
func (h *StudentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.service.DeleteStudent(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
