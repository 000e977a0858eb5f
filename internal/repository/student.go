package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/studentdesk/studentdesk-go/internal/model"
)

var ErrStudentNotFound = errors.New("student not found")

// StudentRepository persists student records.
type StudentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Save inserts s when it has no ID yet and updates the stored row otherwise.
// The returned copy carries the assigned ID.
func (r *StudentRepository) Save(ctx context.Context, s model.Student) (model.Student, error) {
	if s.ID == 0 {
		query := `INSERT INTO students (first_name, last_name, email, age) VALUES (?, ?, ?, ?)`
		result, err := r.db.ExecContext(ctx, query, s.FirstName, s.LastName, s.Email, s.Age)
		if err != nil {
			return model.Student{}, err
		}

		id, err := result.LastInsertId()
		if err != nil {
			return model.Student{}, err
		}
		s.ID = id
		return s, nil
	}

	// MySQL reports zero affected rows when nothing changed, so the count is
	// not used as an existence check.
	query := `UPDATE students SET first_name = ?, last_name = ?, email = ?, age = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, s.FirstName, s.LastName, s.Email, s.Age, s.ID); err != nil {
		return model.Student{}, err
	}
	return s, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*model.Student, error) {
	query := `SELECT id, first_name, last_name, email, age FROM students WHERE id = ?`

	s := &model.Student{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Age)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	return s, nil
}

// FindAll returns every student ordered by ID. The slice is empty, not nil,
// when there are none.
func (r *StudentRepository) FindAll(ctx context.Context) ([]model.Student, error) {
	query := `SELECT id, first_name, last_name, email, age FROM students ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]model.Student, 0)
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Age); err != nil {
			return nil, err
		}
		students = append(students, s)
	}

	return students, rows.Err()
}

// DeleteByID removes the student with the given ID. Deleting a missing ID is
// not an error.
func (r *StudentRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	return err
}
