package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/studentdesk/studentdesk-go/internal/model"
)

func TestStudentRepositorySaveAssignsIDs(t *testing.T) {
	repo := NewStudentRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.Save(ctx, model.Student{FirstName: "John", LastName: "Doe", Email: "john@doe.com", Age: 30})
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("first ID = %d, want 1", first.ID)
	}

	second, err := repo.Save(ctx, model.Student{FirstName: "Jane", Email: "jane@doe.com"})
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("second ID = %d, want 2", second.ID)
	}
}

func TestStudentRepositoryFindByID(t *testing.T) {
	repo := NewStudentRepository(newTestDB(t))
	ctx := context.Background()

	saved, err := repo.Save(ctx, model.Student{FirstName: "John", LastName: "Doe", Email: "john@doe.com", Age: 30})
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	got, err := repo.FindByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("FindByID() unexpected error: %v", err)
	}
	if *got != saved {
		t.Errorf("FindByID() = %+v, want %+v", *got, saved)
	}

	if _, err := repo.FindByID(ctx, 999); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("FindByID(999) error = %v, want %v", err, ErrStudentNotFound)
	}
}

func TestStudentRepositorySaveUpdatesExisting(t *testing.T) {
	repo := NewStudentRepository(newTestDB(t))
	ctx := context.Background()

	saved, err := repo.Save(ctx, model.Student{FirstName: "John", Email: "john@doe.com", Age: 30})
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	saved.FirstName = "Johnny"
	saved.Age = 31
	updated, err := repo.Save(ctx, saved)
	if err != nil {
		t.Fatalf("Save(update) unexpected error: %v", err)
	}
	if updated.ID != saved.ID {
		t.Errorf("updated ID = %d, want %d", updated.ID, saved.ID)
	}

	// Saving identical values again must not fail.
	if _, err := repo.Save(ctx, updated); err != nil {
		t.Fatalf("Save(unchanged) unexpected error: %v", err)
	}

	got, err := repo.FindByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("FindByID() unexpected error: %v", err)
	}
	if got.FirstName != "Johnny" || got.Age != 31 {
		t.Errorf("FindByID() = %+v, want FirstName Johnny Age 31", *got)
	}
}

func TestStudentRepositoryFindAll(t *testing.T) {
	repo := NewStudentRepository(newTestDB(t))
	ctx := context.Background()

	empty, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() unexpected error: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("FindAll() on empty store = %#v, want empty non-nil slice", empty)
	}

	inputs := []model.Student{
		{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Age: 20},
		{FirstName: "Jane", LastName: "Roe", Email: "jane.roe@example.com", Age: 22},
		{FirstName: "Max", LastName: "Mustermann", Email: "max@example.com", Age: 19},
	}
	saved := make([]model.Student, 0, len(inputs))
	for _, in := range inputs {
		s, err := repo.Save(ctx, in)
		if err != nil {
			t.Fatalf("Save(%s) unexpected error: %v", in.FirstName, err)
		}
		saved = append(saved, s)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() unexpected error: %v", err)
	}
	if len(all) != len(saved) {
		t.Fatalf("len(FindAll()) = %d, want %d", len(all), len(saved))
	}
	for i, s := range all {
		if s != saved[i] {
			t.Errorf("all[%d] = %+v, want %+v", i, s, saved[i])
		}
	}
}

func TestStudentRepositoryDeleteByID(t *testing.T) {
	repo := NewStudentRepository(newTestDB(t))
	ctx := context.Background()

	saved, err := repo.Save(ctx, model.Student{FirstName: "John", Email: "john@doe.com"})
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	if err := repo.DeleteByID(ctx, saved.ID); err != nil {
		t.Fatalf("DeleteByID() unexpected error: %v", err)
	}
	if _, err := repo.FindByID(ctx, saved.ID); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("FindByID() after delete error = %v, want %v", err, ErrStudentNotFound)
	}

	if err := repo.DeleteByID(ctx, saved.ID); err != nil {
		t.Errorf("DeleteByID() on missing id unexpected error: %v", err)
	}
}
