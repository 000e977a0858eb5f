package service

import (
	"context"
	"sort"
	"sync"

	"github.com/studentdesk/studentdesk-go/internal/events"
	"github.com/studentdesk/studentdesk-go/internal/model"
	"github.com/studentdesk/studentdesk-go/internal/repository"
)

type fakeStudentStore struct {
	mu       sync.Mutex
	nextID   int64
	students map[int64]model.Student
	err      error
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]model.Student)}
}

func (f *fakeStudentStore) Save(_ context.Context, s model.Student) (model.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return model.Student{}, f.err
	}
	if s.ID == 0 {
		f.nextID++
		s.ID = f.nextID
	}
	f.students[s.ID] = s
	return s, nil
}

func (f *fakeStudentStore) FindByID(_ context.Context, id int64) (*model.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.students[id]
	if !ok {
		return nil, repository.ErrStudentNotFound
	}
	return &s, nil
}

func (f *fakeStudentStore) DeleteByID(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.students, id)
	return nil
}

func (f *fakeStudentStore) FindAll(_ context.Context) ([]model.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	all := make([]model.Student, 0, len(f.students))
	for _, s := range f.students {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.Login]; ok {
		return repository.ErrDuplicateLogin
	}
	f.nextID++
	u.ID = f.nextID
	stored := *u
	f.users[u.Login] = &stored
	return nil
}

func (f *fakeUserStore) GetByLogin(_ context.Context, login string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[login]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.StudentEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.StudentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func strPtr(s string) *string { return &s }
