package service

import (
	"context"
	"fmt"

	"github.com/taskhive/todo-service/internal/models"
)

type mockUserStore struct {
	createFn     func(*models.User) error
	getByIDFn    func(string) (*models.User, error)
	getByEmailFn func(string) (*models.User, error)
	listFn       func() ([]models.User, error)
	updateFn     func(*models.User) error
	deleteFn     func(string) error
}

func (m *mockUserStore) Create(u *models.User) error {
	if m.createFn != nil {
		return m.createFn(u)
	}
	return nil
}

func (m *mockUserStore) GetByID(id string) (*models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockUserStore) GetByEmail(email string) (*models.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(email)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockUserStore) List() ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return nil, nil
}

func (m *mockUserStore) Update(u *models.User) error {
	if m.updateFn != nil {
		return m.updateFn(u)
	}
	return nil
}

func (m *mockUserStore) Delete(id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

// mockUserViews delegates reads to the backing store and records cache
// refreshes and invalidations.
type mockUserViews struct {
	store       *mockUserStore
	cached      []string
	invalidated []string
}

func (m *mockUserViews) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.store.GetByID(id)
}

func (m *mockUserViews) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.store.GetByEmail(email)
}

func (m *mockUserViews) CacheUser(ctx context.Context, user *models.User) {
	m.cached = append(m.cached, user.ID)
}

func (m *mockUserViews) InvalidateUser(ctx context.Context, user *models.User) {
	m.invalidated = append(m.invalidated, user.ID)
}

type mockCounter struct {
	countFn func(string) (int, error)
}

func (m *mockCounter) CountByAssignedUserID(userID string) (int, error) {
	if m.countFn != nil {
		return m.countFn(userID)
	}
	return 0, nil
}

type mockTodoStore struct {
	createFn func(*models.Todo) error
	getFn    func(string) (*models.Todo, error)
	findFn   func(string) ([]models.Todo, error)
	existsFn func(string) (bool, error)
	updateFn func(*models.Todo) error
	deleteFn func(string) error

	created []models.Todo
	updated []models.Todo
}

func (m *mockTodoStore) Create(t *models.Todo) error {
	if m.createFn != nil {
		return m.createFn(t)
	}
	m.created = append(m.created, *t)
	return nil
}

func (m *mockTodoStore) GetByID(id string) (*models.Todo, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockTodoStore) FindByAssignedUserID(userID string) ([]models.Todo, error) {
	if m.findFn != nil {
		return m.findFn(userID)
	}
	return nil, nil
}

func (m *mockTodoStore) ExistsByID(id string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(id)
	}
	return false, nil
}

func (m *mockTodoStore) Update(t *models.Todo) error {
	if m.updateFn != nil {
		return m.updateFn(t)
	}
	m.updated = append(m.updated, *t)
	return nil
}

func (m *mockTodoStore) Delete(id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

type mockUserDirectory struct {
	byEmailFn func(string) (*models.User, error)
	byIDFn    func(string) (*models.User, error)
}

func (m *mockUserDirectory) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.byEmailFn != nil {
		return m.byEmailFn(email)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockUserDirectory) Get(ctx context.Context, id string) (*models.User, error) {
	if m.byIDFn != nil {
		return m.byIDFn(id)
	}
	return nil, fmt.Errorf("not configured")
}
