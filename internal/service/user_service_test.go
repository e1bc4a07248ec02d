package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/todo-service/internal/apperr"
	"github.com/taskhive/todo-service/internal/models"
)

func newUserService(store *mockUserStore, counter *mockCounter) (*UserService, *mockUserViews) {
	views := &mockUserViews{store: store}
	if counter == nil {
		counter = &mockCounter{}
	}
	return NewUserService(store, views, counter), views
}

func TestUserServiceList(t *testing.T) {
	store := &mockUserStore{
		listFn: func() ([]models.User, error) {
			return []models.User{
				{ID: "usr-1", Name: "Alice", Email: "alice@example.com"},
				{ID: "usr-2", Name: "Bob", Email: "bob@example.com"},
			}, nil
		},
	}
	svc, _ := newUserService(store, nil)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
}

func TestUserServiceGet(t *testing.T) {
	store := &mockUserStore{
		getByIDFn: func(id string) (*models.User, error) {
			if id == "usr-1" {
				return &models.User{ID: "usr-1", Name: "Alice", Email: "alice@example.com"}, nil
			}
			return nil, apperr.NotFound(id)
		},
	}
	svc, _ := newUserService(store, nil)

	user, err := svc.Get(context.Background(), "usr-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = svc.Get(context.Background(), "usr-999")
	assert.True(t, apperr.IsNotFound(err))
	assert.EqualError(t, err, "Entity: usr-999 was not found")
}

func TestUserServiceCreate(t *testing.T) {
	var persisted *models.User
	store := &mockUserStore{
		createFn: func(u *models.User) error {
			persisted = u
			return nil
		},
	}
	svc, views := newUserService(store, nil)

	user, err := svc.Create(context.Background(), "Alice", "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	require.NotNil(t, persisted)
	assert.Equal(t, user.ID, persisted.ID)
	assert.Equal(t, []string{user.ID}, views.cached)
}

func TestUserServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		userName  string
		userEmail string
	}{
		{"blank name", "  ", "alice@example.com"},
		{"blank email", "Alice", ""},
		{"malformed email", "Alice", "not-an-email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := false
			store := &mockUserStore{
				createFn: func(u *models.User) error {
					created = true
					return nil
				},
			}
			svc, _ := newUserService(store, nil)

			_, err := svc.Create(context.Background(), tt.userName, tt.userEmail)
			assert.True(t, apperr.IsValidation(err))
			assert.False(t, created, "nothing should reach the store")
		})
	}
}

func TestUserServiceChangeName(t *testing.T) {
	var updated *models.User
	store := &mockUserStore{
		getByIDFn: func(id string) (*models.User, error) {
			return &models.User{ID: "usr-1", Name: "Alice", Email: "alice@example.com"}, nil
		},
		updateFn: func(u *models.User) error {
			updated = u
			return nil
		},
	}
	svc, views := newUserService(store, nil)

	user, err := svc.ChangeName(context.Background(), "usr-1", "Alicia")
	require.NoError(t, err)
	assert.Equal(t, "usr-1", user.ID)
	assert.Equal(t, "Alicia", user.Name)
	assert.Equal(t, "alice@example.com", user.Email, "email is preserved")
	require.NotNil(t, updated)
	assert.Equal(t, []string{"usr-1"}, views.cached, "rename refreshes the cached view")
}

func TestUserServiceChangeNameNotFound(t *testing.T) {
	store := &mockUserStore{
		getByIDFn: func(id string) (*models.User, error) {
			return nil, apperr.NotFound(id)
		},
	}
	svc, _ := newUserService(store, nil)

	_, err := svc.ChangeName(context.Background(), "usr-999", "NewName")
	assert.True(t, apperr.IsNotFound(err))
}

func TestUserServiceChangeNameBlank(t *testing.T) {
	store := &mockUserStore{
		getByIDFn: func(id string) (*models.User, error) {
			return &models.User{ID: "usr-1", Name: "Alice", Email: "alice@example.com"}, nil
		},
	}
	svc, _ := newUserService(store, nil)

	_, err := svc.ChangeName(context.Background(), "usr-1", "   ")
	assert.True(t, apperr.IsValidation(err))
}

func TestUserServiceDelete(t *testing.T) {
	deleted := false
	store := &mockUserStore{
		getByIDFn: func(id string) (*models.User, error) {
			return &models.User{ID: "usr-1", Name: "Alice", Email: "alice@example.com"}, nil
		},
		deleteFn: func(id string) error {
			deleted = true
			return nil
		},
	}
	svc, views := newUserService(store, &mockCounter{})

	err := svc.Delete(context.Background(), "usr-1")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{"usr-1"}, views.invalidated)
}

func TestUserServiceDeleteNotFound(t *testing.T) {
	store := &mockUserStore{
		getByIDFn: func(id string) (*models.User, error) {
			return nil, apperr.NotFound(id)
		},
	}
	svc, _ := newUserService(store, nil)

	err := svc.Delete(context.Background(), "usr-999")
	assert.True(t, apperr.IsNotFound(err))
}

func TestUserServiceDeleteWithAssignedTodos(t *testing.T) {
	deleted := false
	store := &mockUserStore{
		getByIDFn: func(id string) (*models.User, error) {
			return &models.User{ID: "usr-1", Name: "Alice", Email: "alice@example.com"}, nil
		},
		deleteFn: func(id string) error {
			deleted = true
			return nil
		},
	}
	counter := &mockCounter{countFn: func(string) (int, error) { return 2, nil }}
	svc, _ := newUserService(store, counter)

	err := svc.Delete(context.Background(), "usr-1")
	assert.True(t, apperr.IsConflict(err))
	assert.False(t, deleted, "conflict must prevent the delete")
}
