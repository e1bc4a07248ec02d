package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/taskhive/todo-service/internal/apperr"
	"github.com/taskhive/todo-service/internal/models"
	"github.com/taskhive/todo-service/internal/utils"
)

// UserStore is the write-side persistence surface the user service depends on.
type UserStore interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List() ([]models.User, error)
	Update(user *models.User) error
	Delete(id string) error
}

// UserViews is the cached read surface for user lookups.
type UserViews interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CacheUser(ctx context.Context, user *models.User)
	InvalidateUser(ctx context.Context, user *models.User)
}

// AssignmentCounter reports how many todos still reference a user. It keeps
// the delete-guard decoupled from the todo service: the dependency runs
// store-ward only.
type AssignmentCounter interface {
	CountByAssignedUserID(userID string) (int, error)
}

// UserService owns the user lifecycle and is the authority for resolving
// identities and emails.
type UserService struct {
	store       UserStore
	views       UserViews
	assignments AssignmentCounter
	validate    *validator.Validate
}

func NewUserService(store UserStore, views UserViews, assignments AssignmentCounter) *UserService {
	return &UserService{
		store:       store,
		views:       views,
		assignments: assignments,
		validate:    validator.New(),
	}
}

// List returns all users in store order.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.store.List()
}

// Get returns the user with the given id, cache first.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.views.GetByID(ctx, id)
}

// GetByEmail resolves an email to its first matching user. Email is not
// unique; the store's insertion order decides the match.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.views.GetByEmail(ctx, email)
}

// Create validates name and email and persists a new user with a
// store-assigned id.
func (s *UserService) Create(ctx context.Context, name, email string) (*models.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("name", "must not be blank")
	}
	if strings.TrimSpace(email) == "" {
		return nil, apperr.Validation("email", "must not be blank")
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return nil, apperr.Validation("email", "must be a valid email address")
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:        utils.GenerateID("usr"),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(user); err != nil {
		return nil, err
	}
	s.views.CacheUser(ctx, user)
	return user, nil
}

// ChangeName renames an existing user; id and email are preserved. The
// refreshed cache makes the rename visible in every todo view immediately.
func (s *UserService) ChangeName(ctx context.Context, id, newName string) (*models.User, error) {
	user, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(newName) == "" {
		return nil, apperr.Validation("name", "must not be blank")
	}

	user.Name = newName
	user.UpdatedAt = time.Now().UTC()
	if err := s.store.Update(user); err != nil {
		return nil, err
	}
	s.views.CacheUser(ctx, user)
	return user, nil
}

// Delete removes a user. It is rejected with a conflict while any todo still
// references the user, so a delete cannot orphan assignments.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.store.GetByID(id)
	if err != nil {
		return err
	}
	count, err := s.assignments.CountByAssignedUserID(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict(fmt.Sprintf("user %s still has %d assigned todo(s)", id, count))
	}
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.views.InvalidateUser(ctx, user)
	return nil
}
