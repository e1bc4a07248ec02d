package service

import (
	"context"
	"strings"
	"time"

	"github.com/taskhive/todo-service/internal/apperr"
	"github.com/taskhive/todo-service/internal/models"
	"github.com/taskhive/todo-service/internal/utils"
)

// TodoStore is the persistence surface the todo service depends on.
type TodoStore interface {
	Create(todo *models.Todo) error
	GetByID(id string) (*models.Todo, error)
	FindByAssignedUserID(userID string) ([]models.Todo, error)
	ExistsByID(id string) (bool, error)
	Update(todo *models.Todo) error
	Delete(id string) error
}

// UserDirectory is the slice of the user service the todo service needs:
// resolving an assignee email before any mutation that sets it, and joining
// the current user record into a todo view at read time.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
}

// TodoService owns the todo lifecycle. Every create or reassignment
// validates the target assignee through the user directory first, so a
// failed resolution leaves the todo untouched.
type TodoService struct {
	store TodoStore
	users UserDirectory
}

func NewTodoService(store TodoStore, users UserDirectory) *TodoService {
	return &TodoService{store: store, users: users}
}

// ListForUser returns the todos assigned to the user the email resolves to,
// each joined with the live assignee record. An unresolved email fails
// NotFound; a resolved user with no todos yields an empty slice.
func (s *TodoService) ListForUser(ctx context.Context, email string) ([]models.TodoView, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	todos, err := s.store.FindByAssignedUserID(user.ID)
	if err != nil {
		return nil, err
	}
	views := make([]models.TodoView, 0, len(todos))
	for i := range todos {
		views = append(views, *models.NewTodoView(&todos[i], user))
	}
	return views, nil
}

// Get returns the todo with its assignee fields resolved from the current
// user record. A dangling assignee reference surfaces as NotFound carrying
// the missing user id.
func (s *TodoService) Get(ctx context.Context, id string) (*models.TodoView, error) {
	todo, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, todo)
}

// Create validates the description, resolves the assignee email and persists
// a new todo with done=false. Nothing is persisted when the email does not
// resolve.
func (s *TodoService) Create(ctx context.Context, description, assigneeEmail string) (*models.TodoView, error) {
	if strings.TrimSpace(description) == "" {
		return nil, apperr.Validation("description", "must not be blank")
	}
	assignee, err := s.users.GetByEmail(ctx, assigneeEmail)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	todo := &models.Todo{
		ID:             utils.GenerateID("tdo"),
		Description:    description,
		Done:           false,
		AssignedUserID: assignee.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Create(todo); err != nil {
		return nil, err
	}
	return models.NewTodoView(todo, assignee), nil
}

// SetDone sets the done flag. Setting the current value is a no-op mutation
// that still succeeds.
func (s *TodoService) SetDone(ctx context.Context, id string, done bool) (*models.TodoView, error) {
	todo, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	todo.Done = done
	todo.UpdatedAt = time.Now().UTC()
	if err := s.store.Update(todo); err != nil {
		return nil, err
	}
	return s.toView(ctx, todo)
}

// Assign moves the todo to the user the email resolves to. Resolution
// happens before the todo is touched, so an unresolved email leaves the
// current assignment unchanged.
func (s *TodoService) Assign(ctx context.Context, id, newAssigneeEmail string) (*models.TodoView, error) {
	todo, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	assignee, err := s.users.GetByEmail(ctx, newAssigneeEmail)
	if err != nil {
		return nil, err
	}
	todo.AssignedUserID = assignee.ID
	todo.UpdatedAt = time.Now().UTC()
	if err := s.store.Update(todo); err != nil {
		return nil, err
	}
	return models.NewTodoView(todo, assignee), nil
}

// Edit replaces the description.
func (s *TodoService) Edit(ctx context.Context, id, newDescription string) (*models.TodoView, error) {
	todo, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(newDescription) == "" {
		return nil, apperr.Validation("description", "must not be blank")
	}
	todo.Description = newDescription
	todo.UpdatedAt = time.Now().UTC()
	if err := s.store.Update(todo); err != nil {
		return nil, err
	}
	return s.toView(ctx, todo)
}

// Delete removes a todo.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	exists, err := s.store.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound(id)
	}
	return s.store.Delete(id)
}

func (s *TodoService) toView(ctx context.Context, todo *models.Todo) (*models.TodoView, error) {
	assignee, err := s.users.Get(ctx, todo.AssignedUserID)
	if err != nil {
		return nil, err
	}
	return models.NewTodoView(todo, assignee), nil
}
