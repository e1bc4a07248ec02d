package service

import (
	"context"
	"log"

	"github.com/taskhive/todo-service/internal/apperr"
)

const (
	seedUserName  = "Frodo Baggins"
	seedUserEmail = "frodo@theshire.me"
	seedTodoText  = "Take the ring to Mordor"
)

// Seed creates the demo user and todo unless the seed user already resolves.
// It is idempotent and invoked explicitly once at startup.
func Seed(ctx context.Context, users *UserService, todos *TodoService) error {
	_, err := users.GetByEmail(ctx, seedUserEmail)
	if err == nil {
		return nil
	}
	if !apperr.IsNotFound(err) {
		return err
	}

	if _, err := users.Create(ctx, seedUserName, seedUserEmail); err != nil {
		return err
	}
	if _, err := todos.Create(ctx, seedTodoText, seedUserEmail); err != nil {
		return err
	}
	log.Printf("Seeded demo user %s", seedUserEmail)
	return nil
}
