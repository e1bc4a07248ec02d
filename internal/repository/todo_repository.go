package repository

import (
	"database/sql"

	"github.com/taskhive/todo-service/internal/apperr"
	"github.com/taskhive/todo-service/internal/models"
)

// TodoRepository handles all todo persistence against the PostgreSQL store.
type TodoRepository struct {
	db *sql.DB
}

func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Create(todo *models.Todo) error {
	query := `
		INSERT INTO todos (id, description, done, assigned_user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(query,
		todo.ID, todo.Description, todo.Done, todo.AssignedUserID,
		todo.CreatedAt, todo.UpdatedAt,
	)
	if err != nil {
		return apperr.Store("create todo", err)
	}
	return nil
}

func (r *TodoRepository) GetByID(id string) (*models.Todo, error) {
	query := `
		SELECT id, description, done, assigned_user_id, created_at, updated_at
		FROM todos
		WHERE id = $1 AND deleted_at IS NULL
	`
	var todo models.Todo
	err := r.db.QueryRow(query, id).Scan(
		&todo.ID, &todo.Description, &todo.Done, &todo.AssignedUserID,
		&todo.CreatedAt, &todo.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound(id)
	}
	if err != nil {
		return nil, apperr.Store("get todo", err)
	}
	return &todo, nil
}

func (r *TodoRepository) FindByAssignedUserID(userID string) ([]models.Todo, error) {
	query := `
		SELECT id, description, done, assigned_user_id, created_at, updated_at
		FROM todos
		WHERE assigned_user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, apperr.Store("find todos by user", err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(
			&todo.ID, &todo.Description, &todo.Done, &todo.AssignedUserID,
			&todo.CreatedAt, &todo.UpdatedAt,
		); err != nil {
			return nil, apperr.Store("scan todo", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store("find todos by user", err)
	}
	return todos, nil
}

func (r *TodoRepository) ExistsByID(id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM todos WHERE id = $1 AND deleted_at IS NULL)`
	var exists bool
	if err := r.db.QueryRow(query, id).Scan(&exists); err != nil {
		return false, apperr.Store("check todo exists", err)
	}
	return exists, nil
}

// CountByAssignedUserID backs the user delete-guard.
func (r *TodoRepository) CountByAssignedUserID(userID string) (int, error) {
	query := `SELECT COUNT(*) FROM todos WHERE assigned_user_id = $1 AND deleted_at IS NULL`
	var count int
	if err := r.db.QueryRow(query, userID).Scan(&count); err != nil {
		return 0, apperr.Store("count todos by user", err)
	}
	return count, nil
}

func (r *TodoRepository) Update(todo *models.Todo) error {
	query := `
		UPDATE todos
		SET description = $2, done = $3, assigned_user_id = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.db.Exec(query,
		todo.ID, todo.Description, todo.Done, todo.AssignedUserID, todo.UpdatedAt,
	)
	if err != nil {
		return apperr.Store("update todo", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperr.Store("check rows affected", err)
	}
	if rows == 0 {
		return apperr.NotFound(todo.ID)
	}
	return nil
}

func (r *TodoRepository) Delete(id string) error {
	query := `UPDATE todos SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.db.Exec(query, id)
	if err != nil {
		return apperr.Store("delete todo", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperr.Store("check rows affected", err)
	}
	if rows == 0 {
		return apperr.NotFound(id)
	}
	return nil
}
