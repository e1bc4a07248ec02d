package repository

import (
	"database/sql"

	"github.com/taskhive/todo-service/internal/apperr"
	"github.com/taskhive/todo-service/internal/models"
)

// UserRepository handles all user persistence against the PostgreSQL store
// (source of truth). Rows are soft-deleted via deleted_at.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query, user.ID, user.Name, user.Email, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return apperr.Store("create user", err)
	}
	return nil
}

func (r *UserRepository) GetByID(id string) (*models.User, error) {
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`
	var user models.User
	err := r.db.QueryRow(query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound(id)
	}
	if err != nil {
		return nil, apperr.Store("get user", err)
	}
	return &user, nil
}

// GetByEmail returns the first user with the given email. Email is not
// unique; insertion order makes the first match deterministic.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
		ORDER BY created_at, id
		LIMIT 1
	`
	var user models.User
	err := r.db.QueryRow(query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound(email)
	}
	if err != nil {
		return nil, apperr.Store("get user by email", err)
	}
	return &user, nil
}

func (r *UserRepository) List() ([]models.User, error) {
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, apperr.Store("list users", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, apperr.Store("scan user", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store("list users", err)
	}
	return users, nil
}

func (r *UserRepository) ExistsByID(id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1 AND deleted_at IS NULL)`
	var exists bool
	if err := r.db.QueryRow(query, id).Scan(&exists); err != nil {
		return false, apperr.Store("check user exists", err)
	}
	return exists, nil
}

func (r *UserRepository) Update(user *models.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.db.Exec(query, user.ID, user.Name, user.Email, user.UpdatedAt)
	if err != nil {
		return apperr.Store("update user", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperr.Store("check rows affected", err)
	}
	if rows == 0 {
		return apperr.NotFound(user.ID)
	}
	return nil
}

func (r *UserRepository) Delete(id string) error {
	query := `UPDATE users SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.db.Exec(query, id)
	if err != nil {
		return apperr.Store("delete user", err)
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
