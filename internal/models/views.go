package models

import "time"

// TodoView is the read-optimised projection of a todo. AssigneeName and
// AssigneeEmail are resolved from the current user record at read time and
// are never stored on the todo itself, so a user rename is reflected in every
// todo view immediately.
type TodoView struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Done          bool      `json:"done"`
	AssigneeName  string    `json:"assigneeName"`
	AssigneeEmail string    `json:"assigneeEmail"`
	CreatedAt     time.Time `json:"createdTimestamp"`
	UpdatedAt     time.Time `json:"updatedTimestamp"`
}

// NewTodoView joins a todo with its currently assigned user.
func NewTodoView(t *Todo, assignee *User) *TodoView {
	return &TodoView{
		ID:            t.ID,
		Description:   t.Description,
		Done:          t.Done,
		AssigneeName:  assignee.Name,
		AssigneeEmail: assignee.Email,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
