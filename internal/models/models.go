package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdTimestamp"`
	UpdatedAt time.Time `json:"updatedTimestamp"`
}

// Todo is the write model. AssignedUserID is never serialised to the API
// response; clients see the resolved assignee fields on TodoView instead.
type Todo struct {
	ID             string    `json:"id"`
	Description    string    `json:"description"`
	Done           bool      `json:"done"`
	AssignedUserID string    `json:"-"`
	CreatedAt      time.Time `json:"createdTimestamp"`
	UpdatedAt      time.Time `json:"updatedTimestamp"`
}
