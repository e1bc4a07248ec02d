package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/todo-service/internal/middleware"
	"github.com/taskhive/todo-service/internal/models"
)

// TodoManager defines the todo operations used by TodoHandler.
type TodoManager interface {
	ListForUser(ctx context.Context, email string) ([]models.TodoView, error)
	Get(ctx context.Context, id string) (*models.TodoView, error)
	Create(ctx context.Context, description, assigneeEmail string) (*models.TodoView, error)
	SetDone(ctx context.Context, id string, done bool) (*models.TodoView, error)
	Assign(ctx context.Context, id, newAssigneeEmail string) (*models.TodoView, error)
	Edit(ctx context.Context, id, newDescription string) (*models.TodoView, error)
	Delete(ctx context.Context, id string) error
}

type TodoHandler struct {
	todos TodoManager
}

type CreateTodoRequest struct {
	Description   string `json:"description" validate:"required"`
	AssigneeEmail string `json:"assigneeEmail" validate:"required,email"`
}

type AssignTodoRequest struct {
	NewAssigneeEmail string `json:"newAssigneeEmail" validate:"required,email"`
}

type EditTodoRequest struct {
	Description string `json:"description" validate:"required"`
}

func NewTodoHandler(todos TodoManager) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// RegisterRoutes mounts the todo endpoints on the given group.
func (h *TodoHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", h.ListTodos)
	g.POST("", h.CreateTodo)
	g.GET("/:id", h.GetTodo)
	g.PATCH("/:id/done", h.SetDone)
	g.PATCH("/:id/assignee", h.Assign)
	g.PATCH("/:id/description", h.Edit)
	g.DELETE("/:id", h.DeleteTodo)
}

// ListTodos returns the todos assigned to the user behind ?assigneeEmail=.
func (h *TodoHandler) ListTodos(c *gin.Context) {
	todos, err := h.todos.ListForUser(c.Request.Context(), c.Query("assigneeEmail"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

func (h *TodoHandler) GetTodo(c *gin.Context) {
	todo, err := h.todos.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	todo, err := h.todos.Create(c.Request.Context(), req.Description, req.AssigneeEmail)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

// SetDone takes a bare JSON boolean body: true or false.
func (h *TodoHandler) SetDone(c *gin.Context) {
	var done bool
	if err := c.ShouldBindJSON(&done); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.todos.SetDone(c.Request.Context(), c.Param("id"), done)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *TodoHandler) Assign(c *gin.Context) {
	var req AssignTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	todo, err := h.todos.Assign(c.Request.Context(), c.Param("id"), req.NewAssigneeEmail)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *TodoHandler) Edit(c *gin.Context) {
	var req EditTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	todo, err := h.todos.Edit(c.Request.Context(), c.Param("id"), req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	if err := h.todos.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
