package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/todo-service/internal/middleware"
	"github.com/taskhive/todo-service/internal/models"
)

// UserManager defines the user operations used by UserHandler.
type UserManager interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, name, email string) (*models.User, error)
	ChangeName(ctx context.Context, id, newName string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type UserHandler struct {
	users UserManager
}

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type ChangeNameRequest struct {
	Name string `json:"name" validate:"required"`
}

func NewUserHandler(users UserManager) *UserHandler {
	return &UserHandler{users: users}
}

// RegisterRoutes mounts the user endpoints on the given group.
func (h *UserHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", h.ListUsers)
	g.POST("", h.CreateUser)
	g.GET("/by-email", h.GetUserByEmail)
	g.GET("/:id", h.GetUser)
	g.PUT("/:id", h.ChangeName)
	g.PATCH("/:id/name", h.ChangeName)
	g.DELETE("/:id", h.DeleteUser)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.users.GetByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) ChangeName(c *gin.Context) {
	var req ChangeNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	user, err := h.users.ChangeName(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
