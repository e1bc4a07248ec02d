package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/todo-service/internal/apperr"
	"github.com/taskhive/todo-service/internal/middleware"
)

// respondError maps a service error kind to its HTTP status. Store failures
// and anything unrecognised are fatal for the request and surface as 500.
func respondError(c *gin.Context, err error) {
	switch {
	case apperr.IsNotFound(err):
		middleware.RespondWithError(c, http.StatusNotFound, err.Error())
	case apperr.IsValidation(err):
		middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
	case apperr.IsConflict(err):
		middleware.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("internal error: %v", err)
		middleware.RespondWithError(c, http.StatusInternalServerError, "internal server error")
	}
}
