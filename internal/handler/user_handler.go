package handler

import (
	"net/http"

	"adboard/internal/middleware"
	"adboard/internal/model"
	"adboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UserHandler handles user requests
type UserHandler struct {
	service service.UserService
	log     zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{service: s, log: log}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := getPathID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, middleware.NotFoundBody)
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.UserResponse{
		Username:         user.Username,
		RegistrationTime: user.RegistrationTime.Unix(),
	})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info().Int64("user_id", user.ID).Msg("user created")
	c.JSON(http.StatusCreated, model.CreateUserResponse{ID: user.ID, Username: user.Username})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := getPathID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, middleware.NotFoundBody)
		return
	}

	var req model.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.UpdateUser(c.Request.Context(), id, req); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: model.StatusSuccess})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := getPathID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, middleware.NotFoundBody)
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info().Int64("user_id", id).Msg("user deleted")
	c.JSON(http.StatusOK, model.StatusResponse{Status: model.StatusSuccess})
}

// RegisterUserRoutes registers user routes. idGuard runs before every handler
// that takes an :id.
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, idGuard gin.HandlerFunc) {
	userGroup := rg.Group("/users")
	{
		userGroup.POST("/", h.CreateUser)
		userGroup.GET("/:id", idGuard, h.GetUser)
		userGroup.PATCH("/:id", idGuard, h.UpdateUser)
		userGroup.DELETE("/:id", idGuard, h.DeleteUser)
	}
}
