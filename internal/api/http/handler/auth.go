package handler

import (
	"errors"
	"net/http"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/blogapp/blog-server/internal/auth"
	"github.com/blogapp/blog-server/internal/users"
	"github.com/gin-gonic/gin"
)

const (
	msgEmailInUse         = "E-mail já está em uso."
	msgInvalidCredentials = "E-mail ou senha incorretos."
	msgPasswordTooLong    = "A senha deve conter no máximo 72 bytes."
)

type AuthHandler struct {
	userService *users.Service
}

func NewAuthHandler(userService *users.Service) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "Erro ao registrar o usuário.", err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), users.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     auth.Role(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, users.ErrEmailInUse):
			respondMessage(c, http.StatusBadRequest, msgEmailInUse)
		case errors.Is(err, users.ErrInvalidRole):
			respondInvalid(c, "Erro ao registrar o usuário.", err)
		case errors.Is(err, users.ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Erro ao registrar o usuário.", Error: msgPasswordTooLong})
		default:
			respondInternal(c, "register", err)
		}
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "Erro ao fazer login.", err)
		return
	}

	token, user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			respondMessage(c, http.StatusBadRequest, msgInvalidCredentials)
			return
		}
		respondInternal(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User: dto.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	})
}

func toUserResponse(u users.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
