package handler

import (
	"errors"
	"net/http"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/blogapp/blog-server/internal/api/http/middleware"
	"github.com/blogapp/blog-server/internal/auth"
	"github.com/blogapp/blog-server/internal/users"
	"github.com/gin-gonic/gin"
)

const msgUserNotFound = "Usuário não encontrado."

type UserHandler struct {
	userService *users.Service
}

func NewUserHandler(userService *users.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfile lets a user edit their own profile. Administrators may edit
// any profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id := c.Param("id")
	identity, ok := middleware.IdentityFrom(c)
	if !ok || (identity.SubjectID != id && identity.Role != auth.RoleAdministrador) {
		respondMessage(c, http.StatusForbidden, middleware.MsgForbidden)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "Erro ao atualizar o perfil.", err)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), id, users.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			respondMessage(c, http.StatusNotFound, msgUserNotFound)
		case errors.Is(err, users.ErrEmailInUse):
			respondMessage(c, http.StatusBadRequest, msgEmailInUse)
		case errors.Is(err, users.ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Erro ao atualizar o perfil.", Error: msgPasswordTooLong})
		default:
			respondInternal(c, "update profile", err)
		}
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// Dashboard lists users, optionally filtered by name, email and role.
func (h *UserHandler) Dashboard(c *gin.Context) {
	filter := users.ListFilter{
		Name:  c.Query("name"),
		Email: c.Query("email"),
	}
	if r := c.Query("role"); r != "" {
		role, ok := auth.ParseRole(r)
		if !ok {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "Erro ao listar os usuários.",
				Error:   "O campo role deve ser um de: administrador, autor, leitor.",
			})
			return
		}
		filter.Role = role
	}

	list, err := h.userService.List(c.Request.Context(), filter)
	if err != nil {
		respondInternal(c, "list users", err)
		return
	}

	resp := make([]dto.UserResponse, len(list))
	for i, u := range list {
		resp[i] = toUserResponse(u)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			respondMessage(c, http.StatusNotFound, msgUserNotFound)
			return
		}
		respondInternal(c, "delete user", err)
		return
	}

	respondMessage(c, http.StatusOK, "Usuário excluído com sucesso.")
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "Erro ao atualizar o papel do usuário.", err)
		return
	}

	user, err := h.userService.UpdateRole(c.Request.Context(), c.Param("id"), auth.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			respondMessage(c, http.StatusNotFound, msgUserNotFound)
		case errors.Is(err, users.ErrInvalidRole):
			respondInvalid(c, "Erro ao atualizar o papel do usuário.", err)
		default:
			respondInternal(c, "update role", err)
		}
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
