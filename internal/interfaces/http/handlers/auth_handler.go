package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"paletto-cards.backend/internal/domain/entities"
	domainerrors "paletto-cards.backend/internal/domain/errors"
	"paletto-cards.backend/internal/interfaces/http/response"
	"paletto-cards.backend/internal/usecases"
)

type AuthHandler struct {
	usecase *usecases.AuthUsecase
}

func NewAuthHandler(usecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{usecase: usecase}
}

// Login exchanges the admin password for a session token.
// POST /api/auth
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.usecase.Login(c.Request.Context(), &input, c.ClientIP())
	if err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.Unauthorized("invalid password"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ChangePassword rotates the admin password after verifying the current one.
// PUT /api/auth
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var input entities.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.usecase.ChangePassword(c.Request.Context(), &input); err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.Unauthorized("invalid current password"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}
