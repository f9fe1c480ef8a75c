package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"paletto-cards.backend/internal/domain/entities"
	domainerrors "paletto-cards.backend/internal/domain/errors"
	"paletto-cards.backend/internal/interfaces/http/response"
	"paletto-cards.backend/internal/usecases"
)

type MemberHandler struct {
	usecase *usecases.MemberUsecase
}

func NewMemberHandler(usecase *usecases.MemberUsecase) *MemberHandler {
	return &MemberHandler{usecase: usecase}
}

// ListMembers returns the whole roster in creation order.
// GET /api/members
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.usecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, members)
}

// GetMember returns a single member.
// GET /api/members/:id
func (h *MemberHandler) GetMember(c *gin.Context) {
	member, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("member not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, member)
}

// CreateMember creates a member, generating an id from the name when the
// payload carries none.
// POST /api/members
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var input entities.MemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	member, err := h.usecase.Create(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.Conflict("member already exists"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
		"id":      member.ID,
	})
}

// UpdateMember replaces the whole member aggregate; skills and social
// links not present in the payload are gone afterwards.
// PUT /api/members/:id
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	var input entities.MemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if _, err := h.usecase.Update(c.Request.Context(), c.Param("id"), &input); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("member not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// DeleteMember removes a member and all its skills and social links.
// DELETE /api/members/:id
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("member not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true})
}
