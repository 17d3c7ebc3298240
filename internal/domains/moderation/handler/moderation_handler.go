package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reflection-backend/internal/domains/moderation"
	"reflection-backend/internal/shared/response"
)

type ModerationHandler struct {
	service moderation.ServiceInterface
}

func NewModerationHandler(svc moderation.ServiceInterface) *ModerationHandler {
	return &ModerationHandler{service: svc}
}

// ReviewAuthor handles POST /v1/admin/authors/:id/review
func (h *ModerationHandler) ReviewAuthor(c *gin.Context) {
	admin, ok := adminPrincipal(c)
	if !ok {
		return
	}

	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid author id")
		return
	}

	var req moderation.ReviewAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	decision, err := req.ToDecision()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	status, err := h.service.ReviewAuthor(c.Request.Context(), admin, authorID, decision)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, moderation.ReviewResponse{Status: string(status)})
}

// ReviewContent handles POST /v1/admin/content/:id/review
func (h *ModerationHandler) ReviewContent(c *gin.Context) {
	admin, ok := adminPrincipal(c)
	if !ok {
		return
	}

	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid content id")
		return
	}

	var req moderation.ReviewContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	decision, err := req.ToDecision()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	status, err := h.service.ReviewContent(c.Request.Context(), admin, contentID, decision)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, moderation.ReviewResponse{Status: string(status)})
}

// adminPrincipal builds the principal from the authenticated request
// context. The service re-verifies the id against the admin directory.
func adminPrincipal(c *gin.Context) (moderation.AdminPrincipal, bool) {
	v, exists := c.Get("subjectID")
	if !exists {
		response.Unauthorized(c, "Authentication required")
		return moderation.AdminPrincipal{}, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return moderation.AdminPrincipal{}, false
	}
	return moderation.AdminPrincipal{ID: id}, true
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, moderation.ErrUnauthorized):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, moderation.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, moderation.ErrInvalidTransition):
		response.Conflict(c, err.Error())
	case errors.Is(err, moderation.ErrValidation):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "Something went wrong")
	}
}
