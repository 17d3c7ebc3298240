package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reflection-backend/internal/domains/admin/model"
	"reflection-backend/internal/domains/admin/service"
	"reflection-backend/internal/shared/response"
)

type AdminHandler struct {
	service service.ServiceInterface
}

func NewAdminHandler(svc service.ServiceInterface) *AdminHandler {
	return &AdminHandler{service: svc}
}

// Login handles POST /v1/admin/auth/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Me handles GET /v1/admin/auth/me
func (h *AdminHandler) Me(c *gin.Context) {
	subjectID, exists := c.Get("subjectID")
	if !exists {
		response.Unauthorized(c, "Authentication required")
		return
	}

	admin, err := h.service.GetProfile(c.Request.Context(), subjectID.(uuid.UUID))
	if err != nil {
		if errors.Is(err, model.ErrAdminNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "Failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, admin.ToResponse())
}
