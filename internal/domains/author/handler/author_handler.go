package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"reflection-backend/internal/domains/author/model"
	"reflection-backend/internal/domains/author/service"
	"reflection-backend/internal/shared/response"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Register handles POST /v1/authors/register
func (h *AuthorHandler) Register(c *gin.Context) {
	var req model.RegisterAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	a, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrDuplicateEmail), errors.Is(err, model.ErrDuplicateSlug):
			response.Conflict(c, err.Error())
		default:
			var verrs validation.Errors
			if errors.As(err, &verrs) {
				response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", verrs)
				return
			}
			response.InternalServerError(c, "Failed to register author")
		}
		return
	}

	response.Success(c, http.StatusCreated, a.ToAdminResponse())
}

// GetBySlug handles GET /v1/authors/:slug
func (h *AuthorHandler) GetBySlug(c *gin.Context) {
	a, err := h.service.GetApprovedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "Failed to load author")
		return
	}

	response.Success(c, http.StatusOK, a.ToResponse())
}

// List handles GET /v1/authors, the public directory of approved authors.
func (h *AuthorHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	authors, total, err := h.service.ListApproved(c.Request.Context(), page, limit)
	if err != nil {
		response.InternalServerError(c, "Failed to list authors")
		return
	}

	items := make([]model.AuthorResponse, 0, len(authors))
	for i := range authors {
		items = append(items, authors[i].ToResponse())
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: int(total),
	})
}

// AdminList handles GET /v1/admin/authors, applications with status filter.
func (h *AuthorHandler) AdminList(c *gin.Context) {
	filter := model.AuthorFilter{}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	if statusStr := c.Query("status"); statusStr != "" {
		status := model.Status(statusStr)
		if !status.IsValid() {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		filter.Status = &status
	}

	authors, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "Failed to list authors")
		return
	}

	items := make([]model.AdminAuthorResponse, 0, len(authors))
	for i := range authors {
		items = append(items, authors[i].ToAdminResponse())
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: int(total),
	})
}
