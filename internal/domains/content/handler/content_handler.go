package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	authormodel "reflection-backend/internal/domains/author/model"
	"reflection-backend/internal/domains/content/model"
	"reflection-backend/internal/domains/content/service"
	"reflection-backend/internal/shared/response"
)

const maxCoverImageSize = 5 << 20 // 5 MiB

type ContentHandler struct {
	service service.ServiceInterface
}

func NewContentHandler(svc service.ServiceInterface) *ContentHandler {
	return &ContentHandler{service: svc}
}

// Create handles POST /v1/author/content
func (h *ContentHandler) Create(c *gin.Context) {
	authorID, ok := principalID(c)
	if !ok {
		return
	}

	var req model.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	content, err := h.service.Create(c.Request.Context(), authorID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, content)
}

// ListMine handles GET /v1/author/content
func (h *ContentHandler) ListMine(c *gin.Context) {
	authorID, ok := principalID(c)
	if !ok {
		return
	}

	filter := model.ContentFilter{}
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

	contents, total, err := h.service.ListByAuthor(c.Request.Context(), authorID, filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, contents, &response.Meta{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: int(total),
	})
}

// Submit handles POST /v1/author/content/:id/submit
func (h *ContentHandler) Submit(c *gin.Context) {
	h.ownerTransition(c, h.service.Submit)
}

// Archive handles POST /v1/author/content/:id/archive
func (h *ContentHandler) Archive(c *gin.Context) {
	h.ownerTransition(c, h.service.Archive)
}

// UploadCover handles POST /v1/author/content/:id/cover
func (h *ContentHandler) UploadCover(c *gin.Context) {
	authorID, ok := principalID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid content id")
		return
	}

	file, header, err := c.Request.FormFile("cover")
	if err != nil {
		response.BadRequest(c, "Missing cover file")
		return
	}
	defer file.Close()

	if header.Size > maxCoverImageSize {
		response.BadRequest(c, "Cover image exceeds the 5MB limit")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxCoverImageSize))
	if err != nil {
		response.InternalServerError(c, "Failed to read cover file")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/webp" {
		response.BadRequest(c, "Cover must be a JPEG, PNG or WebP image")
		return
	}

	url, err := h.service.UploadCover(c.Request.Context(), id, authorID, data, contentType)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cover_image_url": url})
}

// GetPublished handles GET /v1/authors/:slug/content/:contentSlug
func (h *ContentHandler) GetPublished(c *gin.Context) {
	content, err := h.service.GetPublished(c.Request.Context(), c.Param("slug"), c.Param("contentSlug"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, content.ToPublicResponse())
}

// ListPublished handles GET /v1/authors/:slug/content
func (h *ContentHandler) ListPublished(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	contents, total, err := h.service.ListPublished(c.Request.Context(), c.Param("slug"), page, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}

	items := make([]model.PublicResponse, 0, len(contents))
	for i := range contents {
		items = append(items, contents[i].ToPublicResponse())
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: int(total),
	})
}

// ListPendingReview handles GET /v1/admin/content/pending
func (h *ContentHandler) ListPendingReview(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	contents, total, err := h.service.ListPendingReview(c.Request.Context(), page, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, contents, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: int(total),
	})
}

func (h *ContentHandler) ownerTransition(c *gin.Context, fn func(ctx context.Context, id, authorID uuid.UUID) (*model.Content, error)) {
	authorID, ok := principalID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid content id")
		return
	}

	content, err := fn(c.Request.Context(), id, authorID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, content)
}

func principalID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("subjectID")
	if !exists {
		response.Unauthorized(c, "Authentication required")
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ContentHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrContentNotFound), errors.Is(err, authormodel.ErrAuthorNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrDuplicateSlug):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrInvalidSlug):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrInvalidState), errors.Is(err, model.ErrAlreadyReviewed):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrNotOwner), errors.Is(err, model.ErrAuthorNotApproved):
		response.Forbidden(c, err.Error())
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", verrs)
			return
		}
		response.InternalServerError(c, "Something went wrong")
	}
}
