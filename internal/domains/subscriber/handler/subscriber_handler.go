package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	authormodel "reflection-backend/internal/domains/author/model"
	"reflection-backend/internal/domains/subscriber/model"
	"reflection-backend/internal/domains/subscriber/service"
	"reflection-backend/internal/shared/response"
)

type SubscriberHandler struct {
	service service.ServiceInterface
}

func NewSubscriberHandler(svc service.ServiceInterface) *SubscriberHandler {
	return &SubscriberHandler{service: svc}
}

// Subscribe handles POST /v1/authors/:slug/subscribe
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), c.Param("slug"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, sub)
}

// Unsubscribe handles POST /v1/authors/:slug/unsubscribe
func (h *SubscriberHandler) Unsubscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), c.Param("slug"), req.Email); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unsubscribed": true})
}

func (h *SubscriberHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authormodel.ErrAuthorNotFound), errors.Is(err, model.ErrSubscriptionNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrAlreadySubscribed):
		response.Conflict(c, err.Error())
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", verrs)
			return
		}
		response.InternalServerError(c, "Something went wrong")
	}
}
