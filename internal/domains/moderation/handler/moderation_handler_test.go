package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "reflection-backend/internal/domains/author/model"
	contentmodel "reflection-backend/internal/domains/content/model"
	"reflection-backend/internal/domains/moderation"
)

type stubService struct {
	authorStatus  authormodel.Status
	contentStatus contentmodel.Status
	err           error

	gotAdmin    moderation.AdminPrincipal
	gotDecision moderation.Decision
}

func (s *stubService) ReviewAuthor(ctx context.Context, admin moderation.AdminPrincipal, authorID uuid.UUID, decision moderation.Decision) (authormodel.Status, error) {
	s.gotAdmin = admin
	s.gotDecision = decision
	return s.authorStatus, s.err
}

func (s *stubService) ReviewContent(ctx context.Context, admin moderation.AdminPrincipal, contentID uuid.UUID, decision moderation.Decision) (contentmodel.Status, error) {
	s.gotAdmin = admin
	s.gotDecision = decision
	return s.contentStatus, s.err
}

func setupRouter(svc moderation.ServiceInterface, adminID *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authed := func(c *gin.Context) {
		if adminID != nil {
			c.Set("subjectID", *adminID)
		}
		c.Next()
	}

	h := NewModerationHandler(svc)
	router.POST("/admin/authors/:id/review", authed, h.ReviewAuthor)
	router.POST("/admin/content/:id/review", authed, h.ReviewContent)
	return router
}

func doReview(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestReviewAuthorEndpoint(t *testing.T) {
	adminID := uuid.New()
	svc := &stubService{authorStatus: authormodel.StatusApproved}
	router := setupRouter(svc, &adminID)

	w := doReview(t, router, "/admin/authors/"+uuid.NewString()+"/review",
		gin.H{"action": "approve"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"APPROVED"`)
	assert.Equal(t, adminID, svc.gotAdmin.ID)
	assert.True(t, svc.gotDecision.IsApprove())
}

func TestReviewAuthorEndpointRejectPassesReason(t *testing.T) {
	adminID := uuid.New()
	svc := &stubService{authorStatus: authormodel.StatusRejected}
	router := setupRouter(svc, &adminID)

	w := doReview(t, router, "/admin/authors/"+uuid.NewString()+"/review",
		gin.H{"action": "reject", "reason": "low quality samples"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "low quality samples", svc.gotDecision.Reason)
}

func TestReviewAuthorEndpointBadInput(t *testing.T) {
	adminID := uuid.New()
	svc := &stubService{}
	router := setupRouter(svc, &adminID)

	// Invalid action.
	w := doReview(t, router, "/admin/authors/"+uuid.NewString()+"/review",
		gin.H{"action": "promote"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Reject without a reason.
	w = doReview(t, router, "/admin/authors/"+uuid.NewString()+"/review",
		gin.H{"action": "reject"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed id.
	w = doReview(t, router, "/admin/authors/not-a-uuid/review",
		gin.H{"action": "approve"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewAuthorEndpointNoPrincipal(t *testing.T) {
	svc := &stubService{}
	router := setupRouter(svc, nil)

	w := doReview(t, router, "/admin/authors/"+uuid.NewString()+"/review",
		gin.H{"action": "approve"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReviewEndpointErrorMapping(t *testing.T) {
	adminID := uuid.New()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"unauthorized", moderation.ErrUnauthorized, http.StatusUnauthorized},
		{"not found", moderation.ErrNotFound, http.StatusNotFound},
		{"invalid transition", moderation.ErrInvalidTransition, http.StatusConflict},
		{"internal", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			router := setupRouter(svc, &adminID)

			w := doReview(t, router, "/admin/content/"+uuid.NewString()+"/review",
				gin.H{"action": "approve"})
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestReviewContentEndpoint(t *testing.T) {
	adminID := uuid.New()
	svc := &stubService{contentStatus: contentmodel.StatusPublished}
	router := setupRouter(svc, &adminID)

	w := doReview(t, router, "/admin/content/"+uuid.NewString()+"/review",
		gin.H{"action": "approve"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"PUBLISHED"`)
}
