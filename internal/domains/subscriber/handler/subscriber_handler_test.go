package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "reflection-backend/internal/domains/author/model"
	"reflection-backend/internal/domains/subscriber/model"
)

type stubService struct {
	sub *model.AuthorSubscriber
	err error

	gotSlug  string
	gotEmail string
}

func (s *stubService) Subscribe(ctx context.Context, authorSlug string, req *model.SubscribeRequest) (*model.AuthorSubscriber, error) {
	s.gotSlug = authorSlug
	s.gotEmail = req.Email
	return s.sub, s.err
}

func (s *stubService) Unsubscribe(ctx context.Context, authorSlug, email string) error {
	s.gotSlug = authorSlug
	s.gotEmail = email
	return s.err
}

func setupRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewSubscriberHandler(svc)
	router.POST("/authors/:slug/subscribe", h.Subscribe)
	router.POST("/authors/:slug/unsubscribe", h.Unsubscribe)
	return router
}

func doPost(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubscribeEndpoint(t *testing.T) {
	svc := &stubService{sub: &model.AuthorSubscriber{
		ID:        uuid.New(),
		AuthorID:  uuid.New(),
		Email:     "reader@example.com",
		Status:    model.StatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}}
	router := setupRouter(svc)

	w := doPost(t, router, "/authors/jane-doe/subscribe",
		gin.H{"email": "reader@example.com"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ACTIVE"`)
	assert.Equal(t, "jane-doe", svc.gotSlug)
	assert.Equal(t, "reader@example.com", svc.gotEmail)
}

func TestSubscribeEndpointAlreadyActive(t *testing.T) {
	svc := &stubService{err: model.ErrAlreadySubscribed}
	router := setupRouter(svc)

	w := doPost(t, router, "/authors/jane-doe/subscribe",
		gin.H{"email": "reader@example.com"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"CONFLICT"`)
}

func TestSubscribeEndpointUnknownAuthor(t *testing.T) {
	svc := &stubService{err: authormodel.ErrAuthorNotFound}
	router := setupRouter(svc)

	w := doPost(t, router, "/authors/nobody/subscribe",
		gin.H{"email": "reader@example.com"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubscribeEndpointValidation(t *testing.T) {
	svc := &stubService{err: validation.Errors{"email": errors.New("must be a valid email address")}}
	router := setupRouter(svc)

	w := doPost(t, router, "/authors/jane-doe/subscribe",
		gin.H{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnsubscribeEndpoint(t *testing.T) {
	svc := &stubService{}
	router := setupRouter(svc)

	w := doPost(t, router, "/authors/jane-doe/unsubscribe",
		gin.H{"email": "reader@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"unsubscribed":true`)
}

func TestUnsubscribeEndpointNotSubscribed(t *testing.T) {
	svc := &stubService{err: model.ErrSubscriptionNotFound}
	router := setupRouter(svc)

	w := doPost(t, router, "/authors/jane-doe/unsubscribe",
		gin.H{"email": "reader@example.com"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
