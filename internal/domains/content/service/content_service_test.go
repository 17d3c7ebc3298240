package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "reflection-backend/internal/domains/author/model"
	"reflection-backend/internal/domains/content/model"
)

type fakeContentRepo struct {
	created *model.Content
}

func (r *fakeContentRepo) Create(ctx context.Context, c *model.Content) (*model.Content, error) {
	r.created = c
	out := *c
	out.ID = uuid.New()
	return &out, nil
}

func (r *fakeContentRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Content, error) {
	return nil, model.ErrContentNotFound
}

func (r *fakeContentRepo) GetPublishedBySlug(ctx context.Context, authorID uuid.UUID, slug string) (*model.Content, error) {
	return nil, model.ErrContentNotFound
}

func (r *fakeContentRepo) List(ctx context.Context, filter model.ContentFilter) ([]model.Content, int64, error) {
	return nil, 0, nil
}

func (r *fakeContentRepo) ReviewIfPending(ctx context.Context, id uuid.UUID, approve bool, feedback *string, reviewedBy uuid.UUID, reviewedAt time.Time) (*model.Content, error) {
	return nil, model.ErrContentNotFound
}

func (r *fakeContentRepo) SubmitForReview(ctx context.Context, id, authorID uuid.UUID) (*model.Content, error) {
	return nil, model.ErrContentNotFound
}

func (r *fakeContentRepo) Archive(ctx context.Context, id, authorID uuid.UUID) (*model.Content, error) {
	return nil, model.ErrContentNotFound
}

func (r *fakeContentRepo) UpdateCoverImage(ctx context.Context, id uuid.UUID, url string) error {
	return model.ErrContentNotFound
}

type fakeAuthorRepo struct {
	author *authormodel.Author
}

func (r *fakeAuthorRepo) Create(ctx context.Context, a *authormodel.Author) (*authormodel.Author, error) {
	return a, nil
}

func (r *fakeAuthorRepo) GetByID(ctx context.Context, id uuid.UUID) (*authormodel.Author, error) {
	if r.author == nil || r.author.ID != id {
		return nil, authormodel.ErrAuthorNotFound
	}
	return r.author, nil
}

func (r *fakeAuthorRepo) GetBySlug(ctx context.Context, slug string) (*authormodel.Author, error) {
	if r.author == nil || r.author.Slug != slug {
		return nil, authormodel.ErrAuthorNotFound
	}
	return r.author, nil
}

func (r *fakeAuthorRepo) GetAll(ctx context.Context, filter authormodel.AuthorFilter) ([]authormodel.Author, int64, error) {
	return nil, 0, nil
}

func (r *fakeAuthorRepo) ReviewIfPending(ctx context.Context, id uuid.UUID, newStatus authormodel.Status, reason *string, reviewedAt time.Time) (*authormodel.Author, error) {
	return nil, authormodel.ErrAuthorNotFound
}

type nopStorage struct{}

func (nopStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	return "https://cdn.example.com/" + key, nil
}

func newTestService(status authormodel.Status) (ServiceInterface, *fakeContentRepo, uuid.UUID) {
	author := &authormodel.Author{
		ID:     uuid.New(),
		Email:  "jane@example.com",
		Name:   "Jane Writer",
		Slug:   "jane-writer",
		Status: status,
	}
	repo := &fakeContentRepo{}
	svc := NewContentService(repo, &fakeAuthorRepo{author: author}, nopStorage{})
	return svc, repo, author.ID
}

func TestCreateGeneratesSlugFromTitle(t *testing.T) {
	svc, repo, authorID := newTestService(authormodel.StatusApproved)

	c, err := svc.Create(context.Background(), authorID, &model.CreateContentRequest{
		Type:   model.TypeNewsletter,
		Title:  "My First Newsletter!",
		Body:   "hello readers",
		Access: model.AccessFree,
	})
	require.NoError(t, err)
	assert.Equal(t, "my-first-newsletter", c.Slug)
	assert.Equal(t, model.StatusDraft, repo.created.Status)
}

func TestCreateKeepsExplicitSlug(t *testing.T) {
	svc, _, authorID := newTestService(authormodel.StatusApproved)

	c, err := svc.Create(context.Background(), authorID, &model.CreateContentRequest{
		Type:   model.TypeBlog,
		Title:  "My First Newsletter!",
		Slug:   "custom-slug",
		Body:   "hello readers",
		Access: model.AccessFree,
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", c.Slug)
}

func TestCreateUnsluggableTitle(t *testing.T) {
	svc, _, authorID := newTestService(authormodel.StatusApproved)

	_, err := svc.Create(context.Background(), authorID, &model.CreateContentRequest{
		Type:   model.TypeBlog,
		Title:  "!!!",
		Body:   "hello readers",
		Access: model.AccessFree,
	})
	assert.ErrorIs(t, err, model.ErrInvalidSlug)
}

func TestCreateSubmitSkipsDraft(t *testing.T) {
	svc, repo, authorID := newTestService(authormodel.StatusApproved)

	_, err := svc.Create(context.Background(), authorID, &model.CreateContentRequest{
		Type:   model.TypeArticle,
		Title:  "Deep Dive",
		Body:   "hello readers",
		Access: model.AccessPaid,
		Submit: true,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPendingReview, repo.created.Status)
}

func TestCreateRequiresApprovedAuthor(t *testing.T) {
	svc, _, authorID := newTestService(authormodel.StatusPending)

	_, err := svc.Create(context.Background(), authorID, &model.CreateContentRequest{
		Type:   model.TypeBlog,
		Title:  "Deep Dive",
		Body:   "hello readers",
		Access: model.AccessFree,
	})
	assert.ErrorIs(t, err, model.ErrAuthorNotApproved)
}
