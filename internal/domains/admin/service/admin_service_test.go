package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"reflection-backend/internal/domains/admin/model"
	"reflection-backend/pkg/jwt"
)

type fakeRepo struct {
	admins map[string]*model.Admin
}

func (r *fakeRepo) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	a, ok := r.admins[email]
	if !ok {
		return nil, model.ErrAdminNotFound
	}
	return a, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	for _, a := range r.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, model.ErrAdminNotFound
}

func (r *fakeRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := r.GetByID(ctx, id)
	return err == nil, nil
}

func newTestService(t *testing.T) (ServiceInterface, *model.Admin) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &model.Admin{
		ID:           uuid.New(),
		Email:        "ops@example.com",
		Name:         "Ops Admin",
		PasswordHash: string(hash),
	}

	repo := &fakeRepo{admins: map[string]*model.Admin{admin.Email: admin}}
	return NewAdminService(repo, jwt.NewManager("test-secret")), admin
}

func TestLoginSuccess(t *testing.T) {
	svc, admin := newTestService(t)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "ops@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, admin.ID, resp.Admin.ID)

	// The access token must carry the admin role.
	claims, err := jwt.NewManager("test-secret").ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, admin.ID.String(), claims.SubjectID)
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "OPS@Example.com",
		Password: "correct-horse",
	})
	assert.NoError(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "ops@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	// Indistinguishable from a wrong password.
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLoginValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &model.LoginRequest{Email: "", Password: ""})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), &model.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)
}
