package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/krismos64/SmartPlanning-sub005/internal/models"
	appErrors "github.com/krismos64/SmartPlanning-sub005/pkg/errors"
)

type stubUserRepo struct {
	users      map[string]*models.User
	lastLogins []string
}

func newStubUserRepo(users ...*models.User) *stubUserRepo {
	repo := &stubUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	return repo
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *stubUserRepo) UpdateLastLogin(_ context.Context, id string, _ time.Time) error {
	r.lastLogins = append(r.lastLogins, id)
	return nil
}

func testUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	companyID := "co-1"
	return &models.User{
		ID:           "user-1",
		Email:        "manager@example.com",
		PasswordHash: string(hash),
		FullName:     "Morgan Leroy",
		Role:         models.RoleManager,
		CompanyID:    &companyID,
		Active:       true,
	}
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, nil, nil, AuthConfig{
		AccessTokenSecret: "test-secret",
		AccessTokenExpiry: time.Hour,
		Issuer:            "smartplanning-test",
	})
}

func TestLoginIssuesValidToken(t *testing.T) {
	repo := newStubUserRepo(testUser(t, "s3cret"))
	svc := newTestAuthService(repo)

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "manager@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", res.User.ID)
	assert.Equal(t, []string{"user-1"}, repo.lastLogins)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleManager, claims.Role)
	assert.Equal(t, "co-1", claims.CompanyID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(testUser(t, "s3cret")))

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "manager@example.com", Password: "wrong"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "s3cret"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	user := testUser(t, "s3cret")
	user.Active = false
	svc := newTestAuthService(newStubUserRepo(user))

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "manager@example.com", Password: "s3cret"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrInactiveAccount.Code, appErr.Code)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
}
