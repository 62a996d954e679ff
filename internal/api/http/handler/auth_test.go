package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lmarques/auth-server/internal/mocks"
	"github.com/lmarques/auth-server/internal/model"
	"github.com/lmarques/auth-server/internal/testutil"
)

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	userID := uuid.New()
	svc.On("Register", mock.Anything, "Luzma", "a@b.com", "12345678").
		Return(model.User{ID: userID, Username: "Luzma", Email: "a@b.com", CreatedAt: time.Now()}, nil)

	h := NewAuth(svc, &mocks.TokenManager{}, lg)

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"username":"Luzma","email":"a@b.com","password":"12345678"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Code int `json:"code"`
		Data struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			Email    string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, userID.String(), resp.Data.ID)
	assert.Equal(t, "Luzma", resp.Data.Username)
	assert.Equal(t, "a@b.com", resp.Data.Email)
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Register", mock.Anything, "Luzma", "a@b.com", "12345678").
		Return(model.User{}, model.ErrDuplicateEmail)

	h := NewAuth(svc, &mocks.TokenManager{}, lg)

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"username":"Luzma","email":"a@b.com","password":"12345678"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already registered")
}

func TestAuth_Register_MissingFields(t *testing.T) {
	t.Parallel()

	h := NewAuth(&mocks.AuthService{}, &mocks.TokenManager{}, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"email":"a@b.com"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_Register_InvalidBody(t *testing.T) {
	t.Parallel()

	h := NewAuth(&mocks.AuthService{}, &mocks.TokenManager{}, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	tokens := &mocks.TokenManager{}
	lg := testutil.MakeNoopLogger()

	svc.On("Login", mock.Anything, "a@b.com", "12345678").
		Return(model.TokenPair{AccessToken: "acc", RefreshToken: "ref"}, nil)
	tokens.On("Lifetime", model.TokenAccess).Return(time.Hour)
	tokens.On("Lifetime", model.TokenRefresh).Return(7 * 24 * time.Hour)

	h := NewAuth(svc, tokens, lg)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"a@b.com","password":"12345678"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data loginResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "acc", resp.Data.AccessToken)
	assert.Equal(t, "ref", resp.Data.RefreshToken)

	cookies := rec.Result().Cookies()
	byName := make(map[string]*http.Cookie, len(cookies))
	for _, c := range cookies {
		byName[c.Name] = c
	}

	require.Contains(t, byName, "access_token")
	assert.Equal(t, "acc", byName["access_token"].Value)
	assert.Equal(t, 3600, byName["access_token"].MaxAge)
	assert.True(t, byName["access_token"].HttpOnly)

	require.Contains(t, byName, "refresh_token")
	assert.Equal(t, "ref", byName["refresh_token"].Value)
	assert.Equal(t, 604800, byName["refresh_token"].MaxAge)
}

func TestAuth_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Login", mock.Anything, "a@b.com", "wrong").
		Return(model.TokenPair{}, model.ErrInvalidCredentials)

	h := NewAuth(svc, &mocks.TokenManager{}, lg)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"a@b.com","password":"wrong"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuth_Login_IssuanceFailure(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Login", mock.Anything, "a@b.com", "12345678").
		Return(model.TokenPair{}, model.ErrTokenIssuance)

	h := NewAuth(svc, &mocks.TokenManager{}, lg)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"a@b.com","password":"12345678"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}
