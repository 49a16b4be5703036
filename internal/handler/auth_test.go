package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efriedrich/movie-api/internal/auth"
	"github.com/efriedrich/movie-api/internal/repository"
)

func loginApp(store *fakeUserStore) *echo.Echo {
	e := echo.New()
	h := NewAuthHandler(testConfig(), auth.NewVerifier(store))
	e.POST("/login", h.Login)
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registeredStore(t *testing.T, username, password string) *fakeUserStore {
	t.Helper()
	store := &fakeUserStore{}
	_, err := store.Create(context.Background(), repository.NewUser{
		Username: username,
		Password: password,
		Email:    username + "@example.com",
	}, 4)
	require.NoError(t, err)
	return store
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	store := registeredStore(t, "alice", "open sesame")
	rec := postJSON(loginApp(store), "/login", `{"username":"alice","password":"open sesame"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		User  map[string]any `json:"user"`
		Token string         `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.User["username"])
	assert.NotEmpty(t, resp.Token)
	// The password hash must never appear in the response body.
	assert.NotContains(t, resp.User, "password")
	assert.NotContains(t, rec.Body.String(), store.find("alice").PasswordHash)
}

func TestLogin_TokenResolvesBackToUser(t *testing.T) {
	t.Parallel()

	store := registeredStore(t, "alice", "open sesame")
	rec := postJSON(loginApp(store), "/login", `{"username":"alice","password":"open sesame"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	u, err := auth.VerifyHeader(context.Background(), testConfig().JWTSecret, store, "Bearer "+resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestLogin_UnknownUsername(t *testing.T) {
	t.Parallel()

	rec := postJSON(loginApp(&fakeUserStore{}), "/login", `{"username":"nobody","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string `json:"message"`
		User    any    `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Incorrect username", resp.Message)
	assert.Nil(t, resp.User)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	store := registeredStore(t, "alice", "open sesame")
	rec := postJSON(loginApp(store), "/login", `{"username":"alice","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string `json:"message"`
		User    any    `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Incorrect password.", resp.Message)
	assert.Nil(t, resp.User)
}

func TestLogin_StoreFailure(t *testing.T) {
	t.Parallel()

	rec := postJSON(loginApp(&fakeUserStore{err: errors.New("store down")}), "/login",
		`{"username":"alice","password":"open sesame"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
