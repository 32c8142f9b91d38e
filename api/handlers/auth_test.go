package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/siga-greffe/greffe-api/api/handlers"
	"github.com/siga-greffe/greffe-api/models"
	"github.com/siga-greffe/greffe-api/registry/mocks"
)

func TestAuth_LoginHandlerSuccess(t *testing.T) {
	s, _, _, _ := newHandlerStore(t)
	auth := &mocks.AuthService{}
	auth.On("Login", mock.Anything, "a.mensah@justice.bj", "secret").Return(models.AuthData{
		AccessToken: "jeton-backend",
		Email:       "a.mensah@justice.bj",
		NomComplet:  "Afi MENSAH",
		Roles:       []string{"GREFFIER_AUDIENCE"},
	}, nil)

	body, _ := json.Marshal(map[string]string{"email": "a.mensah@justice.bj", "password": "secret"})
	req, _ := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))

	u := handlers.Auth{Auth: auth, Store: s}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.LoginHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var out struct {
		Token   string             `json:"token"`
		Session models.SessionInfo `json:"session"`
	}
	_ = json.Unmarshal(rr.Body.Bytes(), &out)
	assert.Equal(t, "jeton-backend", out.Token)
	assert.True(t, out.Session.Authenticated)
	assert.Equal(t, models.RoleGreffierAudience, out.Session.Role)
	assert.Equal(t, "Afi MENSAH", out.Session.FullName)

	assert.Equal(t, "jeton-backend", s.Session.Token())
}

func TestAuth_LoginHandlerEmptyFullNameFallsBackToEmail(t *testing.T) {
	s, _, _, _ := newHandlerStore(t)
	auth := &mocks.AuthService{}
	auth.On("Login", mock.Anything, "k.ablo@justice.bj", "secret").Return(models.AuthData{
		AccessToken: "jeton",
		Email:       "k.ablo@justice.bj",
	}, nil)

	body, _ := json.Marshal(map[string]string{"email": "k.ablo@justice.bj", "password": "secret"})
	req, _ := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))

	u := handlers.Auth{Auth: auth, Store: s}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "k.ablo", s.Session.FullName())
}

func TestAuth_LoginHandlerBadCredentials(t *testing.T) {
	s, _, _, _ := newHandlerStore(t)
	auth := &mocks.AuthService{}
	auth.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(models.AuthData{}, errors.New("identifiants invalides"))

	body, _ := json.Marshal(map[string]string{"email": "x@justice.bj", "password": "faux"})
	req, _ := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))

	u := handlers.Auth{Auth: auth, Store: s}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.LoginHandler).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusUnauthorized {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusUnauthorized)
	}
	assert.False(t, s.Session.IsAuthenticated())
}

func TestAuth_LoginHandlerMissingFields(t *testing.T) {
	s, _, _, _ := newHandlerStore(t)
	u := handlers.Auth{Auth: &mocks.AuthService{}, Store: s}

	body, _ := json.Marshal(map[string]string{"email": "x@justice.bj"})
	req, _ := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.LoginHandler).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAuth_LogoutHandlerClearsSession(t *testing.T) {
	s, _, _, _ := newHandlerStore(t)
	s.Session.Login(models.RoleMagistrat, "jeton", "J", "j@justice.bj")

	req, _ := http.NewRequest("DELETE", "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer jeton")

	u := handlers.Auth{Auth: &mocks.AuthService{}, Store: s}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.LogoutHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, s.Session.IsAuthenticated())
}

func TestAuth_SessionHandler(t *testing.T) {
	s, _, _, _ := newHandlerStore(t)
	s.Session.Login(models.RoleChefGreffe, "jeton", "Chef", "chef@justice.bj")

	req, _ := http.NewRequest("GET", "/api/v1/auth/session", nil)

	u := handlers.Auth{Auth: &mocks.AuthService{}, Store: s}
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.SessionHandler).ServeHTTP(rr, req)

	var out models.SessionInfo
	_ = json.Unmarshal(rr.Body.Bytes(), &out)
	assert.True(t, out.Authenticated)
	assert.Equal(t, models.RoleChefGreffe, out.Role)
}
