package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-admin/internal/delivery/http/middleware"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/validator"
)

func withUser(r *http.Request, userID int64, tokenID string) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.TokenIDKey, tokenID)
	return r.WithContext(ctx)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		loginErr error
		wantCode int
	}{
		{name: "ok", body: `{"username":"dr.li","password":"secret1"}`, wantCode: http.StatusOK},
		{name: "bad json", body: `{`, wantCode: http.StatusBadRequest},
		{name: "missing password", body: `{"username":"dr.li"}`, wantCode: http.StatusBadRequest},
		{name: "wrong password", body: `{"username":"dr.li","password":"nope"}`, loginErr: usecase.ErrInvalidCredentials, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{loginErr: tt.loginErr}, validator.NewValidator(), nil)
			rec := httptest.NewRecorder()
			h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body)))

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.wantCode, rec.Body.String())
			}
		})
	}
}

func TestLogout_UsesContextIdentity(t *testing.T) {
	uc := &mockAuthUsecase{}
	h := NewAuthHandler(uc, validator.NewValidator(), nil)

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil), 7, "tok-1")
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if uc.logoutUser != 7 || uc.logoutToken != "tok-1" {
		t.Errorf("logout got user %d token %q", uc.logoutUser, uc.logoutToken)
	}
}

func TestGetCurrentUser_RequiresContext(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{}, validator.NewValidator(), nil)
	rec := httptest.NewRecorder()
	h.GetCurrentUser(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRegisterPatient(t *testing.T) {
	valid := `{"username":"wang","password":"secret1","name":"王芳","gender":"Female","birth_date":"1990-06-15","id_number":"110101199006150021"}`

	tests := []struct {
		name        string
		body        string
		registerErr error
		wantCode    int
	}{
		{name: "created", body: valid, wantCode: http.StatusCreated},
		{name: "bad gender", body: strings.Replace(valid, "Female", "Other", 1), wantCode: http.StatusBadRequest},
		{name: "bad date", body: strings.Replace(valid, "1990-06-15", "15/06/1990", 1), wantCode: http.StatusBadRequest},
		{name: "duplicate username", body: valid, registerErr: usecase.ErrUsernameAlreadyExists, wantCode: http.StatusConflict},
		{name: "duplicate id number", body: valid, registerErr: usecase.ErrIDNumberAlreadyExists, wantCode: http.StatusConflict},
		{name: "missing column", body: valid, registerErr: fmt.Errorf("%w: patients.name", usecase.ErrMissingRequiredField), wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockAuthUsecase{registerErr: tt.registerErr}
			h := NewRegistrationHandler(uc, validator.NewValidator())
			req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/registrations/patients", strings.NewReader(tt.body)), 42, "tok")
			rec := httptest.NewRecorder()
			h.RegisterPatient(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantCode == http.StatusCreated && uc.actorID != 42 {
				t.Errorf("actor = %d, want 42", uc.actorID)
			}
		})
	}
}

func TestRegisterDoctor_Validation(t *testing.T) {
	h := NewRegistrationHandler(&mockAuthUsecase{}, validator.NewValidator())
	body := `{"username":"dr","password":"secret1","name":"Li","department":"ENT","working_hours":"9-5"}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/registrations/doctors", strings.NewReader(body)), 1, "tok")
	rec := httptest.NewRecorder()
	h.RegisterDoctor(rec, req)

	// username shorter than three characters
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "username must be at least 3 characters") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
