package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/pkg/response"
)

type mockDoctorUsecase struct {
	got  *dto.ListRequest
	page *dto.PageResponse[dto.DoctorResponse]
	err  error
}

func (m *mockDoctorUsecase) ListDoctors(ctx context.Context, req *dto.ListRequest) (*dto.PageResponse[dto.DoctorResponse], error) {
	m.got = req
	return m.page, m.err
}

type mockPatientUsecase struct {
	got  *dto.ListRequest
	page *dto.PageResponse[dto.PatientResponse]
}

func (m *mockPatientUsecase) ListPatients(ctx context.Context, req *dto.ListRequest) (*dto.PageResponse[dto.PatientResponse], error) {
	m.got = req
	return m.page, nil
}

type mockAppointmentUsecase struct {
	got *dto.ListRequest
}

func (m *mockAppointmentUsecase) ListAppointments(ctx context.Context, req *dto.ListRequest) (*dto.PageResponse[dto.AppointmentResponse], error) {
	m.got = req
	return &dto.PageResponse[dto.AppointmentResponse]{State: "ready", Rows: []dto.AppointmentResponse{}}, nil
}

type mockDashboardUsecase struct {
	summary *dto.DashboardResponse
	err     error
}

func (m *mockDashboardUsecase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	return m.summary, m.err
}

type mockAuthUsecase struct {
	loginErr    error
	registerErr error
	actorID     int64
	logoutUser  int64
	logoutToken string
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return &dto.TokenResponse{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID int64, accessTokenID, refreshTokenID string) error {
	m.logoutUser = userID
	m.logoutToken = accessTokenID
	return nil
}

func (m *mockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return nil, m.loginErr
}

func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	return &dto.UserResponse{UserID: userID}, nil
}

func (m *mockAuthUsecase) RegisterDoctor(ctx context.Context, actorID int64, req *dto.RegisterDoctorRequest) (*dto.RegistrationResponse, error) {
	m.actorID = actorID
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return &dto.RegistrationResponse{User: dto.UserResponse{Username: req.Username}}, nil
}

func (m *mockAuthUsecase) RegisterPatient(ctx context.Context, actorID int64, req *dto.RegisterPatientRequest) (*dto.RegistrationResponse, error) {
	m.actorID = actorID
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return &dto.RegistrationResponse{User: dto.UserResponse{Username: req.Username}}, nil
}

type envelope struct {
	response.Response
	Data json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return env
}
