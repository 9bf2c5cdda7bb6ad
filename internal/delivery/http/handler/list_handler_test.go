package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/filter"
	"hospital-admin/internal/page"
	"hospital-admin/internal/usecase"
)

func TestListDoctors_ParsesQuery(t *testing.T) {
	uc := &mockDoctorUsecase{page: &dto.PageResponse[dto.DoctorResponse]{
		State: page.StateReady,
		Rows:  []dto.DoctorResponse{{DoctorID: 1, Name: "张伟", Department: "Cardiology"}},
		Total: 3, Filtered: 1,
		Options: map[string][]string{"department": {"Cardiology"}},
	}}
	h := NewDoctorHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors?search=%E5%BC%A0&department=Cardiology&gender=Male&order=department&direction=desc", nil)
	rec := httptest.NewRecorder()
	h.ListDoctors(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if uc.got.Search != "张" {
		t.Errorf("search = %q, want 张", uc.got.Search)
	}
	if uc.got.Filters["department"] != "Cardiology" {
		t.Errorf("department filter = %q", uc.got.Filters["department"])
	}
	if _, ok := uc.got.Filters["gender"]; ok {
		t.Error("gender is not a doctor category and must be ignored")
	}
	if uc.got.Order != "department" || uc.got.Direction != "desc" {
		t.Errorf("order = %q %q", uc.got.Order, uc.got.Direction)
	}

	env := decodeEnvelope(t, rec)
	var data dto.PageResponse[dto.DoctorResponse]
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.State != page.StateReady || data.Total != 3 || data.Filtered != 1 {
		t.Errorf("got %+v", data)
	}
}

func TestListDoctors_BlankFilterMeansAll(t *testing.T) {
	uc := &mockDoctorUsecase{page: &dto.PageResponse[dto.DoctorResponse]{State: page.StateReady}}
	h := NewDoctorHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors?department=", nil)
	h.ListDoctors(httptest.NewRecorder(), req)

	if len(uc.got.Filters) != 0 {
		t.Errorf("filters = %v, want none", uc.got.Filters)
	}
}

func TestParseListRequest_Categories(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients?search=%20ana%20&gender=Female&ward=3A&order=%20name%20&direction=ASC", nil)

	got := parseListRequest(req, filter.CategoryGender, filter.CategoryWard, filter.CategoryDepartment)

	want := map[string]string{filter.CategoryGender: "Female", filter.CategoryWard: "3A"}
	if len(got.Filters) != len(want) {
		t.Fatalf("filters = %v, want %v", got.Filters, want)
	}
	for k, v := range want {
		if got.Filters[k] != v {
			t.Errorf("filters[%s] = %q, want %q", k, got.Filters[k], v)
		}
	}
	if got.Search != " ana " {
		t.Errorf("search = %q, search text is passed through untouched", got.Search)
	}
	if got.Order != "name" || got.Direction != "ASC" {
		t.Errorf("order = %q %q", got.Order, got.Direction)
	}
}

func TestListPatients_GenderFilter(t *testing.T) {
	uc := &mockPatientUsecase{page: &dto.PageResponse[dto.PatientResponse]{State: page.StateReady}}
	h := NewPatientHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients?gender=Male&department=Surgery", nil)
	rec := httptest.NewRecorder()
	h.ListPatients(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if uc.got.Filters[filter.CategoryGender] != "Male" || len(uc.got.Filters) != 1 {
		t.Errorf("filters = %v, want only gender", uc.got.Filters)
	}
}

func TestListDoctors_ErrorMapping(t *testing.T) {
	errorPage := &dto.PageResponse[dto.DoctorResponse]{State: page.StateError, Rows: []dto.DoctorResponse{}}

	tests := []struct {
		name      string
		page      *dto.PageResponse[dto.DoctorResponse]
		err       error
		wantCode  int
		wantState page.State
	}{
		{
			name:     "invalid query",
			err:      fmt.Errorf("%w: unknown column", usecase.ErrInvalidListQuery),
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "backend failure",
			page:      errorPage,
			err:       &usecase.FetchError{Entity: "doctors", Err: errors.New("connection refused")},
			wantCode:  http.StatusBadGateway,
			wantState: page.StateError,
		},
		{
			name:      "timeout",
			page:      errorPage,
			err:       &usecase.FetchError{Entity: "doctors", Err: context.DeadlineExceeded},
			wantCode:  http.StatusGatewayTimeout,
			wantState: page.StateError,
		},
		{
			name:     "unexpected",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewDoctorHandler(&mockDoctorUsecase{page: tt.page, err: tt.err})
			rec := httptest.NewRecorder()
			h.ListDoctors(rec, httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil))

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			env := decodeEnvelope(t, rec)
			if env.Success {
				t.Error("success = true on failure")
			}
			if tt.wantState == "" {
				return
			}
			var data dto.PageResponse[dto.DoctorResponse]
			if err := json.Unmarshal(env.Data, &data); err != nil {
				t.Fatalf("decode data: %v", err)
			}
			if data.State != tt.wantState {
				t.Errorf("state = %q, want %q", data.State, tt.wantState)
			}
		})
	}
}

func TestListAppointments_StatusAndDepartment(t *testing.T) {
	appointments := &mockAppointmentUsecase{}
	h := NewRecordHandler(nil, appointments, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments?status=Booked&department=Neurology&ward=3", nil)
	rec := httptest.NewRecorder()
	h.ListAppointments(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	want := map[string]string{"status": "Booked", "department": "Neurology"}
	if len(appointments.got.Filters) != len(want) {
		t.Fatalf("filters = %v, want %v", appointments.got.Filters, want)
	}
	for k, v := range want {
		if appointments.got.Filters[k] != v {
			t.Errorf("%s = %q, want %q", k, appointments.got.Filters[k], v)
		}
	}
}
