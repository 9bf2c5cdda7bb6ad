package schema

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"
	"testing"

	"hospital-admin/internal/domain/entity"

	gormschema "gorm.io/gorm/schema"
)

var models = map[string]interface{}{
	"users":           &entity.User{},
	"doctors":         &entity.Doctor{},
	"patients":        &entity.Patient{},
	"cases":           &entity.Case{},
	"appointments":    &entity.Appointment{},
	"hospitalization": &entity.Hospitalization{},
	"prescriptions":   &entity.Prescription{},
	"medications":     &entity.Medication{},
}

func parse(t *testing.T, model interface{}) *gormschema.Schema {
	t.Helper()
	s, err := gormschema.Parse(model, &sync.Map{}, gormschema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse %T: %v", model, err)
	}
	return s
}

func sorted(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}

func TestTablesMatchEntities(t *testing.T) {
	if len(All) != len(models) {
		t.Fatalf("len(All) = %d, want %d", len(All), len(models))
	}
	for _, table := range All {
		model, ok := models[table.Name]
		if !ok {
			t.Fatalf("no entity for table %s", table.Name)
		}
		s := parse(t, model)
		if s.Table != table.Name {
			t.Errorf("%s: gorm table = %s", table.Name, s.Table)
		}
		if got, want := sorted(s.DBNames), sorted(table.ColumnNames()); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: entity columns = %v, want %v", table.Name, got, want)
		}
		if s.PrioritizedPrimaryField == nil || s.PrioritizedPrimaryField.DBName != table.PrimaryKey {
			t.Errorf("%s: primary key mismatch, want %s", table.Name, table.PrimaryKey)
		}
	}
}

func TestRelationsResolve(t *testing.T) {
	for _, table := range All {
		for _, rel := range table.Relations {
			s := parse(t, models[table.Name])
			for _, field := range strings.Split(rel.Path, ".") {
				r, ok := s.Relationships.Relations[field]
				if !ok {
					t.Fatalf("%s.%s: no association %s", table.Name, rel.Name, field)
				}
				s = r.FieldSchema
			}
			if s.Table != rel.Table {
				t.Errorf("%s.%s: resolves to %s, want %s", table.Name, rel.Name, s.Table, rel.Table)
			}

			target, err := Lookup(rel.Table)
			if err != nil {
				t.Fatalf("lookup %s: %v", rel.Table, err)
			}
			hasKey := false
			for _, c := range rel.Columns {
				if !target.HasColumn(c) {
					t.Errorf("%s.%s projects unknown column %s", table.Name, rel.Name, c)
				}
				if c == target.PrimaryKey {
					hasKey = true
				}
			}
			if !hasKey {
				t.Errorf("%s.%s must project %s", table.Name, rel.Name, target.PrimaryKey)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	table, err := Lookup("hospitalization")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.PrimaryKey != "hospitalization_id" {
		t.Errorf("PrimaryKey = %s", table.PrimaryKey)
	}

	if _, err := Lookup("wards"); !errors.Is(err, ErrUnknownTable) {
		t.Errorf("err = %v, want ErrUnknownTable", err)
	}
}

func TestInsertProjection(t *testing.T) {
	p := Patients.InsertProjection()
	wantRequired := []string{"user_id", "name", "gender", "birth_date", "id_number"}
	wantOptional := []string{"patient_id", "phone_number"}
	if !reflect.DeepEqual(p.Required, wantRequired) {
		t.Errorf("Required = %v, want %v", p.Required, wantRequired)
	}
	if !reflect.DeepEqual(p.Optional, wantOptional) {
		t.Errorf("Optional = %v, want %v", p.Optional, wantOptional)
	}

	a := Appointments.InsertProjection()
	for _, c := range a.Required {
		if c == "status" || c == "appointment_id" {
			t.Errorf("%s should be optional on insert", c)
		}
	}
}

func TestUpdateProjection(t *testing.T) {
	p := Medications.UpdateProjection()
	if len(p.Required) != 0 {
		t.Errorf("Required = %v, want none", p.Required)
	}
	if len(p.Optional) != len(Medications.Columns) {
		t.Errorf("Optional = %v", p.Optional)
	}
}

func TestMissingOnInsert(t *testing.T) {
	missing := Doctors.MissingOnInsert([]string{"user_id", "name"})
	want := []string{"department", "working_hours"}
	if !reflect.DeepEqual(missing, want) {
		t.Errorf("missing = %v, want %v", missing, want)
	}
	if missing := Doctors.MissingOnInsert([]string{"user_id", "name", "department", "working_hours"}); len(missing) != 0 {
		t.Errorf("missing = %v, want none", missing)
	}
}

func TestValidateListQuery(t *testing.T) {
	tests := []struct {
		name string
		q    entity.ListQuery
		want error
	}{
		{"valid", entity.ListQuery{Embeds: []string{"patients", "doctors"}, OrderColumn: "diagnosis_date", Direction: entity.Descending}, nil},
		{"no embeds", entity.ListQuery{OrderColumn: "case_id", Direction: entity.Ascending}, nil},
		{"column of related table", entity.ListQuery{OrderColumn: "name", Direction: entity.Ascending}, ErrUnknownColumn},
		{"empty column", entity.ListQuery{Direction: entity.Ascending}, ErrUnknownColumn},
		{"bad direction", entity.ListQuery{OrderColumn: "case_id", Direction: "up"}, ErrInvalidDirection},
		{"unknown embed", entity.ListQuery{Embeds: []string{"medications"}, OrderColumn: "case_id", Direction: entity.Ascending}, ErrUnknownRelation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Cases.ValidateListQuery(tt.q)
			if tt.want == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("", entity.Descending); err != nil || d != entity.Descending {
		t.Errorf("empty: got %v, %v", d, err)
	}
	if d, err := ParseDirection(" ASC ", entity.Descending); err != nil || d != entity.Ascending {
		t.Errorf("ASC: got %v, %v", d, err)
	}
	if _, err := ParseDirection("sideways", entity.Ascending); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("err = %v, want ErrInvalidDirection", err)
	}
}
