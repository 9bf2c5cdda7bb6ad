// Package schema is the static description of the hospital tables: columns, nullability,
// server defaults and the relations a list query may embed. It is the contract between the
// query layer and Postgres and must stay in step with the migrations and the entity structs.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"hospital-admin/internal/domain/entity"
)

var (
	ErrUnknownTable     = errors.New("unknown table")
	ErrUnknownColumn    = errors.New("unknown column")
	ErrUnknownRelation  = errors.New("unknown relation")
	ErrInvalidDirection = errors.New("invalid order direction")
)

type ColumnType string

const (
	TypeBigint    ColumnType = "bigint"
	TypeInteger   ColumnType = "integer"
	TypeText      ColumnType = "text"
	TypeDate      ColumnType = "date"
	TypeTimestamp ColumnType = "timestamptz"
	TypeEnum      ColumnType = "enum"
)

type Column struct {
	Name     string     `json:"name"`
	Type     ColumnType `json:"type"`
	Nullable bool       `json:"nullable"`
	// Generated columns are filled by the database (serial keys, DEFAULT now()).
	Generated bool     `json:"generated"`
	Values    []string `json:"values,omitempty"`
}

// Relation is an embeddable related table reached through a foreign key.
type Relation struct {
	Name    string   `json:"name"`
	Path    string   `json:"-"` // gorm association path
	Table   string   `json:"table"`
	Columns []string `json:"columns"` // projection, keys included so nested embeds resolve
}

type Table struct {
	Name       string     `json:"name"`
	PrimaryKey string     `json:"primary_key"`
	Columns    []Column   `json:"columns"`
	Relations  []Relation `json:"relations,omitempty"`
}

// Projection splits the columns of a write into the ones a caller must send and the ones it may send.
type Projection struct {
	Required []string `json:"required"`
	Optional []string `json:"optional"`
}

var (
	userTypes           = []string{string(entity.UserTypeDoctor), string(entity.UserTypePatient)}
	genders             = []string{string(entity.GenderMale), string(entity.GenderFemale)}
	appointmentStatuses = []string{
		string(entity.AppointmentStatusBooked),
		string(entity.AppointmentStatusAttended),
		string(entity.AppointmentStatusCancelled),
	}
)

var Users = Table{
	Name:       "users",
	PrimaryKey: "user_id",
	Columns: []Column{
		{Name: "user_id", Type: TypeBigint, Generated: true},
		{Name: "username", Type: TypeText},
		{Name: "password", Type: TypeText},
		{Name: "user_type", Type: TypeEnum, Values: userTypes},
		{Name: "email", Type: TypeText, Nullable: true},
		{Name: "phone_number", Type: TypeText, Nullable: true},
		{Name: "created_at", Type: TypeTimestamp, Generated: true},
	},
}

var Doctors = Table{
	Name:       "doctors",
	PrimaryKey: "doctor_id",
	Columns: []Column{
		{Name: "doctor_id", Type: TypeBigint, Generated: true},
		{Name: "user_id", Type: TypeBigint},
		{Name: "name", Type: TypeText},
		{Name: "department", Type: TypeText},
		{Name: "title", Type: TypeText, Nullable: true},
		{Name: "working_hours", Type: TypeText},
		{Name: "profile_picture", Type: TypeText, Nullable: true},
	},
	Relations: []Relation{
		{Name: "users", Path: "User", Table: "users", Columns: []string{"user_id", "email", "phone_number"}},
	},
}

var Patients = Table{
	Name:       "patients",
	PrimaryKey: "patient_id",
	Columns: []Column{
		{Name: "patient_id", Type: TypeBigint, Generated: true},
		{Name: "user_id", Type: TypeBigint},
		{Name: "name", Type: TypeText},
		{Name: "gender", Type: TypeEnum, Values: genders},
		{Name: "birth_date", Type: TypeDate},
		{Name: "id_number", Type: TypeText},
		{Name: "phone_number", Type: TypeText, Nullable: true},
	},
	Relations: []Relation{
		{Name: "users", Path: "User", Table: "users", Columns: []string{"user_id", "email", "phone_number"}},
	},
}

var Cases = Table{
	Name:       "cases",
	PrimaryKey: "case_id",
	Columns: []Column{
		{Name: "case_id", Type: TypeBigint, Generated: true},
		{Name: "patient_id", Type: TypeBigint},
		{Name: "department", Type: TypeText},
		{Name: "doctor_id", Type: TypeBigint},
		{Name: "diagnosis", Type: TypeText},
		{Name: "diagnosis_date", Type: TypeTimestamp, Generated: true},
	},
	Relations: []Relation{
		{Name: "patients", Path: "Patient", Table: "patients", Columns: []string{"patient_id", "name", "id_number"}},
		{Name: "doctors", Path: "Doctor", Table: "doctors", Columns: []string{"doctor_id", "name"}},
	},
}

var Appointments = Table{
	Name:       "appointments",
	PrimaryKey: "appointment_id",
	Columns: []Column{
		{Name: "appointment_id", Type: TypeBigint, Generated: true},
		{Name: "patient_id", Type: TypeBigint},
		{Name: "doctor_id", Type: TypeBigint},
		{Name: "appointment_time", Type: TypeTimestamp},
		{Name: "department", Type: TypeText},
		{Name: "status", Type: TypeEnum, Generated: true, Values: appointmentStatuses},
	},
	Relations: []Relation{
		{Name: "patients", Path: "Patient", Table: "patients", Columns: []string{"patient_id", "name"}},
		{Name: "doctors", Path: "Doctor", Table: "doctors", Columns: []string{"doctor_id", "name"}},
	},
}

var Hospitalizations = Table{
	Name:       "hospitalization",
	PrimaryKey: "hospitalization_id",
	Columns: []Column{
		{Name: "hospitalization_id", Type: TypeBigint, Generated: true},
		{Name: "patient_id", Type: TypeBigint},
		{Name: "ward_number", Type: TypeText},
		{Name: "bed_number", Type: TypeText},
		{Name: "admission_date", Type: TypeTimestamp, Generated: true},
		{Name: "attending_doctor", Type: TypeText},
	},
	Relations: []Relation{
		{Name: "patients", Path: "Patient", Table: "patients", Columns: []string{"patient_id", "name", "id_number", "phone_number"}},
	},
}

var Prescriptions = Table{
	Name:       "prescriptions",
	PrimaryKey: "prescription_id",
	Columns: []Column{
		{Name: "prescription_id", Type: TypeBigint, Generated: true},
		{Name: "case_id", Type: TypeBigint},
		{Name: "doctor_id", Type: TypeBigint},
		{Name: "prescription_content", Type: TypeText},
		{Name: "issued_date", Type: TypeTimestamp, Generated: true},
	},
	Relations: []Relation{
		{Name: "doctors", Path: "Doctor", Table: "doctors", Columns: []string{"doctor_id", "name"}},
		{Name: "cases", Path: "Case", Table: "cases", Columns: []string{"case_id", "patient_id"}},
		{Name: "cases.patients", Path: "Case.Patient", Table: "patients", Columns: []string{"patient_id", "name"}},
		{Name: "medications", Path: "Medications", Table: "medications", Columns: []string{"medication_id", "prescription_id", "medication_name", "quantity", "usage_instructions"}},
	},
}

var Medications = Table{
	Name:       "medications",
	PrimaryKey: "medication_id",
	Columns: []Column{
		{Name: "medication_id", Type: TypeBigint, Generated: true},
		{Name: "prescription_id", Type: TypeBigint},
		{Name: "medication_name", Type: TypeText},
		{Name: "quantity", Type: TypeInteger},
		{Name: "usage_instructions", Type: TypeText},
	},
}

// All lists every table in dependency order (referenced tables first).
var All = []Table{Users, Doctors, Patients, Cases, Appointments, Hospitalizations, Prescriptions, Medications}

// Lookup returns the table description for name.
func Lookup(name string) (Table, error) {
	for _, t := range All {
		if t.Name == name {
			return t, nil
		}
	}
	return Table{}, fmt.Errorf("%w: %s", ErrUnknownTable, name)
}

// Names returns the table names in dependency order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

func (t Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

func (t Table) Relation(name string) (Relation, bool) {
	for _, r := range t.Relations {
		if r.Name == name {
			return r, true
		}
	}
	return Relation{}, false
}

// InsertProjection reports which columns an insert must carry. Server-generated and
// nullable columns are optional.
func (t Table) InsertProjection() Projection {
	p := Projection{Required: []string{}, Optional: []string{}}
	for _, c := range t.Columns {
		if c.Generated || c.Nullable {
			p.Optional = append(p.Optional, c.Name)
			continue
		}
		p.Required = append(p.Required, c.Name)
	}
	return p
}

// UpdateProjection makes every column optional.
func (t Table) UpdateProjection() Projection {
	return Projection{Required: []string{}, Optional: t.ColumnNames()}
}

// MissingOnInsert returns the required insert columns absent from provided.
func (t Table) MissingOnInsert(provided []string) []string {
	have := make(map[string]bool, len(provided))
	for _, p := range provided {
		have[p] = true
	}
	var missing []string
	for _, c := range t.InsertProjection().Required {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// ValidateListQuery checks that the order column exists on the base table and that every
// embed names a declared relation.
func (t Table) ValidateListQuery(q entity.ListQuery) error {
	if !t.HasColumn(q.OrderColumn) {
		return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, t.Name, q.OrderColumn)
	}
	switch q.Direction {
	case entity.Ascending, entity.Descending:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDirection, q.Direction)
	}
	for _, e := range q.Embeds {
		if _, ok := t.Relation(e); !ok {
			return fmt.Errorf("%w: %s embeds %s", ErrUnknownRelation, t.Name, e)
		}
	}
	return nil
}

// ParseDirection accepts "asc"/"desc" in any case; empty input returns fallback.
func ParseDirection(s string, fallback entity.Direction) (entity.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return fallback, nil
	case "asc":
		return entity.Ascending, nil
	case "desc":
		return entity.Descending, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
