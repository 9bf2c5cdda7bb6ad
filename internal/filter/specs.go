package filter

import "hospital-admin/internal/domain/entity"

// Category names shared by the page specs and the HTTP query parameters.
const (
	CategoryDepartment = "department"
	CategoryGender     = "gender"
	CategoryStatus     = "status"
	CategoryWard       = "ward"
)

func optional(s *string) []string {
	if s == nil {
		return nil
	}
	return []string{*s}
}

func patientName(p *entity.Patient) []string {
	if p == nil {
		return nil
	}
	return []string{p.Name}
}

func patientIDNumber(p *entity.Patient) []string {
	if p == nil {
		return nil
	}
	return []string{p.IDNumber}
}

func doctorName(d *entity.Doctor) []string {
	if d == nil {
		return nil
	}
	return []string{d.Name}
}

var Doctors = Spec[entity.Doctor]{
	Fields: []Field[entity.Doctor]{
		Text("name", func(d entity.Doctor) string { return d.Name }),
		Text("department", func(d entity.Doctor) string { return d.Department }),
		{Name: "title", Values: func(d entity.Doctor) []string { return optional(d.Title) }},
	},
	Categories: []Category[entity.Doctor]{
		{Name: CategoryDepartment, Value: func(d entity.Doctor) string { return d.Department }},
	},
}

var Patients = Spec[entity.Patient]{
	Fields: []Field[entity.Patient]{
		Text("name", func(p entity.Patient) string { return p.Name }),
		{Name: "id_number", Raw: true, Values: func(p entity.Patient) []string { return []string{p.IDNumber} }},
		{Name: "phone_number", Raw: true, Values: func(p entity.Patient) []string { return optional(p.PhoneNumber) }},
	},
	Categories: []Category[entity.Patient]{
		{Name: CategoryGender, Value: func(p entity.Patient) string { return string(p.Gender) }},
	},
}

var Cases = Spec[entity.Case]{
	Fields: []Field[entity.Case]{
		{Name: "patient_name", Values: func(c entity.Case) []string { return patientName(c.Patient) }},
		{Name: "doctor_name", Values: func(c entity.Case) []string { return doctorName(c.Doctor) }},
		Text("diagnosis", func(c entity.Case) string { return c.Diagnosis }),
		{Name: "patient_id_number", Raw: true, Values: func(c entity.Case) []string { return patientIDNumber(c.Patient) }},
	},
	Categories: []Category[entity.Case]{
		{Name: CategoryDepartment, Value: func(c entity.Case) string { return c.Department }},
	},
}

var Appointments = Spec[entity.Appointment]{
	Fields: []Field[entity.Appointment]{
		{Name: "patient_name", Values: func(a entity.Appointment) []string { return patientName(a.Patient) }},
		{Name: "doctor_name", Values: func(a entity.Appointment) []string { return doctorName(a.Doctor) }},
		Text("department", func(a entity.Appointment) string { return a.Department }),
	},
	Categories: []Category[entity.Appointment]{
		{Name: CategoryStatus, Value: func(a entity.Appointment) string { return string(a.Status) }},
		{Name: CategoryDepartment, Value: func(a entity.Appointment) string { return a.Department }},
	},
}

var Hospitalizations = Spec[entity.Hospitalization]{
	Fields: []Field[entity.Hospitalization]{
		{Name: "patient_name", Values: func(h entity.Hospitalization) []string { return patientName(h.Patient) }},
		Text("ward_number", func(h entity.Hospitalization) string { return h.WardNumber }),
		Text("bed_number", func(h entity.Hospitalization) string { return h.BedNumber }),
		Text("attending_doctor", func(h entity.Hospitalization) string { return h.AttendingDoctor }),
		{Name: "patient_id_number", Raw: true, Values: func(h entity.Hospitalization) []string { return patientIDNumber(h.Patient) }},
	},
	Categories: []Category[entity.Hospitalization]{
		{Name: CategoryWard, Value: func(h entity.Hospitalization) string { return h.WardNumber }},
	},
}

var Prescriptions = Spec[entity.Prescription]{
	Fields: []Field[entity.Prescription]{
		{Name: "doctor_name", Values: func(p entity.Prescription) []string { return doctorName(p.Doctor) }},
		{Name: "patient_name", Values: func(p entity.Prescription) []string {
			if p.Case == nil {
				return nil
			}
			return patientName(p.Case.Patient)
		}},
		Text("prescription_content", func(p entity.Prescription) string { return p.PrescriptionContent }),
		{Name: "medication_name", Values: func(p entity.Prescription) []string {
			names := make([]string, len(p.Medications))
			for i, m := range p.Medications {
				names[i] = m.MedicationName
			}
			return names
		}},
	},
}
