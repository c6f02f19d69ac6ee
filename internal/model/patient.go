package model

// BloodType is an ABO blood type with Rh factor, e.g. "A+" or "O-".
type BloodType string

var validBloodTypes = map[BloodType]struct{}{
	"A+": {}, "A-": {},
	"B+": {}, "B-": {},
	"AB+": {}, "AB-": {},
	"O+": {}, "O-": {},
}

func (b BloodType) IsValid() bool {
	_, ok := validBloodTypes[b]
	return ok
}

type Patient struct {
	PatientID        string    `json:"patient_id"`
	NationalID       string    `json:"national_id"`
	FullName         string    `json:"full_name"`
	DateOfBirth      Date      `json:"date_of_birth"`
	BloodType        BloodType `json:"blood_type,omitempty"`
	EnrolledPrograms []string  `json:"enrolled_programs"`
	MedicalHistory   []string  `json:"medical_history"`
	CreatedAt        Date      `json:"created_at"`
}

// Clone returns a deep copy so callers never hold references into the store.
func (p *Patient) Clone() *Patient {
	cp := *p
	cp.EnrolledPrograms = append([]string(nil), p.EnrolledPrograms...)
	cp.MedicalHistory = append([]string(nil), p.MedicalHistory...)
	return &cp
}

// IsEnrolled reports whether the patient is already enrolled in the program.
func (p *Patient) IsEnrolled(programID string) bool {
	for _, id := range p.EnrolledPrograms {
		if id == programID {
			return true
		}
	}
	return false
}

type RegisterPatientRequest struct {
	NationalID  string `json:"national_id" binding:"required,min=10,max=15"`
	FullName    string `json:"full_name" binding:"required,min=3,max=100"`
	DateOfBirth Date   `json:"date_of_birth" binding:"required"`
	BloodType   string `json:"blood_type" binding:"omitempty,bloodtype"`
}

// PatientFilter narrows patient listings; zero values match everything.
type PatientFilter struct {
	Name      string `form:"name"`
	ProgramID string `form:"program_id"`
}
