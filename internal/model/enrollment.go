package model

// EnrollmentRequest links a patient to a program; transient, never stored.
type EnrollmentRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
	ProgramID string `json:"program_id" binding:"required"`
}

type Recommendation struct {
	ProgramID    string   `json:"program_id"`
	ProgramName  string   `json:"program_name"`
	MatchReasons []string `json:"match_reasons"`
}

// HealthSnapshot reports record counts for the health endpoint.
type HealthSnapshot struct {
	Status   string `json:"status"`
	Patients int    `json:"patients"`
	Programs int    `json:"programs"`
}
