package enrollment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/clinicore/health-api/internal/model"
	"github.com/clinicore/health-api/internal/repository"
	"github.com/clinicore/health-api/internal/service/patient"
	"github.com/clinicore/health-api/pkg/errors"
)

// Match reasons are static labels, not per-match explanations. Risk factors
// are collected on programs but deliberately not used as an eligibility
// filter; only the label advertises them.
var matchReasons = []string{"Age appropriate", "Risk factors match"}

type EnrollmentService interface {
	Enroll(ctx context.Context, req *model.EnrollmentRequest) (*model.Patient, error)
	Recommend(ctx context.Context, patientID string) ([]*model.Recommendation, error)
}

type Service struct {
	patients repository.PatientRepository
	programs repository.ProgramRepository
	today    func() model.Date
}

func NewService(patients repository.PatientRepository, programs repository.ProgramRepository) *Service {
	return &Service{
		patients: patients,
		programs: programs,
		today:    model.Today,
	}
}

// Eligible reports whether the patient qualifies for the program as of the
// given date. Programs without a target age range accept every patient.
func Eligible(p *model.Patient, prog *model.Program, on model.Date) bool {
	if prog.TargetAgeGroup == nil {
		return true
	}
	return prog.TargetAgeGroup.Contains(patient.Age(p.DateOfBirth, on))
}

// Enroll adds the program to the patient's enrollment sequence after an
// eligibility check. Re-enrolling an already-enrolled pair is a silent no-op.
func (s *Service) Enroll(ctx context.Context, req *model.EnrollmentRequest) (*model.Patient, error) {
	p, err := s.patients.Get(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}

	prog, err := s.programs.Get(ctx, req.ProgramID)
	if err != nil {
		return nil, err
	}

	// Eligibility is evaluated at call time; it can change daily.
	if !Eligible(p, prog, s.today()) {
		log.Warn().
			Str("patient_id", p.PatientID).
			Str("program_id", prog.ProgramID).
			Msg("patient not eligible for program")
		return nil, errors.Ineligible("patient not eligible for this program")
	}

	if p.IsEnrolled(req.ProgramID) {
		return p, nil
	}

	p.EnrolledPrograms = append(p.EnrolledPrograms, req.ProgramID)
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to persist enrollment: %w", err)
	}

	log.Info().
		Str("patient_id", p.PatientID).
		Str("program_id", prog.ProgramID).
		Msg("enrolled patient in program")
	return p, nil
}

// Recommend scans every program in store order and reports those the patient
// is currently eligible for.
func (s *Service) Recommend(ctx context.Context, patientID string) ([]*model.Recommendation, error) {
	p, err := s.patients.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}

	programs, err := s.programs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}

	on := s.today()
	recommendations := make([]*model.Recommendation, 0, len(programs))
	for _, prog := range programs {
		if !Eligible(p, prog, on) {
			continue
		}
		recommendations = append(recommendations, &model.Recommendation{
			ProgramID:    prog.ProgramID,
			ProgramName:  prog.Name,
			MatchReasons: append([]string(nil), matchReasons...),
		})
	}
	return recommendations, nil
}
