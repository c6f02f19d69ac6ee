package patient

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/clinicore/health-api/internal/idgen"
	"github.com/clinicore/health-api/internal/model"
	"github.com/clinicore/health-api/internal/repository"
	"github.com/clinicore/health-api/pkg/errors"
)

type PatientService interface {
	Register(ctx context.Context, req *model.RegisterPatientRequest) (*model.Patient, error)
	Get(ctx context.Context, id string) (*model.Patient, error)
	List(ctx context.Context) ([]*model.Patient, error)
	Search(ctx context.Context, filter *model.PatientFilter) ([]*model.Patient, error)
}

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

// Register creates a new patient record with an empty enrollment history.
// National IDs are unique across all patients.
func (s *Service) Register(ctx context.Context, req *model.RegisterPatientRequest) (*model.Patient, error) {
	exists, err := s.repo.ExistsByNationalID(ctx, req.NationalID)
	if err != nil {
		return nil, fmt.Errorf("failed to check national ID: %w", err)
	}
	if exists {
		return nil, errors.Conflict("patient already registered")
	}

	patient := &model.Patient{
		PatientID:        idgen.PatientID(req.NationalID),
		NationalID:       req.NationalID,
		FullName:         req.FullName,
		DateOfBirth:      req.DateOfBirth,
		BloodType:        model.BloodType(req.BloodType),
		EnrolledPrograms: []string{},
		MedicalHistory:   []string{},
		CreatedAt:        model.Today(),
	}

	if err := s.repo.Add(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to store patient: %w", err)
	}

	log.Info().Str("patient_id", patient.PatientID).Msg("registered new patient")
	return patient, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*model.Patient, error) {
	return s.repo.List(ctx)
}

// Search filters patients by name substring (case-insensitive) and/or
// program enrollment. A nil or zero filter matches everyone.
func (s *Service) Search(ctx context.Context, filter *model.PatientFilter) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	if filter == nil {
		return patients, nil
	}

	results := make([]*model.Patient, 0, len(patients))
	for _, p := range patients {
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.FullName), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.ProgramID != "" && !p.IsEnrolled(filter.ProgramID) {
			continue
		}
		results = append(results, p)
	}
	return results, nil
}

// Age computes the patient's age in whole years as of the given date,
// subtracting a year when the birthday hasn't occurred yet that year.
func Age(dob, on model.Date) int {
	age := on.Year() - dob.Year()
	if on.Month() < dob.Month() || (on.Month() == dob.Month() && on.Day() < dob.Day()) {
		age--
	}
	return age
}
