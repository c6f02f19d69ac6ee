// Package memory holds the in-memory record stores. A read-write mutex
// serializes access so the stores can sit behind a concurrent HTTP layer;
// nothing is persisted across restarts.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/clinicore/health-api/internal/model"
	"github.com/clinicore/health-api/pkg/errors"
)

// PatientStore keeps patients keyed by patient ID, remembering insertion
// order for listings. It hands out copies only.
type PatientStore struct {
	mu       sync.RWMutex
	patients map[string]*model.Patient
	order    []string
}

func NewPatientStore() *PatientStore {
	return &PatientStore{patients: make(map[string]*model.Patient)}
}

func (s *PatientStore) Add(_ context.Context, patient *model.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[patient.PatientID]; ok {
		return errors.Conflict("patient already registered")
	}
	s.patients[patient.PatientID] = patient.Clone()
	s.order = append(s.order, patient.PatientID)
	return nil
}

func (s *PatientStore) Get(_ context.Context, id string) (*model.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patient, ok := s.patients[id]
	if !ok {
		return nil, errors.NotFound("patient")
	}
	return patient.Clone(), nil
}

func (s *PatientStore) Update(_ context.Context, patient *model.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[patient.PatientID]; !ok {
		return errors.NotFound("patient")
	}
	s.patients[patient.PatientID] = patient.Clone()
	return nil
}

func (s *PatientStore) List(_ context.Context) ([]*model.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patients := make([]*model.Patient, 0, len(s.order))
	for _, id := range s.order {
		patients = append(patients, s.patients[id].Clone())
	}
	return patients, nil
}

func (s *PatientStore) ExistsByNationalID(_ context.Context, nationalID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, patient := range s.patients {
		if patient.NationalID == nationalID {
			return true, nil
		}
	}
	return false, nil
}

func (s *PatientStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patients), nil
}

// ProgramStore keeps programs keyed by program ID in insertion order.
type ProgramStore struct {
	mu       sync.RWMutex
	programs map[string]*model.Program
	order    []string
}

func NewProgramStore() *ProgramStore {
	return &ProgramStore{programs: make(map[string]*model.Program)}
}

func (s *ProgramStore) Add(_ context.Context, program *model.Program) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.programs[program.ProgramID]; ok {
		return errors.Conflict("program already exists")
	}
	s.programs[program.ProgramID] = program.Clone()
	s.order = append(s.order, program.ProgramID)
	return nil
}

func (s *ProgramStore) Get(_ context.Context, id string) (*model.Program, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	program, ok := s.programs[id]
	if !ok {
		return nil, errors.NotFound("program")
	}
	return program.Clone(), nil
}

func (s *ProgramStore) List(_ context.Context) ([]*model.Program, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	programs := make([]*model.Program, 0, len(s.order))
	for _, id := range s.order {
		programs = append(programs, s.programs[id].Clone())
	}
	return programs, nil
}

// ExistsByName compares names case-insensitively.
func (s *ProgramStore) ExistsByName(_ context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, program := range s.programs {
		if strings.EqualFold(program.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *ProgramStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.programs), nil
}
