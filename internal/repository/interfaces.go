package repository

import (
	"context"

	"github.com/clinicore/health-api/internal/model"
)

// PatientRepository is the authoritative identifier -> patient mapping.
// Implementations own the stored instances; every method returns copies.
type PatientRepository interface {
	Add(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id string) (*model.Patient, error)
	Update(ctx context.Context, patient *model.Patient) error
	List(ctx context.Context) ([]*model.Patient, error)
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// ProgramRepository is the authoritative identifier -> program mapping.
// Programs are immutable once added.
type ProgramRepository interface {
	Add(ctx context.Context, program *model.Program) error
	Get(ctx context.Context, id string) (*model.Program, error)
	List(ctx context.Context) ([]*model.Program, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Count(ctx context.Context) (int, error)
}
