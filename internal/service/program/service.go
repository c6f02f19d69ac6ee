package program

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

type ProgramService interface {
	Create(ctx context.Context, req *model.CreateProgramRequest) (*model.Program, error)
	List(ctx context.Context) ([]*model.Program, error)
}

type Service struct {
	repo repository.ProgramRepository
}

func NewService(repo repository.ProgramRepository) *Service {
	return &Service{repo: repo}
}

// Create adds a new health program. Names are unique case-insensitively and
// programs are immutable once stored.
func (s *Service) Create(ctx context.Context, req *model.CreateProgramRequest) (*model.Program, error) {
	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check program name: %w", err)
	}
	if exists {
		return nil, errors.Conflict("program already exists")
	}

	riskFactors, err := normalizeRiskFactors(req.RiskFactors)
	if err != nil {
		return nil, err
	}

	program := &model.Program{
		ProgramID:   idgen.ProgramID(req.Name),
		Name:        req.Name,
		Type:        model.ProgramType(req.ProgramType),
		RiskFactors: riskFactors,
		CreatedAt:   model.Today(),
	}

	if req.TargetAgeGroup != "" {
		ageRange, err := model.ParseAgeRange(req.TargetAgeGroup)
		if err != nil {
			return nil, errors.Validation("invalid target age group", err)
		}
		program.TargetAgeGroup = &ageRange
	}

	if err := s.repo.Add(ctx, program); err != nil {
		return nil, fmt.Errorf("failed to store program: %w", err)
	}

	log.Info().Str("program_id", program.ProgramID).Msg("created new program")
	return program, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Program, error) {
	return s.repo.List(ctx)
}

// normalizeRiskFactors lower-cases the tags and rejects blank entries.
func normalizeRiskFactors(factors []string) ([]string, error) {
	normalized := make([]string, 0, len(factors))
	for _, f := range factors {
		if strings.TrimSpace(f) == "" {
			return nil, errors.Validation("risk factor cannot be empty", nil)
		}
		normalized = append(normalized, strings.ToLower(f))
	}
	return normalized, nil
}
