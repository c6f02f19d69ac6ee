package model

import (
	"fmt"
	"strconv"
	"strings"
)

type ProgramType string

const (
	ProgramTypeChronic        ProgramType = "chronic"
	ProgramTypeInfectious     ProgramType = "infectious"
	ProgramTypePreventive     ProgramType = "preventive"
	ProgramTypeRehabilitation ProgramType = "rehabilitation"
)

func (t ProgramType) IsValid() bool {
	switch t {
	case ProgramTypeChronic, ProgramTypeInfectious, ProgramTypePreventive, ProgramTypeRehabilitation:
		return true
	}
	return false
}

// AgeRange is an inclusive target age range, serialized as "min-max".
type AgeRange struct {
	Min int
	Max int
}

// ParseAgeRange parses the "min-max" wire format, requiring min <= max.
func ParseAgeRange(s string) (AgeRange, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return AgeRange{}, fmt.Errorf("invalid age range %q: expected 'min-max'", s)
	}
	min, err := strconv.Atoi(parts[0])
	if err != nil {
		return AgeRange{}, fmt.Errorf("invalid age range %q: %w", s, err)
	}
	max, err := strconv.Atoi(parts[1])
	if err != nil {
		return AgeRange{}, fmt.Errorf("invalid age range %q: %w", s, err)
	}
	if min < 0 || min > max {
		return AgeRange{}, fmt.Errorf("invalid age range %q: min must be <= max", s)
	}
	return AgeRange{Min: min, Max: max}, nil
}

// Contains reports whether age falls within the range, bounds inclusive.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

func (r AgeRange) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

func (r AgeRange) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

func (r *AgeRange) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseAgeRange(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

type Program struct {
	ProgramID      string      `json:"program_id"`
	Name           string      `json:"name"`
	Type           ProgramType `json:"program_type"`
	TargetAgeGroup *AgeRange   `json:"target_age_group,omitempty"`
	RiskFactors    []string    `json:"risk_factors"`
	CreatedAt      Date        `json:"created_at"`
}

// Clone returns a deep copy so callers never hold references into the store.
func (p *Program) Clone() *Program {
	cp := *p
	if p.TargetAgeGroup != nil {
		r := *p.TargetAgeGroup
		cp.TargetAgeGroup = &r
	}
	cp.RiskFactors = append([]string(nil), p.RiskFactors...)
	return &cp
}

type CreateProgramRequest struct {
	Name           string   `json:"name" binding:"required,min=3,max=100"`
	ProgramType    string   `json:"program_type" binding:"required,oneof=chronic infectious preventive rehabilitation"`
	TargetAgeGroup string   `json:"target_age_group" binding:"omitempty,agerange"`
	RiskFactors    []string `json:"risk_factors"`
}
