package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/health-api/internal/model"
)

func TestListSeededPrograms(t *testing.T) {
	resp := makeRequest(t, "GET", "/programs", nil, apiKey)
	require.True(t, resp.IsSuccess())

	var programs []model.Program
	decodeData(t, resp, &programs)

	require.GreaterOrEqual(t, len(programs), 2)
	assert.Equal(t, "Diabetes Management", programs[0].Name)
	assert.Equal(t, "Child Vaccination Program", programs[1].Name)
	require.NotNil(t, programs[0].TargetAgeGroup)
	assert.Equal(t, "30-80", programs[0].TargetAgeGroup.String())
}

func TestCreateProgram(t *testing.T) {
	resp := makeRequest(t, "POST", "/programs", map[string]interface{}{
		"name":             "Cardiac Rehabilitation",
		"program_type":     "rehabilitation",
		"target_age_group": "40-90",
		"risk_factors":     []string{"Hypertension", "smoking"},
	}, apiKey)

	require.True(t, resp.IsSuccess(), resp.Message)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.Program
	decodeData(t, resp, &created)
	assert.Regexp(t, `^PROG-[0-9a-f]{8}$`, created.ProgramID)
	assert.Equal(t, model.ProgramTypeRehabilitation, created.Type)
	assert.Equal(t, []string{"hypertension", "smoking"}, created.RiskFactors)
}

func TestCreateProgramDuplicateName(t *testing.T) {
	resp := makeRequest(t, "POST", "/programs", map[string]interface{}{
		"name":         "diabetes management",
		"program_type": "chronic",
	}, apiKey)

	// Seeded "Diabetes Management" differs only in case.
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "error", resp.Status)
}

func TestCreateProgramValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			"unknown program type",
			map[string]interface{}{"name": "Surgical Care", "program_type": "surgical"},
		},
		{
			"name too short",
			map[string]interface{}{"name": "ab", "program_type": "chronic"},
		},
		{
			"malformed age range",
			map[string]interface{}{"name": "Backwards Range", "program_type": "chronic", "target_age_group": "80:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := makeRequest(t, "POST", "/programs", tt.body, apiKey)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "error", resp.Status)
		})
	}
}
