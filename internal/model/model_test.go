package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(1990, time.June, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1990-06-01"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, d.Equal(parsed.Time))
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"06/01/1990"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
}

func TestParseAgeRange(t *testing.T) {
	tests := []struct {
		input   string
		want    AgeRange
		wantErr bool
	}{
		{input: "30-80", want: AgeRange{Min: 30, Max: 80}},
		{input: "0-12", want: AgeRange{Min: 0, Max: 12}},
		{input: "18-18", want: AgeRange{Min: 18, Max: 18}},
		{input: "80-30", wantErr: true},
		{input: "abc-12", wantErr: true},
		{input: "30", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAgeRange(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAgeRangeContains(t *testing.T) {
	r := AgeRange{Min: 30, Max: 80}

	assert.True(t, r.Contains(30), "min bound is inclusive")
	assert.True(t, r.Contains(80), "max bound is inclusive")
	assert.True(t, r.Contains(45))
	assert.False(t, r.Contains(29))
	assert.False(t, r.Contains(81))
}

func TestAgeRangeJSON(t *testing.T) {
	r := AgeRange{Min: 30, Max: 80}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `"30-80"`, string(data))

	var parsed AgeRange
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, r, parsed)
}

func TestBloodTypeIsValid(t *testing.T) {
	for _, valid := range []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"} {
		assert.True(t, BloodType(valid).IsValid(), valid)
	}
	for _, invalid := range []string{"", "C+", "AB", "a+", "O?"} {
		assert.False(t, BloodType(invalid).IsValid(), invalid)
	}
}

func TestProgramTypeIsValid(t *testing.T) {
	assert.True(t, ProgramTypeChronic.IsValid())
	assert.True(t, ProgramTypeRehabilitation.IsValid())
	assert.False(t, ProgramType("surgical").IsValid())
	assert.False(t, ProgramType("").IsValid())
}

func TestPatientCloneIsIndependent(t *testing.T) {
	p := &Patient{
		PatientID:        "PAT-567890",
		EnrolledPrograms: []string{"PROG-11111111"},
		MedicalHistory:   []string{"note"},
	}

	cp := p.Clone()
	cp.EnrolledPrograms = append(cp.EnrolledPrograms, "PROG-22222222")
	cp.MedicalHistory[0] = "edited"

	assert.Equal(t, []string{"PROG-11111111"}, p.EnrolledPrograms)
	assert.Equal(t, []string{"note"}, p.MedicalHistory)
}

func TestProgramCloneIsIndependent(t *testing.T) {
	p := &Program{
		ProgramID:      "PROG-11111111",
		TargetAgeGroup: &AgeRange{Min: 30, Max: 80},
		RiskFactors:    []string{"obesity"},
	}

	cp := p.Clone()
	cp.TargetAgeGroup.Min = 0
	cp.RiskFactors[0] = "edited"

	assert.Equal(t, 30, p.TargetAgeGroup.Min)
	assert.Equal(t, []string{"obesity"}, p.RiskFactors)
}
