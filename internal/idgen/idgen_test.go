package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatientID(t *testing.T) {
	tests := []struct {
		name       string
		nationalID string
		want       string
	}{
		{"standard 10-char ID", "1234567890", "PAT-567890"},
		{"15-char ID", "123456789012345", "PAT-789012"},
		{"shorter than suffix uses whole string", "12345", "PAT-12345"},
		{"exactly suffix length", "567890", "PAT-567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PatientID(tt.nationalID))
		})
	}
}

func TestPatientIDDeterministic(t *testing.T) {
	assert.Equal(t, PatientID("1234567890"), PatientID("1234567890"))
}

func TestProgramID(t *testing.T) {
	id := ProgramID("Diabetes Management")

	assert.Len(t, id, len("PROG-")+8)
	assert.Regexp(t, `^PROG-[0-9a-f]{8}$`, id)

	// Same name always yields the same identifier.
	assert.Equal(t, id, ProgramID("Diabetes Management"))

	// Different names yield different identifiers.
	assert.NotEqual(t, id, ProgramID("Child Vaccination Program"))
}
