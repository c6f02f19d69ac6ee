// Package idgen derives deterministic identifiers for patients and programs.
package idgen

import (
	"crypto/sha1"
	"encoding/hex"
)

const (
	patientPrefix = "PAT-"
	programPrefix = "PROG-"

	nationalIDSuffixLen = 6
	programHashLen      = 8
)

// PatientID derives a patient identifier from the last 6 characters of the
// national ID, or the whole string when shorter. Identifiers sharing a
// 6-character suffix collide; acceptable at clinic scale.
func PatientID(nationalID string) string {
	suffix := nationalID
	if len(suffix) > nationalIDSuffixLen {
		suffix = suffix[len(suffix)-nationalIDSuffixLen:]
	}
	return patientPrefix + suffix
}

// ProgramID derives a program identifier from a truncated content hash of the
// name. Deterministic: the same name always yields the same identifier. The
// truncation gives up strong collision resistance, which is fine for catalog
// sizes this system targets.
func ProgramID(name string) string {
	sum := sha1.Sum([]byte(name))
	return programPrefix + hex.EncodeToString(sum[:])[:programHashLen]
}
