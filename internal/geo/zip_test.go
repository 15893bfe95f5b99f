package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateFromZip(t *testing.T) {
	tests := []struct {
		zip  string
		want string
	}{
		{"75001", "TX"},
		{"79999", "TX"},
		{"90210", "CA"},
		{"10001", "NY"},
		{"33101", "FL"},
		{"60601", "IL"},
		{"02116", "MA"},
		{"06103", "CT"},
		{"99501", "AK"},
		{"96701", "HI"},
		{"20001", "DC"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StateFromZip(tt.zip), "zip %s", tt.zip)
	}
}

func TestStateFromZipPlusFour(t *testing.T) {
	assert.Equal(t, "TX", StateFromZip("75001-1234"))
}

func TestStateFromZipInvalid(t *testing.T) {
	assert.Equal(t, "", StateFromZip("abcde"))
	assert.Equal(t, "", StateFromZip(""))
	// Unassigned block
	assert.Equal(t, "", StateFromZip("00100"))
}
