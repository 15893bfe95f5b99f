package geo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentForSupportedState(t *testing.T) {
	c := ContentFor("TX")
	assert.Equal(t, "Texas Personal Injury Claims", c.Headline)
	assert.Contains(t, c.Statistic, "2-year statute")
}

func TestContentForUnsupportedStateIsGenerated(t *testing.T) {
	c := ContentFor("WY")
	assert.True(t, strings.Contains(c.Headline, "Wyoming"))
	assert.True(t, strings.Contains(c.Subheadline, "Wyoming"))
	assert.NotEmpty(t, c.LegalInfo)
}

func TestContentForUnknownCodeFallsBackToDefault(t *testing.T) {
	c := ContentFor("ZZ")
	assert.Equal(t, SupportedStates[DefaultState], c)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("CA"))
	assert.False(t, IsSupported("WY"))
	assert.False(t, IsSupported("ZZ"))
}

func TestIsValidState(t *testing.T) {
	assert.True(t, IsValidState("WY"))
	assert.True(t, IsValidState("DC"))
	assert.False(t, IsValidState("ZZ"))
	assert.False(t, IsValidState("tx"))
}

func TestEverySupportedStateIsValid(t *testing.T) {
	for code := range SupportedStates {
		assert.True(t, IsValidState(code), "supported state %s missing from AllStates", code)
	}
}

func TestStateName(t *testing.T) {
	assert.Equal(t, "Texas", StateName("TX"))
	assert.Equal(t, "", StateName("ZZ"))
}
