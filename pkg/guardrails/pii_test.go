package guardrails

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPII(t *testing.T) {
	masked := MaskPII("my email is jane.doe@example.com and my ssn is 123-45-6789")
	assert.NotContains(t, masked, "jane.doe@example.com")
	assert.NotContains(t, masked, "123-45-6789")
	assert.Contains(t, masked, "[MASKED_EMAIL]")
	assert.Contains(t, masked, "[MASKED_SSN]")
}

func TestMaskPIILeavesCleanTextAlone(t *testing.T) {
	question := "What documents do I need for an H-1B transfer?"
	assert.Equal(t, question, MaskPII(question))
}
