package dotstash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateFormatting(t *testing.T) {
	assert.Contains(t, formatBold("flags"), "flags")
	assert.Equal(t, "FLAGS", formatUpper("flags"))
	assert.Contains(t, formatBoldUpper("flags"), "FLAGS")
}

func TestUsageTemplate(t *testing.T) {
	rootCmd := NewRootCmd()
	usage := rootCmd.UsageString()

	assert.Contains(t, usage, "USAGE")
	assert.Contains(t, usage, "collect")
	assert.Contains(t, usage, "restore")
	assert.Contains(t, usage, "--dry-run")
}
