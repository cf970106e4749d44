//go:build mage

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLdflagsStampsVersion(t *testing.T) {
	flags := ldflags()
	assert.True(t, strings.HasPrefix(flags, "-X main.version="), flags)
	assert.NotEqual(t, "-X main.version=", flags, "version must not be empty")
	assert.Equal(t, "1", buildEnv["CGO_ENABLED"])
}
