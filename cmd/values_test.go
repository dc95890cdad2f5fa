package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectorValue(t *testing.T) {
	var val directorValue
	assert.Equal(t, "none", val.String())

	assert.NoError(t, val.Set("greedy"))
	assert.Equal(t, directorGreedy, val)
	assert.Equal(t, "greedy", val.String())

	err := val.Set("clairvoyant")
	assert.EqualError(t, err, `invalid director "clairvoyant" (choose from greedy, none, random)`)
	assert.Equal(t, directorGreedy, val)
}

func TestFrontendValue(t *testing.T) {
	var val frontendValue
	assert.Equal(t, "window", val.String())

	assert.NoError(t, val.Set("console"))
	assert.Equal(t, frontendConsole, val)
	assert.Error(t, val.Set("vr"))
	assert.Equal(t, "frontend", val.Type())
}
