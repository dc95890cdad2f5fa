package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gotetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0666))
	return path
}

func testFlags() (*pflag.FlagSet, *int64, *time.Duration, *directorValue, *bool) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	seed := flags.Int64("seed", 0, "")
	interval := flags.Duration("interval", time.Second, "")
	director := new(directorValue)
	flags.Var(director, "director", "")
	sound := flags.Bool("sound", false, "")
	return flags, seed, interval, director, sound
}

func TestLoadSettings(t *testing.T) {
	path := writeConfig(t, `
seed: 77
move_down_interval: 250ms
director: greedy
sound: true
`)

	s, err := loadSettings(path)
	require.NoError(t, err)
	require.NotNil(t, s.Seed)
	assert.Equal(t, int64(77), *s.Seed)
	assert.Equal(t, 250*time.Millisecond, s.MoveDownInterval)
	assert.Equal(t, "greedy", s.Director)

	flags, seed, interval, director, sound := testFlags()
	require.NoError(t, s.apply(flags))
	assert.Equal(t, int64(77), *seed)
	assert.Equal(t, 250*time.Millisecond, *interval)
	assert.Equal(t, directorGreedy, *director)
	assert.True(t, *sound)
}

func TestFlagsOverrideSettings(t *testing.T) {
	s, err := loadSettings(writeConfig(t, "seed: 77\ndirector: random\n"))
	require.NoError(t, err)

	flags, seed, _, director, _ := testFlags()
	require.NoError(t, flags.Parse([]string{"--seed", "5"}))
	require.NoError(t, s.apply(flags))

	assert.Equal(t, int64(5), *seed)
	assert.Equal(t, directorRandom, *director)
}

func TestBadSettings(t *testing.T) {
	_, err := loadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = loadSettings(writeConfig(t, "board_width: 20\n"))
	assert.Error(t, err, "unknown keys are rejected")

	s, err := loadSettings(writeConfig(t, "director: psychic\n"))
	require.NoError(t, err)
	flags, _, _, _, _ := testFlags()
	assert.Error(t, s.apply(flags))
}
