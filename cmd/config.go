package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

// settings is the YAML config file. Every field is optional; flags given on
// the command line take precedence over the file.
type settings struct {
	Seed              *int64        `yaml:"seed"`
	MoveDownInterval  time.Duration `yaml:"move_down_interval"`
	SavedSnapshotsDir string        `yaml:"saved_snapshots_dir"`
	Director          string        `yaml:"director"`
	Frontend          string        `yaml:"frontend"`
	Sound             *bool         `yaml:"sound"`
	LogLevel          string        `yaml:"log_level"`
	LogFile           string        `yaml:"log_file"`
}

func loadSettings(path string) (*settings, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var s settings
	if err := yaml.UnmarshalStrict(contents, &s); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &s, nil
}

// apply sets every flag the file configures, unless it was already given on
// the command line
func (s *settings) apply(flags *pflag.FlagSet) error {
	values := map[string]string{}
	if s.Seed != nil {
		values["seed"] = fmt.Sprint(*s.Seed)
	}
	if s.MoveDownInterval != 0 {
		values["interval"] = s.MoveDownInterval.String()
	}
	if s.SavedSnapshotsDir != "" {
		values["snapshots-dir"] = s.SavedSnapshotsDir
	}
	if s.Director != "" {
		values["director"] = s.Director
	}
	if s.Frontend != "" {
		values["frontend"] = s.Frontend
	}
	if s.Sound != nil {
		values["sound"] = fmt.Sprint(*s.Sound)
	}
	if s.LogLevel != "" {
		values["log-level"] = s.LogLevel
	}
	if s.LogFile != "" {
		values["log-file"] = s.LogFile
	}

	for name, value := range values {
		if flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("config %s: %w", name, err)
		}
	}
	return nil
}
