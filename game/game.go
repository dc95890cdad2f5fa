package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type GameConfig struct {
	// Seed for the piece factory; 0 takes the Snapshot's seed, or else one
	// from the clock
	Seed int64

	MoveDownInterval time.Duration

	// Snapshot to load the initial board from
	Snapshot *BoardSnapshot

	Director Director

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string

	Logger *logrus.Logger

	OnLinesCleared func(numCleared int)
	OnGameOver     func(session *Session)
}

func NewGameConfig() GameConfig {
	return GameConfig{
		MoveDownInterval: DefaultMoveDownInterval,
		Director:         nil,
		Snapshot:         nil,
	}
}

func (config GameConfig) logger() *logrus.Logger {
	if config.Logger == nil {
		return logrus.StandardLogger()
	}
	return config.Logger
}

func (config GameConfig) onGameOver(session *Session) {
	if config.OnGameOver != nil {
		config.OnGameOver(session)
	}
	if config.SavedSnapshotsDir != "" {
		if path, err := config.saveSnapshot(session, time.Now()); err != nil {
			session.log.WithError(err).Warn("could not save board snapshot")
		} else {
			session.log.WithField("path", path).Debug("saved board snapshot")
		}
	}
}

func (config GameConfig) saveSnapshot(session *Session, t time.Time) (string, error) {
	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			return "", err
		}
	} else if !stat.Mode().IsDir() {
		return "", fmt.Errorf("%s is not a directory; cannot save snapshots to it", config.SavedSnapshotsDir)
	}

	contents, err := session.board.Snapshot(session.seed).Serialize()
	if err != nil {
		return "", err
	}

	path := filepath.Join(config.SavedSnapshotsDir, generateSnapshotFilename(session, t))
	if err := os.WriteFile(path, []byte(contents), 0666); err != nil {
		return "", fmt.Errorf("write board snapshot: %w", err)
	}
	return path, nil
}

func generateSnapshotFilename(session *Session, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))
	filenameBuilder.WriteString("gameover_")
	filenameBuilder.WriteString(session.id.String()[:8])
	fmt.Fprintf(&filenameBuilder, "_%d", session.games)
	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
