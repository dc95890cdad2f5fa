package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/t1h0n/gotetris/audio"
	"github.com/t1h0n/gotetris/director/greedy"
	"github.com/t1h0n/gotetris/director/random"
	"github.com/t1h0n/gotetris/frontend/console"
	"github.com/t1h0n/gotetris/frontend/window"
	"github.com/t1h0n/gotetris/game"
)

var gameConfig = game.NewGameConfig()

var (
	configPath   string
	snapshotPath string
	logLevel     string
	logFile      string
	playSound    bool
	directorKind = directorNone
	frontendKind = frontendWindow
)

var rootCmd = &cobra.Command{
	Use:   "gotetris",
	Short: "Play manual or computer-driven Tetris",
	Long: `gotetris is a falling-block puzzle game on a 12x12 board, which
supports human- or computer-driven playing.

Run with no arguments to play in a window
	gotetris

Play in the terminal instead
	gotetris --frontend console

Use the director flag to make the computer play for you
	gotetris --director greedy
`,
	SilenceUsage: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			return nil
		}
		s, err := loadSettings(configPath)
		if err != nil {
			return err
		}
		return s.apply(cmd.Flags())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closeLog, err := newLogger(logLevel, logFile)
		if err != nil {
			return err
		}
		defer closeLog()
		gameConfig.Logger = logger

		if snapshotPath != "" {
			contents, err := os.ReadFile(snapshotPath)
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}
			if gameConfig.Snapshot, err = game.LoadSnapshot(string(contents)); err != nil {
				return err
			}
			if gameConfig.Seed == 0 {
				gameConfig.Seed = gameConfig.Snapshot.Seed
			}
		}

		if playSound {
			chime := audio.NewChime()
			if err := chime.Initialize(); err != nil {
				logger.WithError(err).Warn("audio unavailable, playing without sound")
			} else {
				defer chime.Close()
				gameConfig.OnLinesCleared = chime.LinesCleared
			}
		}

		if gameConfig.Seed == 0 {
			gameConfig.Seed = time.Now().UnixNano()
		}

		switch directorKind {
		case directorRandom:
			gameConfig.Director = random.New(gameConfig.Seed)
		case directorGreedy:
			gameConfig.Director = greedy.New()
		}

		session, err := game.NewSession(gameConfig)
		if err != nil {
			return err
		}

		logger.WithFields(logrus.Fields{
			"session":  session.ID().String(),
			"seed":     session.Seed(),
			"director": directorKind.String(),
			"frontend": frontendKind.String(),
		}).Info("starting gotetris")

		switch frontendKind {
		case frontendConsole:
			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			c, err := console.New(screen, session)
			if err != nil {
				return err
			}
			c.Run()
		default:
			pixelgl.Run(func() {
				err = window.Run(session)
			})
		}
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newLogger builds the logger sessions report to. The console frontend owns
// the terminal, so without a log file its logs are discarded.
func newLogger(level, path string) (*logrus.Logger, func(), error) {
	logger := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(parsed)

	switch {
	case path != "":
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logger.SetOutput(file)
		return logger, func() { file.Close() }, nil
	case frontendKind == frontendConsole:
		logger.SetOutput(io.Discard)
	default:
		logger.SetOutput(os.Stderr)
	}
	return logger, func() {}, nil
}

func init() {
	flags := rootCmd.Flags()

	flags.StringVarP(&configPath, "config", "c", "", "YAML file with default settings")
	flags.Int64VarP(&gameConfig.Seed, "seed", "s", 0, "Seed for the piece generator (0 replays the --snapshot seed, or picks one from the clock)")
	flags.DurationVarP(&gameConfig.MoveDownInterval, "interval", "i", game.DefaultMoveDownInterval, "Time for a piece to fall one row")
	flags.StringVar(&snapshotPath, "snapshot", "", "Board snapshot (YAML) to start the first game from")
	flags.StringVar(&gameConfig.SavedSnapshotsDir, "snapshots-dir", "", "Directory where the final board of every game is saved")
	flags.BoolVar(&playSound, "sound", false, "Play a chime when rows are cleared")
	flags.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.Var(&directorKind, "director", `Make the computer play:
none: you play
random: presses random keys
greedy: drops every piece where it leaves the flattest stack`)
	flags.Var(&frontendKind, "frontend", `Where to play:
window: an OpenGL window
console: the terminal`)
}
