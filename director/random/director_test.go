package random_test

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t1h0n/gotetris/director/random"
	"github.com/t1h0n/gotetris/game"
)

func TestDirectorActsOncePerInterval(t *testing.T) {
	logger, _ := test.NewNullLogger()
	config := game.NewGameConfig()
	config.Seed = 5
	config.Logger = logger

	session, err := game.NewSession(config)
	require.NoError(t, err)

	director := random.New(5)
	director.Interval = 100 * time.Millisecond

	director.Act(session, 60*time.Millisecond)
	assert.Equal(t, 0, session.Pending())

	director.Act(session, 60*time.Millisecond)
	assert.Equal(t, 1, session.Pending())

	director.Act(session, 60*time.Millisecond)
	assert.Equal(t, 1, session.Pending())
}

func TestDirectorPlays(t *testing.T) {
	logger, _ := test.NewNullLogger()
	config := game.NewGameConfig()
	config.Seed = 9
	config.Logger = logger
	config.Director = random.New(9)

	session, err := game.NewSession(config)
	require.NoError(t, err)

	for i := 0; i < 5000; i++ {
		session.Step(16 * time.Millisecond)
		current := session.Current()
		require.True(t, session.Board().CanPlace(&current))
	}
	assert.True(t, session.Games() > 1 || session.Pieces() > 1, "pieces should have locked")
}
