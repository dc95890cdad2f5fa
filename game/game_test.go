package game

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveSnapshotOnGameOver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snapshots")
	session, _ := newTestSession(t, GameConfig{SavedSnapshotsDir: dir})
	session.board.cells[0][0] = filledCell(Crimson)
	session.board.cells[11][3] = filledCell(Azure)

	session.endGame()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	contents, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	snapshot, err := LoadSnapshot(string(contents))
	require.NoError(t, err)
	assert.Equal(t, session.Seed(), snapshot.Seed)

	restored := NewBoard(testInterval)
	require.NoError(t, snapshot.Apply(restored))
	assert.Equal(t, filledCell(Crimson), restored.CellAt(0, 0))
	assert.Equal(t, filledCell(Azure), restored.CellAt(3, 11))
	assert.Equal(t, 2, occupiedCount(restored))

	assert.Equal(t, 0, occupiedCount(session.Board()), "the live board is reset after saving")
}

func TestSaveSnapshotIntoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(path, nil, 0666))

	session, hook := newTestSession(t, GameConfig{SavedSnapshotsDir: path})
	session.endGame()

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "could not save board snapshot", hook.LastEntry().Message)
	assert.Equal(t, 2, session.Games())
}

func TestGenerateSnapshotFilename(t *testing.T) {
	session, _ := newTestSession(t, GameConfig{})
	at := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)

	filename := generateSnapshotFilename(session, at)

	assert.Regexp(t, regexp.MustCompile(`^20240309_140506_gameover_[0-9a-f]{8}_1\.yaml$`), filename)
	assert.Contains(t, filename, session.ID().String()[:8])
}
