package history

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/pig/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{ err error }

func (w failingWriter) WriteRecord(*Record) error { return w.err }

func playRecorded(t *testing.T, recorder *Recorder) *game.GameResult {
	t.Helper()
	mockClock := quartz.NewMock(t)
	engine, _ := game.NewTestEngine(game.NewScriptedRoller(4, 6), game.WithClock(mockClock))
	engine.EventBus().Subscribe(recorder)

	ann, _ := game.NewTestHuman(1, "Ann", "r", "h")
	bob, _ := game.NewTestHuman(2, "Bob", "r")
	bob.Score = 94

	rotation, err := game.NewRotation(ann, bob)
	require.NoError(t, err)
	result, err := game.NewController(rotation, engine, game.TimeBoxed(time.Minute), log.New(io.Discard)).Play(context.Background())
	require.NoError(t, err)
	return result
}

func TestRecorder_BuildsRecord(t *testing.T) {
	recorder := NewRecorder("01h455vb4pex5vsknk084sn02q", 42, nil)
	result := playRecorded(t, recorder)

	record := recorder.Record()
	assert.True(t, recorder.Finished())
	assert.Equal(t, "timed", record.Mode)
	assert.Equal(t, int64(42), record.Seed)
	require.Len(t, record.Players, 2)
	assert.Equal(t, "Ann", record.Players[0].Name)
	assert.Equal(t, 94, record.Players[1].Score)
	assert.Equal(t, result, record.Result)

	require.NotEmpty(t, record.Events)
	assert.Equal(t, game.EventTypeGameStart, record.Events[0].Type)
	assert.Equal(t, game.EventTypeGameOver, record.Events[len(record.Events)-1].Type)
	assert.Equal(t, record.StartedAt, record.Events[0].Timestamp)
}

func TestFileWriter_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games", "game.json")
	recorder := NewRecorder("01h455vb4pex5vsknk084sn02q", 7, NewFileWriter(path))
	playRecorded(t, recorder)

	require.NoError(t, recorder.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		GameID string `json:"game_id"`
		Seed   int64  `json:"seed"`
		Mode   string `json:"mode"`
		Events []struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		} `json:"events"`
		Result struct {
			Winner struct {
				Name string `json:"name"`
				Type string `json:"type"`
			} `json:"winner"`
			Reason string `json:"reason"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "01h455vb4pex5vsknk084sn02q", decoded.GameID)
	assert.Equal(t, int64(7), decoded.Seed)
	assert.Equal(t, "timed", decoded.Mode)
	assert.Equal(t, "Bob", decoded.Result.Winner.Name)
	assert.Equal(t, "human", decoded.Result.Winner.Type)
	assert.Equal(t, "score", decoded.Result.Reason)

	var hold struct {
		Banked int `json:"banked"`
	}
	for _, e := range decoded.Events {
		if e.Type == "hold" {
			require.NoError(t, json.Unmarshal(e.Data, &hold))
		}
	}
	assert.Equal(t, 4, hold.Banked)
}

func TestRecorder_SaveWrapsWriterError(t *testing.T) {
	boom := errors.New("disk full")
	recorder := NewRecorder("id", 0, failingWriter{err: boom})

	err := recorder.Save()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "save game id")
	assert.False(t, recorder.Finished())
}
