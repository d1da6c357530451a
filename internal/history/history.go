// Package history records a game's narration events as a JSON game record.
package history

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/lox/pig/internal/fileutil"
	"github.com/lox/pig/internal/game"
)

// Writer persists finished game records
type Writer interface {
	WriteRecord(record *Record) error
}

// FileWriter writes each record as indented JSON to a fixed path
type FileWriter struct {
	path string
}

// NewFileWriter creates a writer for path. Missing parent directories are created on write.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// WriteRecord atomically replaces the file with record
func (w *FileWriter) WriteRecord(record *Record) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	return fileutil.WriteAtomic(w.path, 0644, func(out io.Writer) error {
		return Encode(out, record)
	})
}

// NoOpWriter discards records (for tests)
type NoOpWriter struct{}

// WriteRecord does nothing
func (NoOpWriter) WriteRecord(*Record) error { return nil }

// Entry is one recorded event.
type Entry struct {
	Type      game.EventType `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      any            `json:"data"`
}

// NewEntry wraps event for serialization
func NewEntry(event game.GameEvent) Entry {
	return Entry{
		Type:      event.EventType(),
		Timestamp: event.Timestamp(),
		Data:      event,
	}
}

// Record is everything needed to review or replay a game
type Record struct {
	GameID    string             `json:"game_id"`
	Seed      int64              `json:"seed"`
	Mode      string             `json:"mode"`
	StartedAt time.Time          `json:"started_at"`
	Players   []game.PlayerState `json:"players"`
	Events    []Entry            `json:"events"`
	Result    *game.GameResult   `json:"result,omitempty"`
}

// Encode writes record as indented JSON
func Encode(w io.Writer, record *Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(record)
}

// Recorder is a game.EventSubscriber that builds a Record as the game runs
type Recorder struct {
	record Record
	writer Writer
}

// NewRecorder creates a recorder for one game
func NewRecorder(gameID string, seed int64, writer Writer) *Recorder {
	if writer == nil {
		writer = NoOpWriter{}
	}
	return &Recorder{
		record: Record{
			GameID: gameID,
			Seed:   seed,
			Events: make([]Entry, 0),
		},
		writer: writer,
	}
}

// OnEvent implements game.EventSubscriber
func (r *Recorder) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.GameStartEvent:
		r.record.Mode = e.Mode
		r.record.StartedAt = e.Timestamp()
		r.record.Players = e.Players
	case game.GameOverEvent:
		result := e.Result
		r.record.Result = &result
	}
	r.record.Events = append(r.record.Events, NewEntry(event))
}

// Record returns the record built so far
func (r *Recorder) Record() *Record {
	return &r.record
}

// Finished reports whether the game_over event has been seen
func (r *Recorder) Finished() bool {
	return r.record.Result != nil
}

// Save writes the record. Unfinished games are saved too so aborted games can
// be inspected.
func (r *Recorder) Save() error {
	if err := r.writer.WriteRecord(&r.record); err != nil {
		return fmt.Errorf("save game %s: %w", r.record.GameID, err)
	}
	return nil
}
