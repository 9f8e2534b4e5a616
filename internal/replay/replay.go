// Package replay records finished games frame by frame and stores them as
// msgpack files that the terminal viewer can play back.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Ext is the replay file extension.
const Ext = ".snakereplay"

// formatVersion is bumped whenever Recording changes incompatibly.
const formatVersion = 1

// ErrEmptyRecording is returned when saving or loading a recording with no
// frames.
var ErrEmptyRecording = errors.New("replay: recording has no frames")

// Cell is a grid coordinate, packed as a two-element array.
type Cell struct {
	_msgpack struct{} `msgpack:",as_array"`
	X, Y     int
}

// Frame is the board after one tick.
type Frame struct {
	Tick    uint64 `msgpack:"t"`
	Snake   []Cell `msgpack:"s"`
	Food    Cell   `msgpack:"f"`
	HasFood bool   `msgpack:"h"`
	Score   int    `msgpack:"p"`
}

// Recording is one complete game.
type Recording struct {
	Version    int               `msgpack:"v"`
	GameID     string            `msgpack:"id"`
	Difficulty config.Difficulty `msgpack:"d"`
	PeriodMS   int64             `msgpack:"ms"`
	TileCount  int               `msgpack:"n"`
	EndedAt    time.Time         `msgpack:"end"`
	Score      int               `msgpack:"score"`
	Won        bool              `msgpack:"won"`
	Frames     []Frame           `msgpack:"frames"`
}

// Period returns the tick period the game was played at.
func (r *Recording) Period() time.Duration {
	return time.Duration(r.PeriodMS) * time.Millisecond
}

// Snapshot converts frame i back to game coordinates.
func (r *Recording) Snapshot(i int) snake.Snapshot {
	f := r.Frames[i]
	body := make([]snake.Point, len(f.Snake))
	for j, c := range f.Snake {
		body[j] = snake.Point{X: c.X, Y: c.Y}
	}
	return snake.Snapshot{
		GameID:     r.GameID,
		Tick:       f.Tick,
		Phase:      snake.PhaseRunning,
		Score:      f.Score,
		Snake:      body,
		Food:       snake.Point{X: f.Food.X, Y: f.Food.Y},
		HasFood:    f.HasFood,
		Difficulty: r.Difficulty,
		TileCount:  r.TileCount,
	}
}

func frameOf(s snake.Snapshot) Frame {
	cells := make([]Cell, len(s.Snake))
	for i, p := range s.Snake {
		cells[i] = Cell{X: p.X, Y: p.Y}
	}
	return Frame{
		Tick:    s.Tick,
		Snake:   cells,
		Food:    Cell{X: s.Food.X, Y: s.Food.Y},
		HasFood: s.HasFood,
		Score:   s.Score,
	}
}

// Save writes r to path.
func Save(path string, r *Recording) error {
	if len(r.Frames) == 0 {
		return ErrEmptyRecording
	}
	data, err := msgpack.Marshal(r)
	if err != nil {
		return fmt.Errorf("replay: cannot encode %s: %w", r.GameID, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("replay: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads a recording from path.
func Load(path string) (*Recording, error) {
	data, err := os.ReadFile(config.ExpandHome(path))
	if err != nil {
		return nil, fmt.Errorf("replay: cannot read %s: %w", path, err)
	}
	var r Recording
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("replay: cannot decode %s: %w", path, err)
	}
	if r.Version != formatVersion {
		return nil, fmt.Errorf("replay: %s has format version %d, want %d", path, r.Version, formatVersion)
	}
	if len(r.Frames) == 0 {
		return nil, ErrEmptyRecording
	}
	return &r, nil
}

// List returns the replay files in dir, newest first.
func List(dir string) ([]string, error) {
	dir = config.ExpandHome(dir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot list %s: %w", dir, err)
	}

	type file struct {
		path string
		mod  time.Time
	}
	var files []file
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, file{path: filepath.Join(dir, e.Name()), mod: info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool {
		if !files[i].mod.Equal(files[j].mod) {
			return files[i].mod.After(files[j].mod)
		}
		return files[i].path > files[j].path
	})

	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.path
	}
	return out, nil
}

// Recorder is a game observer that captures every tick and saves the
// recording when the game ends.
type Recorder struct {
	dir       string
	tileCount int
	logger    *log.Logger

	current  *Recording
	lastPath string
}

// NewRecorder creates a recorder saving into dir. logger may be nil.
func NewRecorder(dir string, tileCount int, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		dir:       config.ExpandHome(dir),
		tileCount: tileCount,
		logger:    logger,
	}
}

// OnEvent implements snake.Observer.
func (r *Recorder) OnEvent(e snake.Event) {
	switch ev := e.(type) {
	case snake.ResetEvent:
		r.current = nil
	case snake.StartedEvent:
		if r.current == nil {
			r.current = &Recording{
				Version:   formatVersion,
				GameID:    ev.GameID,
				TileCount: r.tileCount,
			}
		}
		r.current.Difficulty = ev.Difficulty
		r.current.PeriodMS = ev.Period.Milliseconds()
	case snake.TickEvent:
		if r.current != nil {
			r.current.Frames = append(r.current.Frames, frameOf(ev.Snapshot))
		}
	case snake.GameOverEvent:
		r.finish(ev)
	}
}

func (r *Recorder) finish(ev snake.GameOverEvent) {
	rec := r.current
	r.current = nil
	if rec == nil || len(rec.Frames) == 0 {
		return
	}
	rec.EndedAt = ev.EndedAt
	rec.Score = ev.Score
	rec.Won = ev.Won

	path := filepath.Join(r.dir, rec.GameID+Ext)
	if err := Save(path, rec); err != nil {
		r.logger.Warn("failed to save replay", "game", rec.GameID, "error", err)
		return
	}
	r.lastPath = path
	r.logger.Debug("replay saved", "path", path, "frames", len(rec.Frames))
}

// LastPath returns the file written for the most recent game, if any.
func (r *Recorder) LastPath() string {
	return r.lastPath
}
