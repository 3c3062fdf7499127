// Package replay records finished and in-progress games as gzip-compressed
// journals of per-tick frames, one JSON object per line. Journals are
// self-contained: a frame carries everything needed to audit a game
// without re-running the engine.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/vovakirdan/lambda-mine/internal/mine"
)

// Frame is one recorded tick.
type Frame struct {
	Tick     int    `json:"tick"`
	Action   string `json:"action"`
	Verdict  string `json:"verdict"`
	RobotX   int    `json:"robot_x"`
	RobotY   int    `json:"robot_y"`
	Lambdas  int    `json:"lambdas"`
	Razors   int    `json:"razors"`
	Air      int    `json:"air"`
	WaterRow int    `json:"water_row"`
	Moves    int    `json:"moves"`
}

// Header opens a journal and names the level it belongs to.
type Header struct {
	Level string `json:"level"`
}

// Recorder writes a journal to disk.
type Recorder struct {
	f   *os.File
	zw  *gzip.Writer
	enc *json.Encoder
}

// NewRecorder creates a journal file for the given level.
func NewRecorder(path, levelID string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot create journal %s: %w", path, err)
	}
	zw := gzip.NewWriter(f)
	r := &Recorder{f: f, zw: zw, enc: json.NewEncoder(zw)}
	if err := r.enc.Encode(Header{Level: levelID}); err != nil {
		zw.Close()
		f.Close()
		return nil, fmt.Errorf("replay: cannot write journal header: %w", err)
	}
	return r, nil
}

// Record appends one frame for the snapshot produced by the given action.
func (r *Recorder) Record(a mine.Action, s *mine.Snapshot) error {
	frame := Frame{
		Tick:     s.Tick,
		Action:   a.String(),
		Verdict:  s.Verdict.String(),
		RobotX:   s.Robot.X,
		RobotY:   s.Robot.Y,
		Lambdas:  s.Lambdas,
		Razors:   s.Razors,
		Air:      s.Air,
		WaterRow: s.WaterRow,
		Moves:    s.Moves,
	}
	if err := r.enc.Encode(frame); err != nil {
		return fmt.Errorf("replay: cannot write frame: %w", err)
	}
	return nil
}

// Close flushes the compressed stream and closes the file.
func (r *Recorder) Close() error {
	if err := r.zw.Close(); err != nil {
		r.f.Close()
		return fmt.Errorf("replay: cannot finish journal: %w", err)
	}
	if err := r.f.Close(); err != nil {
		return fmt.Errorf("replay: cannot close journal: %w", err)
	}
	return nil
}

// ReadAll loads a journal from disk.
func ReadAll(path string) (Header, []Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, fmt.Errorf("replay: cannot open journal %s: %w", path, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return Header{}, nil, fmt.Errorf("replay: %s is not a journal: %w", path, err)
	}
	defer zr.Close()

	dec := json.NewDecoder(bufio.NewReader(zr))

	var hdr Header
	if err := dec.Decode(&hdr); err != nil {
		return Header{}, nil, fmt.Errorf("replay: cannot read journal header: %w", err)
	}

	var frames []Frame
	for {
		var frame Frame
		if err := dec.Decode(&frame); err == io.EOF {
			break
		} else if err != nil {
			return Header{}, nil, fmt.Errorf("replay: corrupt journal frame: %w", err)
		}
		frames = append(frames, frame)
	}
	return hdr, frames, nil
}
