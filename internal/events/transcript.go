package events

import (
	"fmt"
	"io"
	"sync"
)

// TranscriptPrinter writes each battle message to the player's terminal
type TranscriptPrinter struct {
	out io.Writer
}

// NewTranscriptPrinter creates a printer over out
func NewTranscriptPrinter(out io.Writer) *TranscriptPrinter {
	return &TranscriptPrinter{out: out}
}

func (p *TranscriptPrinter) ID() string    { return "transcript-printer" }
func (p *TranscriptPrinter) Priority() int { return PriorityDisplay }

// HandleEvent prints BattleEvents and ignores everything else
func (p *TranscriptPrinter) HandleEvent(e Event) error {
	be, ok := e.(*BattleEvent)
	if !ok {
		return nil
	}
	_, err := fmt.Fprintln(p.out, be.Message)
	return err
}

// TranscriptRecorder collects the lines of one battle for archiving
type TranscriptRecorder struct {
	mu       sync.Mutex
	battleID string
	lines    []string
}

// NewTranscriptRecorder records events for battleID only
func NewTranscriptRecorder(battleID string) *TranscriptRecorder {
	return &TranscriptRecorder{battleID: battleID}
}

func (r *TranscriptRecorder) ID() string    { return "transcript-recorder-" + r.battleID }
func (r *TranscriptRecorder) Priority() int { return PriorityRecord }

// HandleEvent appends the event's message
func (r *TranscriptRecorder) HandleEvent(e Event) error {
	be, ok := e.(*BattleEvent)
	if !ok || be.BattleID != r.battleID {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, be.Message)
	return nil
}

// Lines returns a copy of everything recorded so far
func (r *TranscriptRecorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}
