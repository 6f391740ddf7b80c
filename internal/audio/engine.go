package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/marin-t/aura/internal/params"
)

// State is the engine lifecycle phase.
type State int

const (
	Idle State = iota
	Starting
	Active
	Stopping
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Active:
		return "active"
	case Stopping:
		return "stopping"
	default:
		return "idle"
	}
}

// Source is an opaque capture stream. Start may fail (permission denied,
// device missing); the failure is reported once and not retried. Samples
// copies the most recent mono samples into dst.
type Source interface {
	Start() error
	Samples(dst []float64) int
	Stop() error
}

const analysisInterval = 50 * time.Millisecond

// Engine runs the self-rescheduling analysis tick: every interval it reads
// the latest capture window, updates the spectrum, derives speed/distort and
// possibly color, and patches them into the parameter cell. Idle → Starting →
// Active → Stopping → Idle; a failed start reverts straight to Idle.
type Engine struct {
	cell     *params.Cell
	source   Source
	analyzer *Analyzer
	interval time.Duration

	mu       sync.Mutex
	state    State
	settings Settings
	levels   Levels
	stop     chan struct{}
	done     chan struct{}
}

// NewEngine wires a capture source to the cell. Nothing starts until Start.
func NewEngine(cell *params.Cell, source Source) *Engine {
	return &Engine{
		cell:     cell,
		source:   source,
		analyzer: NewAnalyzer(),
		interval: analysisInterval,
		settings: DefaultSettings(),
		state:    Idle,
	}
}

// Start acquires the capture source and begins the analysis tick. Calling it
// while not Idle is an error; a capture failure leaves the engine Idle.
func (e *Engine) Start() error {
	e.mu.Lock()
	if e.state != Idle {
		e.mu.Unlock()
		return fmt.Errorf("audio engine is %s, not idle", e.state)
	}
	e.state = Starting
	e.mu.Unlock()

	if err := e.source.Start(); err != nil {
		e.mu.Lock()
		e.state = Idle
		e.mu.Unlock()
		return fmt.Errorf("starting capture: %w", err)
	}

	e.mu.Lock()
	e.state = Active
	e.stop = make(chan struct{})
	e.done = make(chan struct{})
	go e.run(e.stop, e.done)
	e.mu.Unlock()
	return nil
}

// Stop cancels the analysis tick, waits for it to finish, then releases the
// capture source, in that order. No patch is applied after Stop returns.
// Stopping an Idle engine is a no-op.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.state != Active {
		e.mu.Unlock()
		return
	}
	e.state = Stopping
	stop, done := e.stop, e.done
	e.mu.Unlock()

	close(stop)
	<-done
	_ = e.source.Stop()

	e.mu.Lock()
	e.state = Idle
	e.mu.Unlock()
}

func (e *Engine) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	window := make([]float64, fftSize)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// The liveness check precedes each analysis pass, so a tick
			// racing Stop never lands a patch after cancellation.
			select {
			case <-stop:
				return
			default:
			}
			e.analyze(window)
		}
	}
}

func (e *Engine) analyze(window []float64) {
	settings := e.Settings()
	if !settings.Enabled {
		return
	}

	n := e.source.Samples(window)
	if n == 0 {
		return
	}
	e.analyzer.Process(window[:n])
	levels := e.analyzer.Levels(settings.Sensitivity)

	e.mu.Lock()
	e.levels = levels
	e.mu.Unlock()

	e.cell.Apply(derivePatch(levels, settings))
}

// State reports the current lifecycle phase.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Settings returns the current configuration.
func (e *Engine) Settings() Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// SetSettings replaces the configuration; the next analysis tick sees it.
func (e *Engine) SetSettings(s Settings) {
	e.mu.Lock()
	e.settings = s
	e.mu.Unlock()
}

// Levels returns the band snapshot from the most recent analysis tick.
func (e *Engine) Levels() Levels {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.levels
}
