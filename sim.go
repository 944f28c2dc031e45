package smorrery

import (
	"fmt"
	"sync"

	kitlog "github.com/go-kit/kit/log"
)

// maxTracePoints caps each body's position history.
const maxTracePoints = 1000

var wg sync.WaitGroup

/* Handles the simulation loop over every tracked body. */

// Body is a tracked body: a planet, a catalog small body, or a user-launched
// asteroid. Each body owns its own trace history; there is no shared state
// between bodies, so a System may propagate them in any order.
type Body struct {
	Name      string
	Elements  *OrbitalElements
	Position  []float64
	Highlight bool // user-launched bodies get the denser orbit curve
	trace     [][]float64
}

// Trace returns the recorded position history, most recent last.
func (b *Body) Trace() [][]float64 {
	return b.trace
}

func (b *Body) appendTrace(pos []float64) {
	if len(b.trace) == maxTracePoints {
		b.trace = b.trace[1:]
	}
	b.trace = append(b.trace, pos)
}

// Curve samples this body's orbit for display, denser when highlighted.
func (b *Body) Curve() ([][]float64, error) {
	n := OrbitCurvePoints
	if b.Highlight {
		n = HighlightCurvePoints
	}
	return b.Elements.SampleOrbitCurve(n)
}

// State is a snapshot of a single body during a run, streamed to the exporter.
type State struct {
	JD       float64
	Name     string
	Position []float64
}

// System owns the simulated epoch and the set of bodies. The epoch is passed
// by value into every kernel call; the kernel never mutates it.
type System struct {
	Bodies    []*Body
	CurrentJD float64
	logger    kitlog.Logger
	histChan  chan<- State
}

// NewSystem returns a system starting at the given Julian date.
func NewSystem(jd float64, logger kitlog.Logger) *System {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &System{CurrentJD: jd, logger: logger}
}

// NewSolarSystem returns a system seeded with the nine classical planets.
func NewSolarSystem(jd float64, logger kitlog.Logger) *System {
	s := NewSystem(jd, logger)
	for _, p := range Planets {
		s.Add(p.Name, p.Elements)
	}
	return s
}

// Add tracks a new body from its elements and returns it.
func (s *System) Add(name string, el *OrbitalElements) *Body {
	b := &Body{Name: name, Elements: el}
	if pos, err := el.Propagate(s.CurrentJD); err == nil {
		b.Position = pos
	}
	s.Bodies = append(s.Bodies, b)
	return b
}

// Launch determines an orbit from a user-supplied Cartesian state at the
// current epoch and tracks the resulting body. A degenerate state rejects the
// request; nothing is added and the caller gets the diagnostic.
func (s *System) Launch(name string, R, V []float64) (*Body, error) {
	el, err := DetermineOrbit(R, V, SunGM, s.CurrentJD)
	if err != nil {
		s.logger.Log("launch", name, "rejected", err)
		return nil, err
	}
	b := s.Add(name, el)
	b.Highlight = true
	s.logger.Log("launch", name, "orbit", el.String())
	return b, nil
}

// Step advances the simulated epoch by the given number of days and
// propagates every body. A body whose propagation fails is skipped for this
// step and logged; other bodies are unaffected.
func (s *System) Step(days float64) {
	s.CurrentJD += days
	for _, b := range s.Bodies {
		pos, err := b.Elements.Propagate(s.CurrentJD)
		if err != nil {
			s.logger.Log("body", b.Name, "jd", s.CurrentJD, "err", err)
			continue
		}
		b.Position = pos
		b.appendTrace(pos)
		if s.histChan != nil {
			s.histChan <- State{JD: s.CurrentJD, Name: b.Name, Position: pos}
		}
	}
}

// Run steps the system until the stop date, optionally streaming every state
// to the exporter, and blocks until the export is flushed.
func (s *System) Run(untilJD, stepDays float64, conf ExportConfig) error {
	if stepDays <= 0 {
		return fmt.Errorf("non-positive step of %f days", stepDays)
	}
	if !conf.IsUseless() {
		histChan := make(chan State, 1000) // a 1k entry buffer
		s.histChan = histChan
		wg.Add(1)
		go func() {
			defer wg.Done()
			StreamStates(conf, histChan)
		}()
		defer func() {
			close(histChan)
			s.histChan = nil
			wg.Wait()
		}()
	}
	for s.CurrentJD < untilJD {
		s.Step(stepDays)
	}
	return nil
}
