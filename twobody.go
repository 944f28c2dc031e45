package smorrery

import (
	"math"

	"github.com/ChristopherRabotin/ode"
)

// TwoBodyProp numerically integrates the two-body problem r̈ = -μ·r/|r|³ in
// the kernel's AU/year units. It is an ode.Integrable and serves as an
// independent cross-check of the closed-form Keplerian propagation.
type TwoBodyProp struct {
	R, V    []float64
	μ       float64
	elapsed float64 // years
	stop    float64 // years
	step    float64 // years
}

// NewTwoBodyProp returns a propagator for the given state integrating over
// the given duration with the given step, both in years.
func NewTwoBodyProp(R, V []float64, μ, duration, step float64) *TwoBodyProp {
	return &TwoBodyProp{R: append([]float64{}, R...), V: append([]float64{}, V...), μ: μ, stop: duration, step: step}
}

// GetState returns the integration state, position then velocity.
func (p *TwoBodyProp) GetState() []float64 {
	return []float64{p.R[0], p.R[1], p.R[2], p.V[0], p.V[1], p.V[2]}
}

// SetState updates the state after an integration step.
func (p *TwoBodyProp) SetState(t float64, s []float64) {
	p.R = []float64{s[0], s[1], s[2]}
	p.V = []float64{s[3], s[4], s[5]}
	p.elapsed += p.step
}

// Stop returns whether the integration is done. The half-step slack keeps
// the step count stable against rounding in the elapsed-time accumulation.
func (p *TwoBodyProp) Stop(t float64) bool {
	return p.elapsed >= p.stop-p.step/2
}

// Func does the math: the time derivative of the Cartesian state.
func (p *TwoBodyProp) Func(t float64, f []float64) (fDot []float64) {
	fDot = make([]float64, 6)
	r := norm([]float64{f[0], f[1], f[2]})
	bodyAcc := -p.μ / math.Pow(r, 3)
	fDot[0] = f[3]
	fDot[1] = f[4]
	fDot[2] = f[5]
	fDot[3] = bodyAcc * f[0]
	fDot[4] = bodyAcc * f[1]
	fDot[5] = bodyAcc * f[2]
	return
}

// Propagate integrates until the stop time. Blocking.
func (p *TwoBodyProp) Propagate() {
	ode.NewRK4(0, p.step, p).Solve()
}
