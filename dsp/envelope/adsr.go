package envelope

import "fmt"

// Stage is the current segment of an ADSR envelope.
type Stage int

const (
	Idle Stage = iota
	Attack
	Decay
	Sustain
	Release
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case Idle:
		return "idle"
	case Attack:
		return "attack"
	case Decay:
		return "decay"
	case Sustain:
		return "sustain"
	case Release:
		return "release"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Settings holds stage durations in seconds and the sustain level in [0, 1].
type Settings struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

// ADSR is a linear attack-decay-sustain-release envelope.
//
// The zero value is idle.
type ADSR struct {
	stage        Stage
	value        float64
	elapsed      float64
	attackStart  float64
	releaseStart float64
}

// Trigger starts the attack segment from the current level.
func (e *ADSR) Trigger() {
	e.TriggerFrom(e.value)
}

// TriggerFrom starts the attack segment from level.
func (e *ADSR) TriggerFrom(level float64) {
	e.stage = Attack
	e.elapsed = 0
	e.attackStart = level
	e.value = level
}

// Release moves any active stage into the release segment. It is a no-op
// when idle or already releasing.
func (e *ADSR) Release() {
	if e.stage == Idle || e.stage == Release {
		return
	}
	e.stage = Release
	e.releaseStart = e.value
	e.elapsed = 0
}

// Next advances the envelope by dt seconds and returns its level. When the
// release segment completes the envelope becomes idle and returns 0.
func (e *ADSR) Next(s Settings, dt float64) float64 {
	switch e.stage {
	case Attack:
		e.elapsed += dt
		if e.elapsed >= s.Attack {
			e.stage = Decay
			e.elapsed = 0
			e.value = 1
		} else {
			e.value = e.attackStart + (1-e.attackStart)*e.elapsed/s.Attack
		}
	case Decay:
		e.elapsed += dt
		if e.elapsed >= s.Decay {
			e.stage = Sustain
			e.value = s.Sustain
		} else {
			e.value = 1 - (1-s.Sustain)*e.elapsed/s.Decay
		}
	case Sustain:
		e.value = s.Sustain
	case Release:
		e.elapsed += dt
		if e.elapsed >= s.Release {
			e.Reset()
		} else {
			e.value = e.releaseStart * (1 - e.elapsed/s.Release)
		}
	default:
		e.value = 0
	}
	return e.value
}

// Stage returns the current segment.
func (e *ADSR) Stage() Stage { return e.stage }

// Value returns the most recent level.
func (e *ADSR) Value() float64 { return e.value }

// Active reports whether the envelope is not idle.
func (e *ADSR) Active() bool { return e.stage != Idle }

// Reset returns the envelope to idle at level 0.
func (e *ADSR) Reset() {
	*e = ADSR{}
}
