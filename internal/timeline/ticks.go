package timeline

import (
	"fmt"
	"math"
)

// Ticks is a fixed-precision point in time or span of time.
// One second is exactly TicksPerSecond ticks. All timeline math is done
// in ticks; floating-point seconds and pixels exist only at the edges
// (user input, snapping thresholds, serialization).
type Ticks int64

// TicksPerSecond is the tick resolution: one microsecond per tick.
const TicksPerSecond Ticks = 1_000_000

// FromSeconds converts floating-point seconds to ticks, rounding to the
// nearest tick.
func FromSeconds(s float64) Ticks {
	return Ticks(math.Round(s * float64(TicksPerSecond)))
}

// FromFrames converts a frame count at the given frame rate to ticks.
// Returns 0 for non-positive fps.
func FromFrames(frames int, fps int) Ticks {
	if fps <= 0 {
		return 0
	}
	return Ticks(int64(frames) * int64(TicksPerSecond) / int64(fps))
}

// Seconds returns the tick value as floating-point seconds.
func (t Ticks) Seconds() float64 {
	return float64(t) / float64(TicksPerSecond)
}

// Abs returns the absolute value.
func (t Ticks) Abs() Ticks {
	if t < 0 {
		return -t
	}
	return t
}

// String formats the value as seconds with microsecond precision,
// trailing zeros trimmed.
func (t Ticks) String() string {
	return fmt.Sprintf("%gs", t.Seconds())
}
