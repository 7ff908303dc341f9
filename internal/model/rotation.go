package model

import (
	"encoding/json"
	"math"
)

// Rotation is a clockwise quarter-turn orientation.
type Rotation int

const (
	Rotate0   Rotation = iota // Unrotated
	Rotate90                  // Width and height swapped
	Rotate180                 // Upside down, same footprint as Rotate0
	Rotate270                 // Width and height swapped
)

// RotationFromDegrees maps any angle to the nearest quarter turn.
// Negative and >= 360 angles wrap around.
func RotationFromDegrees(deg float64) Rotation {
	turns := int(math.Round(deg / 90))
	turns %= 4
	if turns < 0 {
		turns += 4
	}
	return Rotation(turns)
}

// Degrees returns the rotation as 0, 90, 180 or 270.
func (r Rotation) Degrees() float64 {
	return float64(r.normalized()) * 90
}

// Next returns the orientation one quarter turn clockwise.
func (r Rotation) Next() Rotation {
	return (r.normalized() + 1) % 4
}

// QuarterTurn reports whether the rotated footprint swaps width and height.
func (r Rotation) QuarterTurn() bool {
	return r.normalized()%2 == 1
}

func (r Rotation) normalized() Rotation {
	n := r % 4
	if n < 0 {
		n += 4
	}
	return n
}

func (r Rotation) String() string {
	switch r.normalized() {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// MarshalJSON writes the rotation in degrees.
func (r Rotation) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Degrees())
}

// UnmarshalJSON accepts degrees and snaps them to a quarter turn.
func (r *Rotation) UnmarshalJSON(data []byte) error {
	var deg float64
	if err := json.Unmarshal(data, &deg); err != nil {
		return err
	}
	*r = RotationFromDegrees(deg)
	return nil
}
