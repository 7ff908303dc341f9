package engine

import (
	"errors"
	"fmt"

	"github.com/piwi3910/anchorage/internal/model"
)

// ErrInvalidArgument is wrapped by errors caused by bad caller input.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNilVessel is returned when an operation that requires a vessel gets nil.
var ErrNilVessel = fmt.Errorf("%w: vessel is nil", ErrInvalidArgument)

// Rotate turns the vessel 90° clockwise. Nominal width and height are left
// untouched; only the orientation changes.
func Rotate(v *model.Vessel) error {
	if v == nil {
		return ErrNilVessel
	}
	v.Rotation = v.Rotation.Next()
	return nil
}
