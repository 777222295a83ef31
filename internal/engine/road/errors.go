package road

import "errors"

var (
	// ErrUnknownPoint is returned when a PointID is not part of the path.
	ErrUnknownPoint = errors.New("road: unknown control point")

	// ErrNotLinked is returned when inserting between points that are not neighbours.
	ErrNotLinked = errors.New("road: control points are not linked")

	// ErrLastPoint is returned when removing the only remaining point.
	ErrLastPoint = errors.New("road: cannot remove the last control point")

	// ErrInvalidSettings is returned for settings that cannot produce a mesh.
	ErrInvalidSettings = errors.New("road: invalid settings")
)
