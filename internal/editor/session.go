// Package editor holds the interactive editing state of one road: the path,
// the selected control point and the latest mesh.
package editor

import (
	"errors"
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/roadspline/internal/engine/debug"
	"github.com/Faultbox/roadspline/internal/engine/road"
	"github.com/Faultbox/roadspline/pkg/math"
)

// ErrNoSelection is returned by actions that need a selected point.
var ErrNoSelection = errors.New("editor: no point selected")

// Steps used by keyboard actions.
const (
	DefaultAppendDistance = 10.0
	DefaultMoveStep       = 1.0
	DefaultTurnStep       = 15.0 * gomath.Pi / 180.0
	WidthStep             = 0.25
	SmoothnessFactor      = 1.25
)

// Session is the editing state of one road. It is not safe for concurrent use.
type Session struct {
	path     *road.Path
	selected road.PointID
	mesh     *road.MeshData
	changed  bool
	log      *zap.Logger

	AppendDistance float32
	MoveStep       float32
	TurnStep       float32 // radians
}

// NewSession creates a session around a fresh path and selects its seed point.
func NewSession(settings road.Settings, origin math.Vec3, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		log:            log,
		AppendDistance: DefaultAppendDistance,
		MoveStep:       DefaultMoveStep,
		TurnStep:       DefaultTurnStep,
	}

	p, err := road.New(settings,
		road.WithLogger(log.Named("road")),
		road.WithOrigin(origin),
		road.OnRebuild(s.onRebuild),
	)
	if err != nil {
		return nil, err
	}
	s.path = p
	s.selected = p.Head()
	s.onRebuild(p.BuildMesh())
	return s, nil
}

// FromPoints creates a session whose path runs through points, given in the
// path's local frame, in order. Orientations are chosen by AddControlPoint.
// An empty list keeps the seed point.
func FromPoints(settings road.Settings, origin math.Vec3, points []math.Vec3, log *zap.Logger) (*Session, error) {
	s, err := NewSession(settings, origin, log)
	if err != nil {
		return nil, err
	}
	p := s.path
	for i, pos := range points {
		if i == 0 {
			if err := p.SetPosition(p.Head(), pos); err != nil {
				return nil, err
			}
			continue
		}
		p.AddControlPoint(pos)
	}
	s.selected = p.Tail()
	s.onRebuild(p.BuildMesh())
	return s, nil
}

// Path returns the edited path.
func (s *Session) Path() *road.Path {
	return s.path
}

// Selected returns the selected point, or road.NoPoint.
func (s *Session) Selected() road.PointID {
	return s.selected
}

// Select changes the selection.
func (s *Session) Select(id road.PointID) error {
	if _, ok := s.path.Point(id); !ok {
		return fmt.Errorf("%w: %d", road.ErrUnknownPoint, id)
	}
	s.selected = id
	s.changed = true
	return nil
}

// Mesh returns the mesh from the latest edit.
func (s *Session) Mesh() *road.MeshData {
	return s.mesh
}

// TakeChanged reports whether the mesh or selection changed since the last
// call, and resets the flag.
func (s *Session) TakeChanged() bool {
	c := s.changed
	s.changed = false
	return c
}

// Guides returns the overlay for the current path and selection.
func (s *Session) Guides(steps int) []debug.LineVertex {
	return debug.Guides(s.path, steps, s.selected)
}

func (s *Session) onRebuild(mesh *road.MeshData) {
	s.mesh = mesh
	s.changed = true
}

// AppendAt adds a point at a world position after the tail and selects it.
func (s *Session) AppendAt(world math.Vec3) road.PointID {
	id := s.path.AddControlPointWorld(world)
	s.selected = id
	s.log.Debug("appended", zap.Uint64("id", uint64(id)))
	return id
}

// InsertOnEdge inserts a point at a world position on the edge between two
// neighbours, typically found with picking, and selects it.
func (s *Session) InsertOnEdge(from, to road.PointID, world math.Vec3) (road.PointID, error) {
	id, err := s.path.InsertControlPointWorld(from, to, world)
	if err != nil {
		return road.NoPoint, err
	}
	s.selected = id
	return id, nil
}

// SelectNearest selects the point closest to a world position.
func (s *Session) SelectNearest(world math.Vec3) road.PointID {
	local := world.Sub(s.path.Origin())
	best, bestDist := road.NoPoint, float32(0)
	for _, cp := range s.path.Points() {
		d := cp.Position.Distance(local)
		if best == road.NoPoint || d < bestDist {
			best, bestDist = cp.ID, d
		}
	}
	if best != road.NoPoint {
		s.selected = best
		s.changed = true
	}
	return best
}

func (s *Session) selectedPoint() (road.ControlPoint, error) {
	cp, ok := s.path.Point(s.selected)
	if !ok {
		return road.ControlPoint{}, ErrNoSelection
	}
	return cp, nil
}
