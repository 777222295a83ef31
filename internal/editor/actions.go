package editor

import (
	"fmt"

	"github.com/Faultbox/roadspline/internal/engine/road"
	"github.com/Faultbox/roadspline/pkg/math"
)

// Action is a discrete edit bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionSelectNext
	ActionSelectPrevious
	ActionAppend
	ActionInsertAfter
	ActionRemove
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionYawLeft
	ActionYawRight
	ActionPitchUp
	ActionPitchDown
	ActionRollLeft
	ActionRollRight
	ActionWiden
	ActionNarrow
	ActionFiner
	ActionCoarser
)

var actionNames = map[Action]string{
	ActionNone:           "none",
	ActionSelectNext:     "select-next",
	ActionSelectPrevious: "select-previous",
	ActionAppend:         "append",
	ActionInsertAfter:    "insert-after",
	ActionRemove:         "remove",
	ActionMoveForward:    "move-forward",
	ActionMoveBack:       "move-back",
	ActionMoveLeft:       "move-left",
	ActionMoveRight:      "move-right",
	ActionMoveUp:         "move-up",
	ActionMoveDown:       "move-down",
	ActionYawLeft:        "yaw-left",
	ActionYawRight:       "yaw-right",
	ActionPitchUp:        "pitch-up",
	ActionPitchDown:      "pitch-down",
	ActionRollLeft:       "roll-left",
	ActionRollRight:      "roll-right",
	ActionWiden:          "widen",
	ActionNarrow:         "narrow",
	ActionFiner:          "finer",
	ActionCoarser:        "coarser",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Apply performs a on the selected point or the path settings.
func (s *Session) Apply(a Action) error {
	switch a {
	case ActionNone:
		return nil
	case ActionSelectNext, ActionSelectPrevious:
		return s.step(a == ActionSelectNext)
	case ActionAppend:
		return s.appendAhead()
	case ActionInsertAfter:
		return s.insertAfter()
	case ActionRemove:
		return s.removeSelected()
	case ActionMoveForward:
		return s.move(math.Forward)
	case ActionMoveBack:
		return s.move(math.Back)
	case ActionMoveLeft:
		return s.move(math.Left)
	case ActionMoveRight:
		return s.move(math.Right)
	case ActionMoveUp:
		return s.move(math.Up)
	case ActionMoveDown:
		return s.move(math.Down)
	case ActionYawLeft:
		return s.rotateWorld(math.Up, -s.TurnStep)
	case ActionYawRight:
		return s.rotateWorld(math.Up, s.TurnStep)
	case ActionPitchUp:
		return s.rotateLocal(math.Right, -s.TurnStep)
	case ActionPitchDown:
		return s.rotateLocal(math.Right, s.TurnStep)
	case ActionRollLeft:
		return s.rotateLocal(math.Forward, s.TurnStep)
	case ActionRollRight:
		return s.rotateLocal(math.Forward, -s.TurnStep)
	case ActionWiden, ActionNarrow, ActionFiner, ActionCoarser:
		return s.adjustSettings(a)
	}
	return fmt.Errorf("editor: unknown %v", a)
}

func (s *Session) step(forward bool) error {
	cp, err := s.selectedPoint()
	if err != nil {
		return err
	}
	next := cp.Previous
	if forward {
		next = cp.Next
	}
	if next == road.NoPoint {
		return nil
	}
	return s.Select(next)
}

// appendAhead adds a point AppendDistance beyond the tail, along its facing.
func (s *Session) appendAhead() error {
	tail, _ := s.path.Point(s.path.Tail())
	local := tail.Position.Add(tail.Orientation.Rotate(math.Forward).Scale(s.AppendDistance))
	s.AppendAt(local.Add(s.path.Origin()))
	return nil
}

// insertAfter splits the edge after the selection at its curve midpoint.
// On the tail it splits the edge before instead.
func (s *Session) insertAfter() error {
	cp, err := s.selectedPoint()
	if err != nil {
		return err
	}
	a, b := cp.ID, cp.Next
	if b == road.NoPoint {
		a, b = cp.Previous, cp.ID
	}
	if a == road.NoPoint {
		return fmt.Errorf("%w: path has a single point", road.ErrNotLinked)
	}

	for _, seg := range s.path.Segments() {
		if seg.From == a && seg.To == b {
			mid := seg.Curve.Eval(0.5)
			_, err := s.InsertOnEdge(a, b, mid.Add(s.path.Origin()))
			return err
		}
	}
	return fmt.Errorf("%w: %d and %d", road.ErrNotLinked, a, b)
}

func (s *Session) removeSelected() error {
	cp, err := s.selectedPoint()
	if err != nil {
		return err
	}
	if err := s.path.RemoveControlPoint(cp.ID); err != nil {
		return err
	}
	s.selected = cp.Previous
	if s.selected == road.NoPoint {
		s.selected = cp.Next
	}
	return nil
}

func (s *Session) move(dir math.Vec3) error {
	cp, err := s.selectedPoint()
	if err != nil {
		return err
	}
	return s.path.SetPosition(cp.ID, cp.Position.Add(dir.Scale(s.MoveStep)))
}

// rotateWorld turns the selection about a world axis.
func (s *Session) rotateWorld(axis math.Vec3, angle float32) error {
	cp, err := s.selectedPoint()
	if err != nil {
		return err
	}
	return s.path.SetOrientation(cp.ID, math.QuatFromAxisAngle(axis, angle).Mul(cp.Orientation))
}

// rotateLocal turns the selection about one of its own axes.
func (s *Session) rotateLocal(axis math.Vec3, angle float32) error {
	cp, err := s.selectedPoint()
	if err != nil {
		return err
	}
	return s.path.SetOrientation(cp.ID, cp.Orientation.Mul(math.QuatFromAxisAngle(axis, angle)))
}

func (s *Session) adjustSettings(a Action) error {
	st := s.path.Settings()
	switch a {
	case ActionWiden:
		st.Width += WidthStep
	case ActionNarrow:
		st.Width = max(0, st.Width-WidthStep)
	case ActionFiner:
		st.Smoothness = max(road.MinSmoothness, st.Smoothness/SmoothnessFactor)
	case ActionCoarser:
		st.Smoothness *= SmoothnessFactor
	}
	return s.path.SetSettings(st)
}
