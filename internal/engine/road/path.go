package road

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/roadspline/pkg/math"
)

// Path is an ordered, doubly linked sequence of control points.
//
// Points live in an arena keyed by PointID, so inserting or removing one
// point never invalidates the handles or links of the others. A Path always
// holds at least one point.
//
// Path is not safe for concurrent use.
type Path struct {
	settings Settings
	origin   math.Vec3

	points map[PointID]*ControlPoint
	head   PointID
	tail   PointID
	lastID PointID

	log       *zap.Logger
	onRebuild func(*MeshData)
}

// Option configures a Path.
type Option func(*Path)

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *zap.Logger) Option {
	return func(p *Path) {
		if l != nil {
			p.log = l
		}
	}
}

// WithOrigin sets the world position of the path's local frame.
func WithOrigin(origin math.Vec3) Option {
	return func(p *Path) {
		p.origin = origin
	}
}

// OnRebuild registers fn to receive a fresh mesh after every edit.
func OnRebuild(fn func(*MeshData)) Option {
	return func(p *Path) {
		p.onRebuild = fn
	}
}

// New creates a path holding a single point at the local origin, facing +X.
func New(settings Settings, opts ...Option) (*Path, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	p := &Path{
		settings: settings,
		points:   make(map[PointID]*ControlPoint),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	seed := p.newPoint(math.Vec3{}, math.QuatLookRotation(math.Right, math.Up))
	p.head = seed.ID
	p.tail = seed.ID
	return p, nil
}

func (p *Path) newPoint(pos math.Vec3, orientation math.Quat) *ControlPoint {
	p.lastID++
	cp := &ControlPoint{
		ID:                 p.lastID,
		Position:           pos,
		Orientation:        orientation,
		ForwardTangent:     pos,
		BackwardTangent:    pos,
		SegmentsToNext:     1,
		SegmentsToPrevious: 1,
	}
	p.points[cp.ID] = cp
	return cp
}

// Len returns the number of control points.
func (p *Path) Len() int {
	return len(p.points)
}

// Head returns the first point of the path.
func (p *Path) Head() PointID {
	return p.head
}

// Tail returns the last point of the path.
func (p *Path) Tail() PointID {
	return p.tail
}

// Settings returns the current settings.
func (p *Path) Settings() Settings {
	return p.settings
}

// SetSettings replaces the settings. Every point is re-solved on the next
// build since segment counts depend on Smoothness.
func (p *Path) SetSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	p.settings = s
	for _, cp := range p.points {
		cp.dirty = true
	}
	p.rebuild()
	return nil
}

// Origin returns the world position of the local frame.
func (p *Path) Origin() math.Vec3 {
	return p.origin
}

// SetOrigin moves the local frame. Local positions are unchanged.
func (p *Path) SetOrigin(origin math.Vec3) {
	p.origin = origin
}

// Point returns a copy of the control point with the given ID.
func (p *Path) Point(id PointID) (ControlPoint, bool) {
	cp, ok := p.points[id]
	if !ok {
		return ControlPoint{}, false
	}
	return *cp, true
}

// Points returns copies of all control points in path order.
func (p *Path) Points() []ControlPoint {
	out := make([]ControlPoint, 0, len(p.points))
	for _, cp := range p.ordered() {
		out = append(out, *cp)
	}
	return out
}

// ordered walks the links from head to tail.
func (p *Path) ordered() []*ControlPoint {
	out := make([]*ControlPoint, 0, len(p.points))
	for id := p.head; id != NoPoint; {
		cp := p.points[id]
		out = append(out, cp)
		id = cp.Next
	}
	return out
}

func (p *Path) lookup(id PointID) (*ControlPoint, error) {
	cp, ok := p.points[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPoint, id)
	}
	return cp, nil
}

// AddControlPoint appends a point after the tail. Its orientation faces away
// from the previous tail. position is in the local frame.
func (p *Path) AddControlPoint(position math.Vec3) PointID {
	last := p.points[p.tail]

	offset := position.Sub(last.Position)
	orientation := last.Orientation
	if offset.Length() > 0 {
		orientation = math.QuatLookRotation(offset, math.Up)
	} else {
		p.log.Warn("control point coincides with the tail", zap.Uint64("tail", uint64(last.ID)))
	}

	cp := p.newPoint(position, orientation)
	cp.Previous = last.ID
	last.Next = cp.ID
	p.tail = cp.ID

	p.resolve(cp)
	p.log.Debug("control point added",
		zap.Uint64("id", uint64(cp.ID)),
		zap.Int("points", p.Len()),
	)
	p.rebuild()
	return cp.ID
}

// AddControlPointWorld is AddControlPoint for a world-space position.
func (p *Path) AddControlPointWorld(position math.Vec3) PointID {
	return p.AddControlPoint(position.Sub(p.origin))
}

// InsertControlPoint places a new point between two linked neighbours,
// given in either order. The orientation is halfway between theirs.
func (p *Path) InsertControlPoint(a, b PointID, position math.Vec3) (PointID, error) {
	pa, err := p.lookup(a)
	if err != nil {
		return NoPoint, err
	}
	pb, err := p.lookup(b)
	if err != nil {
		return NoPoint, err
	}

	first, second := pa, pb
	switch {
	case pa.Next == pb.ID:
	case pb.Next == pa.ID:
		first, second = pb, pa
	default:
		return NoPoint, fmt.Errorf("%w: %d and %d", ErrNotLinked, a, b)
	}

	cp := p.newPoint(position, first.Orientation.Slerp(second.Orientation, 0.5))
	cp.Previous = first.ID
	cp.Next = second.ID
	first.Next = cp.ID
	second.Previous = cp.ID

	p.resolve(cp)
	p.log.Debug("control point inserted",
		zap.Uint64("id", uint64(cp.ID)),
		zap.Uint64("after", uint64(first.ID)),
		zap.Uint64("before", uint64(second.ID)),
	)
	p.rebuild()
	return cp.ID, nil
}

// InsertControlPointWorld is InsertControlPoint for a world-space position.
func (p *Path) InsertControlPointWorld(a, b PointID, position math.Vec3) (PointID, error) {
	return p.InsertControlPoint(a, b, position.Sub(p.origin))
}

// RemoveControlPoint unlinks and deletes a point. Its neighbours are joined
// directly and the new edge is solved before returning.
func (p *Path) RemoveControlPoint(id PointID) error {
	cp, err := p.lookup(id)
	if err != nil {
		return err
	}
	if p.Len() == 1 {
		return ErrLastPoint
	}

	prev := p.points[cp.Previous]
	next := p.points[cp.Next]

	switch {
	case prev != nil && next != nil:
		prev.Next = next.ID
		next.Previous = prev.ID
		p.solveEdge(prev, next)
	case prev != nil:
		prev.Next = NoPoint
		prev.ForwardTangent = prev.Position
		prev.SegmentsToNext = 1
		p.tail = prev.ID
	case next != nil:
		next.Previous = NoPoint
		next.BackwardTangent = next.Position
		next.SegmentsToPrevious = 1
		p.head = next.ID
	}
	delete(p.points, id)

	p.log.Debug("control point removed",
		zap.Uint64("id", uint64(id)),
		zap.Int("points", p.Len()),
	)
	p.rebuild()
	return nil
}

// SetPosition moves a point. Derived data is refreshed by UpdateControlPoint
// or lazily by the next build.
func (p *Path) SetPosition(id PointID, position math.Vec3) error {
	cp, err := p.lookup(id)
	if err != nil {
		return err
	}
	cp.Position = position
	cp.dirty = true
	p.rebuild()
	return nil
}

// SetOrientation rotates a point. See SetPosition.
func (p *Path) SetOrientation(id PointID, orientation math.Quat) error {
	cp, err := p.lookup(id)
	if err != nil {
		return err
	}
	cp.Orientation = orientation.Normalize()
	cp.dirty = true
	p.rebuild()
	return nil
}

// UpdateControlPoint recomputes tangents and segment counts on both edges
// touching the point. Calling it again without an edit changes nothing.
func (p *Path) UpdateControlPoint(id PointID) error {
	cp, err := p.lookup(id)
	if err != nil {
		return err
	}
	p.resolve(cp)
	p.rebuild()
	return nil
}

// Segments returns the Bézier curve of every edge in path order.
func (p *Path) Segments() []Segment {
	p.resolveDirty()

	ordered := p.ordered()
	if len(ordered) < 2 {
		return nil
	}
	out := make([]Segment, 0, len(ordered)-1)
	for _, a := range ordered[:len(ordered)-1] {
		b := p.points[a.Next]
		out = append(out, Segment{
			From:  a.ID,
			To:    b.ID,
			Curve: edgeCurve(a, b),
			Steps: a.SegmentsToNext + b.SegmentsToPrevious,
		})
	}
	return out
}

// Resample returns the dense sample sequence for the current points.
func (p *Path) Resample() []Sample {
	p.resolveDirty()
	return resample(p.ordered(), p.points)
}

// BuildMesh runs the full resample and extrusion pipeline.
func (p *Path) BuildMesh() *MeshData {
	samples := p.Resample()
	mesh := BuildMesh(samples, p.settings)
	p.log.Debug("mesh built",
		zap.Int("points", p.Len()),
		zap.Int("samples", len(samples)),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
	)
	return mesh
}

func (p *Path) rebuild() {
	if p.onRebuild != nil {
		p.onRebuild(p.BuildMesh())
	}
}
