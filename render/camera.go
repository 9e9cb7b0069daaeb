package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sky-dodger/parameter"
	"github.com/lixenwraith/sky-dodger/physics"
	"github.com/lixenwraith/sky-dodger/vmath"
)

// CellAspect is the height to width ratio of a terminal cell
const CellAspect = 2.0

// Camera is a perspective chase camera projecting world points onto a cell grid
type Camera struct {
	Eye    vmath.Vec3F
	Target vmath.Vec3F
	FOV    float64 // Vertical, radians
	Near   float64
	Far    float64

	Width, Height int
}

// NewCamera places the camera at its start position above and behind the origin
func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:    parameter.CameraFOV,
		Near:   parameter.CameraNear,
		Far:    parameter.CameraFar,
		Width:  width,
		Height: height,
	}
	c.Reset()
	return c
}

// Reset snaps the camera back to its start position
func (c *Camera) Reset() {
	c.Eye = vmath.Vec3F{X: 0, Y: 50, Z: 50}
	c.Target = vmath.Vec3F{X: 0, Y: 50, Z: 0}
}

// Resize updates the viewport in cells
func (c *Camera) Resize(width, height int) {
	c.Width, c.Height = width, height
}

// Follow eases the camera toward its chase position for the given pose
// The offset turns with the aircraft, the look target stays a fixed distance ahead in world space
func (c *Camera) Follow(pose physics.Pose) {
	offset := vmath.RotateEuler(vmath.Vec3F{X: parameter.CameraOffsetX, Y: parameter.CameraOffsetY, Z: parameter.CameraOffsetZ}, pose.Orientation)
	eye := vmath.V3FAdd(pose.Position, offset)
	target := vmath.V3FAdd(pose.Position, vmath.Vec3F{X: parameter.CameraLookX, Y: parameter.CameraLookY, Z: parameter.CameraLookZ})

	c.Eye = vmath.V3FLerp(c.Eye, eye, parameter.CameraLerp)
	c.Target = vmath.V3FLerp(c.Target, target, parameter.CameraLerp)
}

// Projection is a camera's combined view-projection for one frame
type Projection struct {
	m             mgl64.Mat4
	near, far     float64
	width, height int
	valid         bool
}

// Projection builds the frame's matrix, invalid for an empty viewport or a degenerate look axis
func (c *Camera) Projection() Projection {
	p := Projection{near: c.Near, far: c.Far, width: c.Width, height: c.Height}
	if c.Width <= 0 || c.Height <= 0 {
		return p
	}

	eye := mgl64.Vec3{c.Eye.X, c.Eye.Y, c.Eye.Z}
	target := mgl64.Vec3{c.Target.X, c.Target.Y, c.Target.Z}
	if eye.ApproxEqual(target) {
		return p
	}

	aspect := float64(c.Width) / (float64(c.Height) * CellAspect)
	view := mgl64.LookAtV(eye, target, mgl64.Vec3{0, 1, 0})
	proj := mgl64.Perspective(c.FOV, aspect, c.Near, c.Far)
	p.m = proj.Mul4(view)
	p.valid = true
	return p
}

// Project maps a world point to a cell position
// depth is the view-space distance along the look axis, ok is false outside [Near, Far]
// x and y may fall outside the viewport, callers clip
func (p Projection) Project(world vmath.Vec3F) (x, y int, depth float64, ok bool) {
	if !p.valid || !vmath.V3FIsFinite(world) {
		return 0, 0, 0, false
	}

	clip := p.m.Mul4x1(mgl64.Vec4{world.X, world.Y, world.Z, 1})
	depth = clip.W()
	if math.IsNaN(depth) || depth < p.near || depth > p.far {
		return 0, 0, depth, false
	}

	ndcX := clip.X() / depth
	ndcY := clip.Y() / depth
	x = int(math.Floor((ndcX + 1) * 0.5 * float64(p.width)))
	y = int(math.Floor((1 - ndcY) * 0.5 * float64(p.height)))
	return x, y, depth, true
}

// Project is a one-off projection, use Projection when drawing many points
func (c *Camera) Project(world vmath.Vec3F) (x, y int, depth float64, ok bool) {
	return c.Projection().Project(world)
}

// InView reports whether a cell lies inside the viewport
func (c *Camera) InView(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}
