// Package starfield simulates the decorative background: a box emitter
// below the scene pushes short-lived particles upward, and an orbit camera
// projects them into terminal cells.
package starfield

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/echo-breakout/internal/config"
	"github.com/vovakirdan/echo-breakout/internal/core"
)

// Vec3 is a point or direction in scene space (Y up).
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

func (v Vec3) dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) length() float64 {
	return math.Sqrt(v.dot(v))
}

func (v Vec3) normalize() Vec3 {
	return v.scale(1 / v.length())
}

func (v Vec3) cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func between(r *rand.Rand, a, b float64) float64 {
	return lerp(a, b, r.Float64())
}

// Particle is one star.
type Particle struct {
	Pos        Vec3
	Vel        Vec3
	Age, Life  float64 // seconds
	Size       float64 // 0.5 - 1
	Brightness float64 // 0 (black) - 1 (white) at birth
}

// Glow is the particle's current brightness: its birth brightness fading
// out over the second half of its life.
func (p Particle) Glow() float64 {
	rest := 1 - p.Age/p.Life
	return p.Brightness * math.Min(1, 2*rest)
}

var (
	emitterOrigin = Vec3{0, -2, 0}
	emitDirection = Vec3{0, 1, 0}
)

// Field is the particle system. It is not safe for concurrent use.
type Field struct {
	cfg       config.StarfieldConfig
	particles []Particle
	rng       *rand.Rand
	pending   float64 // fractional particles owed by the emitter
	camera    Camera
}

// New creates an empty field.
func New(cfg config.StarfieldConfig, seed int64) *Field {
	return &Field{
		cfg:       cfg,
		particles: make([]Particle, 0, cfg.Capacity),
		rng:       rand.New(rand.NewSource(seed)),
		camera:    DefaultCamera(),
	}
}

// Len returns the number of live particles.
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles returns the live particles. The slice is reused by Update.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Update advances the simulation by dt seconds: ages and moves the live
// particles, drops the expired ones, then emits new ones at the emit rate
// while there is capacity.
func (f *Field) Update(dt float64) {
	gravity := Vec3{0, f.cfg.Gravity, 0}

	live := f.particles[:0]
	for _, p := range f.particles {
		p.Age += dt
		if p.Age >= p.Life {
			continue
		}
		p.Vel = p.Vel.add(gravity.scale(dt))
		p.Pos = p.Pos.add(p.Vel.scale(dt))
		live = append(live, p)
	}
	f.particles = live

	f.pending += f.cfg.EmitRate * dt
	for f.pending >= 1 {
		f.pending--
		if len(f.particles) >= f.cfg.Capacity {
			continue
		}
		f.particles = append(f.particles, f.spawn())
	}
}

func (f *Field) spawn() Particle {
	ext := f.cfg.EmitExtent
	offset := Vec3{between(f.rng, -ext, ext), 0, between(f.rng, -ext, ext)}

	return Particle{
		Pos:        emitterOrigin.add(offset),
		Vel:        emitDirection.scale(between(f.rng, f.cfg.MinPower, f.cfg.MaxPower)),
		Life:       between(f.rng, f.cfg.MinLife, f.cfg.MaxLife),
		Size:       between(f.rng, 0.5, 1),
		Brightness: f.rng.Float64(),
	}
}

// Camera is an orbit camera looking at Target.
type Camera struct {
	Alpha, Beta float64 // radians, around Y and from the Y axis
	Radius      float64
	Target      Vec3
	FOV         float64 // vertical field of view, radians
}

// DefaultCamera looks at the emitter from above and in front.
func DefaultCamera() Camera {
	return Camera{Alpha: 3 * math.Pi / 2, Beta: math.Pi / 4, Radius: 20, FOV: 0.8}
}

// Position returns the camera's place in the scene.
func (c Camera) Position() Vec3 {
	return Vec3{
		X: c.Target.X + c.Radius*math.Cos(c.Alpha)*math.Sin(c.Beta),
		Y: c.Target.Y + c.Radius*math.Cos(c.Beta),
		Z: c.Target.Z + c.Radius*math.Sin(c.Alpha)*math.Sin(c.Beta),
	}
}

// basis returns the forward, right and up view axes.
func (c Camera) basis() (fwd, right, up Vec3) {
	fwd = c.Target.sub(c.Position()).normalize()
	right = Vec3{0, 1, 0}.cross(fwd).normalize()
	up = fwd.cross(right)
	return fwd, right, up
}

// Project maps a scene point to a cell on a w×h grid. Terminal cells are
// about twice as tall as they are wide, which the horizontal scale
// accounts for. ok is false for points behind the camera or off screen.
func (c Camera) Project(p Vec3, w, h int) (col, row int, ok bool) {
	fwd, right, up := c.basis()
	rel := p.sub(c.Position())

	z := rel.dot(fwd)
	if z <= 0.1 {
		return 0, 0, false
	}

	focal := 1 / math.Tan(c.FOV/2)
	aspect := float64(w) / (2 * float64(h))
	ndcX := rel.dot(right) * focal / (z * aspect)
	ndcY := rel.dot(up) * focal / z

	col = int(math.Floor((ndcX + 1) / 2 * float64(w)))
	row = int(math.Floor((1 - ndcY) / 2 * float64(h)))
	if col < 0 || col >= w || row < 0 || row >= h {
		return 0, 0, false
	}
	return col, row, true
}

// Draw plots the live particles into empty cells of s.
func (f *Field) Draw(s *core.Screen) {
	w, h := s.Width(), s.Height()
	for _, p := range f.particles {
		col, row, ok := f.camera.Project(p.Pos, w, h)
		if !ok || s.Get(col, row) != ' ' {
			continue
		}

		glow := p.Glow()
		switch {
		case glow > 0.66 && p.Size > 0.75:
			s.SetColored(col, row, '*', core.ColorStarBright)
		case glow > 0.33:
			s.SetColored(col, row, '+', core.ColorStarMid)
		case glow > 0.05:
			s.SetColored(col, row, '.', core.ColorStarDim)
		}
	}
}
