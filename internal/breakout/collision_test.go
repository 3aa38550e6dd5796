package breakout

import (
	"testing"

	"github.com/vovakirdan/echo-breakout/internal/core"
)

func TestCollideWindow(t *testing.T) {
	b := Bounds{MinX: 12, MinY: 12, MaxX: 1588, MaxY: 888}

	tests := []struct {
		name    string
		pos     core.Vec2
		dir     core.Vec2
		wantPos core.Vec2
		wantDir core.Vec2
		wantHit WallHit
	}{
		{"inside", core.Vec2{X: 800, Y: 400}, core.Vec2{X: 1, Y: -1}, core.Vec2{X: 800, Y: 400}, core.Vec2{X: 1, Y: -1}, 0},
		{"left", core.Vec2{X: 5, Y: 400}, core.Vec2{X: -1, Y: -1}, core.Vec2{X: 12, Y: 400}, core.Vec2{X: 1, Y: -1}, WallLeft},
		{"right", core.Vec2{X: 1590, Y: 400}, core.Vec2{X: 1, Y: 1}, core.Vec2{X: 1588, Y: 400}, core.Vec2{X: -1, Y: 1}, WallRight},
		{"top", core.Vec2{X: 800, Y: 3}, core.Vec2{X: 1, Y: -1}, core.Vec2{X: 800, Y: 12}, core.Vec2{X: 1, Y: 1}, WallTop},
		{"corner", core.Vec2{X: 2, Y: 2}, core.Vec2{X: -1, Y: -1}, core.Vec2{X: 12, Y: 12}, core.Vec2{X: 1, Y: 1}, WallLeft | WallTop},
		{"bottom", core.Vec2{X: 800, Y: 900}, core.Vec2{X: 0, Y: 1}, core.Vec2{X: 800, Y: 888}, core.Vec2{X: 0, Y: 1}, WallBottom},
		{"exactly bottom", core.Vec2{X: 800, Y: 888}, core.Vec2{X: 0, Y: 1}, core.Vec2{X: 800, Y: 888}, core.Vec2{X: 0, Y: 1}, WallBottom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball, hit := CollideWindow(Ball{Pos: tt.pos, Dir: tt.dir, Radius: 12}, b)
			if hit != tt.wantHit {
				t.Errorf("hit = %b, want %b", hit, tt.wantHit)
			}
			if ball.Pos != tt.wantPos {
				t.Errorf("pos = %v, want %v", ball.Pos, tt.wantPos)
			}
			if ball.Dir != tt.wantDir {
				t.Errorf("dir = %v, want %v", ball.Dir, tt.wantDir)
			}
		})
	}
}

func TestWallHitBounces(t *testing.T) {
	if n := (WallLeft | WallTop).Bounces(); n != 2 {
		t.Errorf("expected 2 bounces, got %d", n)
	}
	if n := WallBottom.Bounces(); n != 0 {
		t.Errorf("bottom is not a bounce, got %d", n)
	}
}

func TestCollidePaddleCenter(t *testing.T) {
	p := Paddle{X: 725, Y: 858, Width: 150}
	ball := Ball{Pos: core.Vec2{X: 800, Y: 846}, Prev: core.Vec2{X: 800, Y: 842}, Dir: core.Vec2{X: 0.3, Y: 1}, Radius: 12}

	got, hit := CollidePaddle(ball, p, 4)
	if !hit {
		t.Fatal("expected a paddle hit at depth 0")
	}
	if got.Pos != ball.Prev {
		t.Errorf("ball should revert to %v, got %v", ball.Prev, got.Pos)
	}
	if !almostEqual(got.Dir.X, 0) || !almostEqual(got.Dir.Y, -1) {
		t.Errorf("center hit should go straight up, got %v", got.Dir)
	}
}

func TestCollidePaddleDepthBand(t *testing.T) {
	p := Paddle{X: 725, Y: 858, Width: 150}

	tests := []struct {
		y      float64
		expect bool
	}{
		{845, false}, // depth -1
		{846, true},  // depth 0
		{850, true},  // depth 4
		{851, false}, // depth 5
	}

	for _, tt := range tests {
		ball := Ball{Pos: core.Vec2{X: 800, Y: tt.y}, Dir: core.Vec2{X: 0, Y: 1}, Radius: 12}
		if _, hit := CollidePaddle(ball, p, 4); hit != tt.expect {
			t.Errorf("y=%v: hit = %v, want %v", tt.y, hit, tt.expect)
		}
	}
}

func TestCollidePaddleHorizontalOverlap(t *testing.T) {
	p := Paddle{X: 725, Y: 858, Width: 150}

	// Ball box just touches the left end of the paddle
	ball := Ball{Pos: core.Vec2{X: 713, Y: 846}, Dir: core.Vec2{X: 0, Y: 1}, Radius: 12}
	if _, hit := CollidePaddle(ball, p, 4); !hit {
		t.Error("edge contact should count as a hit")
	}

	ball.Pos.X = 712
	if _, hit := CollidePaddle(ball, p, 4); hit {
		t.Error("ball left of the paddle should miss")
	}
}

func TestCollidePaddleUnitDirection(t *testing.T) {
	p := Paddle{X: 725, Y: 858, Width: 150}

	for x := 715.0; x <= 885; x += 17 {
		ball := Ball{Pos: core.Vec2{X: x, Y: 848}, Prev: core.Vec2{X: x, Y: 844}, Dir: core.Vec2{X: 0.5, Y: 1}, Radius: 12}
		got, hit := CollidePaddle(ball, p, 4)
		if !hit {
			t.Fatalf("x=%v: expected hit", x)
		}
		if l := got.Dir.Len(); !almostEqual(l, 1) {
			t.Errorf("x=%v: direction length = %v, want 1", x, l)
		}
		if got.Dir.Y >= 0 {
			t.Errorf("x=%v: ball should leave upwards, dir %v", x, got.Dir)
		}
	}
}

func TestCollidePaddleMonotonic(t *testing.T) {
	p := Paddle{X: 725, Y: 858, Width: 150}

	prev := -2.0
	for x := 713.0; x <= 887; x += 5 {
		ball := Ball{Pos: core.Vec2{X: x, Y: 848}, Prev: core.Vec2{X: x, Y: 844}, Dir: core.Vec2{X: 0, Y: 1}, Radius: 12}
		got, hit := CollidePaddle(ball, p, 4)
		if !hit {
			t.Fatalf("x=%v: expected hit", x)
		}
		if got.Dir.X <= prev {
			t.Errorf("x=%v: dir.X %v not greater than %v", x, got.Dir.X, prev)
		}
		prev = got.Dir.X
	}
}

func TestBounceX(t *testing.T) {
	p := Paddle{X: 100, Width: 200}

	tests := []struct {
		x, want float64
	}{
		{100, -1},
		{150, -0.5},
		{200, 0},
		{300, 1},
	}
	for _, tt := range tests {
		if got := BounceX(tt.x, p); !almostEqual(got, tt.want) {
			t.Errorf("BounceX(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestCollideBricksFirstHitWins(t *testing.T) {
	bricks := []Brick{
		{X: 20, Y: 210},
		{X: 215, Y: 210},
	}
	// Ball box straddles the gap between both bricks
	ball := Ball{
		Pos:    core.Vec2{X: 207.5, Y: 300},
		Prev:   core.Vec2{X: 207.5, Y: 304},
		Dir:    core.Vec2{X: 0.4, Y: -1},
		Radius: 12,
	}

	got, next, index := CollideBricks(ball, bricks, 180, 80)
	if index != 0 {
		t.Fatalf("expected the first brick to win, got %d", index)
	}
	if next[0].Alive() {
		t.Error("hit brick should be dead")
	}
	if !next[1].Alive() {
		t.Error("second brick must not be tested in the same tick")
	}
	if !bricks[0].Alive() {
		t.Error("input slice must not be modified")
	}
	if got.Pos != ball.Prev {
		t.Errorf("ball should revert to %v, got %v", ball.Prev, got.Pos)
	}
	if got.Dir.X != 0.4 || got.Dir.Y != 1 {
		t.Errorf("only the vertical direction should flip, got %v", got.Dir)
	}
}

func TestCollideBricksSkipsDead(t *testing.T) {
	bricks := []Brick{{X: 20, Y: 210, dead: true}}
	ball := Ball{Pos: core.Vec2{X: 100, Y: 250}, Dir: core.Vec2{X: 0, Y: -1}, Radius: 12}

	got, next, index := CollideBricks(ball, bricks, 180, 80)
	if index != -1 {
		t.Errorf("dead brick collided, index %d", index)
	}
	if got != ball {
		t.Error("ball should be untouched")
	}
	if &next[0] != &bricks[0] {
		t.Error("slice should be returned as is when nothing is hit")
	}
}
