package breakout

// Advance runs one tick of the game. It is a no-op unless the game is
// Running.
//
// Order: paddle (integrate, decay, clamp), effective speed, previous
// position snapshot, integration, window collision, paddle collision,
// brick collision, win check. Reaching the bottom ends the tick as Lost
// before the paddle and bricks are considered.
func Advance(s State, r Rules) (State, []Event) {
	if s.Phase != PhaseRunning {
		return s, nil
	}

	var events []Event
	emit := func(kind EventKind, brick int) {
		events = append(events, Event{Kind: kind, At: s.Ball.Pos, Brick: brick, Remaining: s.Remaining()})
	}

	s.Tick++
	s.Paddle = s.Paddle.Step(r.Inertia)

	speed := r.EffectiveSpeed(s.Ball)
	s.Ball.Prev = s.Ball.Pos
	s.Ball.Pos = s.Ball.Pos.Add(s.Ball.Dir.Scale(speed))

	var hit WallHit
	s.Ball, hit = CollideWindow(s.Ball, r.Bounds)
	if hit.Has(WallBottom) {
		s.Phase = PhaseLost
		emit(EventLost, -1)
		return s, events
	}
	if hit.Bounces() > 0 {
		emit(EventWallBounce, -1)
	}

	var bounced bool
	if s.Ball, bounced = CollidePaddle(s.Ball, s.Paddle, r.HitBand); bounced {
		emit(EventPaddleBounce, -1)
	}

	var index int
	s.Ball, s.Bricks, index = CollideBricks(s.Ball, s.Bricks, r.Bricks.Width, r.Bricks.Height)
	if index >= 0 {
		s.Destroyed++
		emit(EventBrickDestroyed, index)
	}

	if s.Destroyed == len(s.Bricks) {
		s.Phase = PhaseWon
		emit(EventWon, -1)
	}

	return s, events
}
