package speech

import (
	"sync"
	"time"

	"github.com/vovakirdan/echo-breakout/internal/breakout"
)

// DefaultCaptionTTL is how long a caption stays on screen.
const DefaultCaptionTTL = 3 * time.Second

// Captions remembers the last spoken phrase so the screen can show it.
// It is a breakout.Speaker; combine it with a voice through Tee.
type Captions struct {
	mu   sync.Mutex
	text string
	at   time.Time
	ttl  time.Duration
	now  func() time.Time
}

// NewCaptions creates a recorder whose captions expire after ttl.
func NewCaptions(ttl time.Duration) *Captions {
	return &Captions{ttl: ttl, now: time.Now}
}

// Speak records the phrase.
func (c *Captions) Speak(phrase string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = phrase
	c.at = c.now()
}

// Current returns the caption to display, or "" once it has expired.
func (c *Captions) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.text == "" || c.now().Sub(c.at) > c.ttl {
		return ""
	}
	return c.text
}

type tee []breakout.Speaker

func (t tee) Speak(phrase string) {
	for _, s := range t {
		s.Speak(phrase)
	}
}

// Tee returns a speaker that forwards every phrase to all of speakers.
func Tee(speakers ...breakout.Speaker) breakout.Speaker {
	return tee(speakers)
}
