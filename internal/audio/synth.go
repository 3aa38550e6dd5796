package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves. The frequency glides linearly
// from freq to endFreq over the duration; equal values give a steady tone.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a steady tone.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates a tone gliding from start to end Hz.
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(start*1000 + end))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress

		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain.
// math.Log2(0) is -Inf, so 0 volume is made silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Impact sound shape
const (
	impactDuration = 180 * time.Millisecond
	impactAttack   = 4 * time.Millisecond
	impactRelease  = 120 * time.Millisecond
)

// NewImpactSound generates the bounce sound: a falling square "boing" over
// a sine body. Playback rate changes turn it into the wall, paddle and
// brick variants.
func NewImpactSound(rate beep.SampleRate) beep.Streamer {
	body := NewEnvelope(NewSweep(660, 220, impactDuration, WaveSine, rate), impactDuration, impactAttack, impactRelease, rate)
	edge := NewEnvelope(NewSweep(1320, 440, impactDuration, WaveSquare, rate), impactDuration, impactAttack, impactRelease/2, rate)

	return beep.Mix(
		newVolume(body, 0.7),
		newVolume(edge, 0.15),
	)
}

// Loop track shape: one bar of four beats
const (
	loopBeat  = 500 * time.Millisecond
	loopBeats = 4
)

// NewLoopTrack generates one bar of the guidance track: a kick on every
// beat, an off-beat hat and a bass line. The bar loops seamlessly, and its
// tempo is what the player hears change with the playback rate.
func NewLoopTrack(rate beep.SampleRate) beep.Streamer {
	notes := []float64{55, 55, 65.41, 49} // A1 A1 C2 G1

	beats := make([]beep.Streamer, 0, loopBeats)
	for i := range loopBeats {
		half := loopBeat / 2

		kick := NewEnvelope(NewSweep(150, 45, 120*time.Millisecond, WaveSine, rate), 120*time.Millisecond, time.Millisecond, 100*time.Millisecond, rate)
		hat := NewEnvelope(NewOscillator(0, 40*time.Millisecond, WaveNoise, rate), 40*time.Millisecond, time.Millisecond, 35*time.Millisecond, rate)
		bass := NewEnvelope(NewOscillator(notes[i], loopBeat, WaveSaw, rate), loopBeat, 5*time.Millisecond, 60*time.Millisecond, rate)

		beats = append(beats, beep.Mix(
			newVolume(beep.Seq(kick, beep.Silence(rate.N(loopBeat-120*time.Millisecond))), 0.6),
			newVolume(beep.Seq(beep.Silence(rate.N(half)), hat, beep.Silence(rate.N(half-40*time.Millisecond))), 0.12),
			newVolume(bass, 0.2),
		))
	}
	return beep.Seq(beats...)
}

// render plays s to the end into a buffer.
func render(s beep.Streamer, rate beep.SampleRate) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf
}
