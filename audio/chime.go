package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	baseFrequency = 440.0
	chimeLength   = 180 * time.Millisecond
)

// Chime plays a short tone whenever rows are cleared; more rows give a
// higher pitch. A Chime that failed to initialize stays silent.
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewChime() *Chime {
	return &Chime{mixer: &beep.Mixer{}}
}

func (chime *Chime) Initialize() error {
	chime.mu.Lock()
	defer chime.mu.Unlock()

	if chime.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(chime.mixer)
	chime.initialized = true
	return nil
}

// LinesCleared matches game.GameConfig.OnLinesCleared
func (chime *Chime) LinesCleared(numCleared int) {
	chime.mu.Lock()
	defer chime.mu.Unlock()

	if !chime.initialized || numCleared <= 0 {
		return
	}

	speaker.Lock()
	chime.mixer.Add(beep.Take(sampleRate.N(chimeLength), newTone(sampleRate, Frequency(numCleared))))
	speaker.Unlock()
}

func (chime *Chime) Close() {
	chime.mu.Lock()
	defer chime.mu.Unlock()

	if !chime.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	chime.initialized = false
}

// Frequency returns the pitch for a clear of numCleared rows: a major third
// up for every extra row
func Frequency(numCleared int) float64 {
	return baseFrequency * math.Pow(2, float64(4*(numCleared-1))/12)
}

// tone is a sine wave with a linear fade out
type tone struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newTone(sr beep.SampleRate, freq float64) *tone {
	return &tone{sr: sr, freq: freq}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	total := float64(t.sr.N(chimeLength))
	for i := range samples {
		at := float64(t.pos) / float64(t.sr)
		envelope := math.Max(0, 1-float64(t.pos)/total)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*t.freq*at)

		samples[i][0] = sample
		samples[i][1] = sample
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}
