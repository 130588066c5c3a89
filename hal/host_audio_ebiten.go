//go:build cgo

package hal

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// maxQueuedSeconds bounds how much audio Play will buffer.
const maxQueuedSeconds = 5

// hostAudio plays queued mono clips through Ebiten's audio package. The
// player runs continuously and reads silence while the queue is empty.
type hostAudio struct {
	mu sync.Mutex

	ctx        *audio.Context
	player     *audio.Player
	sampleRate uint32

	queue   [][]int16
	pos     int
	pending int

	closed bool
}

func newHostAudio() *hostAudio {
	return &hostAudio{}
}

func (a *hostAudio) Start(sampleRate uint32) error {
	if sampleRate == 0 {
		return errors.New("host audio: invalid sample rate")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ctx == nil {
		// Ebiten allows one context per process.
		if c := audio.CurrentContext(); c != nil {
			a.ctx = c
		} else {
			a.ctx = audio.NewContext(int(sampleRate))
		}
	}
	if a.ctx.SampleRate() != int(sampleRate) {
		return errors.New("host audio: ebiten audio context sample rate is fixed")
	}
	a.sampleRate = sampleRate

	if a.player != nil {
		_ = a.player.Close()
		a.player = nil
	}
	a.queue = nil
	a.pos, a.pending = 0, 0
	a.closed = false

	p, err := a.ctx.NewPlayer(&hostAudioReader{a: a})
	if err != nil {
		return err
	}
	p.SetBufferSize(50 * time.Millisecond)
	p.Play()
	a.player = p
	return nil
}

func (a *hostAudio) Play(pcm []int16) bool {
	if len(pcm) == 0 {
		return true
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.player == nil || a.closed {
		return false
	}
	if a.pending+len(pcm) > maxQueuedSeconds*int(a.sampleRate) {
		return false
	}
	a.queue = append(a.queue, pcm)
	a.pending += len(pcm)
	return true
}

func (a *hostAudio) Stop() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	a.queue = nil
	a.pos, a.pending = 0, 0
	p := a.player
	a.player = nil
	a.mu.Unlock()

	if p != nil {
		return p.Close()
	}
	return nil
}

// next pops one sample, or 0 when nothing is queued.
func (a *hostAudio) next() int16 {
	for len(a.queue) > 0 {
		clip := a.queue[0]
		if a.pos < len(clip) {
			s := clip[a.pos]
			a.pos++
			a.pending--
			return s
		}
		a.queue[0] = nil
		a.queue = a.queue[1:]
		a.pos = 0
	}
	return 0
}

type hostAudioReader struct {
	a *hostAudio
}

func (r *hostAudioReader) Read(p []byte) (int, error) {
	a := r.a
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return 0, io.EOF
	}
	// Ebiten audio expects 16-bit little-endian stereo.
	n := len(p) &^ 3
	for i := 0; i < n; i += 4 {
		s := a.next()
		p[i+0] = byte(s)
		p[i+1] = byte(s >> 8)
		p[i+2] = byte(s)
		p[i+3] = byte(s >> 8)
	}
	return n, nil
}
