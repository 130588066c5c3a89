package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Default host framebuffer: a 320px dial under a readout line and above a
// clear button.
const (
	DefaultWidth  = 320
	DefaultHeight = 400
)

// Options configures a host HAL.
type Options struct {
	Width, Height int
	// Log receives log lines. Nil means stdout.
	Log io.Writer
	// Audio selects the ebiten audio backend. Without it Audio() discards
	// clips.
	Audio bool
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ptr    *hostPointer
	t      *hostTime
	aud    Audio
}

// New returns a host HAL implementation.
func New(opts Options) HAL {
	return newHost(opts)
}

func newHost(opts Options) *hostHAL {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	w := opts.Log
	if w == nil {
		w = os.Stdout
	}
	var aud Audio = nullAudio{}
	if opts.Audio {
		aud = newHostAudio()
	}
	return &hostHAL{
		logger: &hostLogger{w: w},
		fb:     newHostFramebuffer(opts.Width, opts.Height),
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
		t:      newHostTime(),
		aud:    aud,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) Audio() Audio     { return h.aud }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// nullAudio accepts and drops every clip.
type nullAudio struct{}

func (nullAudio) Start(uint32) error { return nil }
func (nullAudio) Play([]int16) bool  { return false }
func (nullAudio) Stop() error        { return nil }
