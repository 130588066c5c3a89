// Package pulse synthesizes the clicks a rotary dial makes while it returns:
// the line is opened and closed once per pulse, ten pulses per second, and
// the dialed digit is the number of pulses (ten for zero).
package pulse

import "math"

const (
	// DefaultSampleRate is the rate hosts open their audio output at.
	DefaultSampleRate = 44100

	PulsesPerSecond = 10

	// breakShare is the fraction of each pulse period the loop is open.
	breakShare = 0.6

	clickSeconds = 0.006
	clickHz      = 1800.0
	breakAmp     = 12000.0
	makeAmp      = 7000.0
	decayPerSec  = 900.0
)

// Count returns how many pulses digit sends, or 0 for anything but '0'-'9'.
func Count(digit rune) int {
	switch {
	case digit == '0':
		return 10
	case digit >= '1' && digit <= '9':
		return int(digit - '0')
	default:
		return 0
	}
}

// PeriodSamples is the length of one pulse period at sampleRate.
func PeriodSamples(sampleRate int) int {
	if sampleRate <= 0 {
		return 0
	}
	return sampleRate / PulsesPerSecond
}

// Train returns the mono PCM of digit's pulse train. It is deterministic.
func Train(digit rune, sampleRate int) []int16 {
	n := Count(digit)
	period := PeriodSamples(sampleRate)
	if n == 0 || period == 0 {
		return nil
	}
	out := make([]int16, n*period)
	breakAt := int(float64(period) * breakShare)
	for p := 0; p < n; p++ {
		base := p * period
		click(out[base:base+period], 0, sampleRate, breakAmp)
		click(out[base:base+period], breakAt, sampleRate, makeAmp)
	}
	return out
}

// click adds a short decaying tone burst at off.
func click(dst []int16, off, sampleRate int, amp float64) {
	length := int(clickSeconds * float64(sampleRate))
	for i := 0; i < length && off+i < len(dst); i++ {
		t := float64(i) / float64(sampleRate)
		v := amp * math.Exp(-decayPerSec*t) * math.Sin(2*math.Pi*clickHz*t)
		dst[off+i] = saturate(float64(dst[off+i]) + v)
	}
}

func saturate(v float64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
