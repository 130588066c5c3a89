//go:build !cgo

package hal

// Without cgo there is no audio backend; clips are dropped.
func newHostAudio() Audio { return nullAudio{} }
