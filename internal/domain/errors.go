package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrChannelNotFound = errors.New("channel not found")
	ErrTranscription   = errors.New("transcription failed")
	ErrSummarization   = errors.New("summarization failed")
	ErrNotification    = errors.New("notification failed")
)
