package port

import "context"

// Normalizer converts an uploaded recording into a format the transcriber
// can decode, writing the result under outputDir.
type Normalizer interface {
	Normalize(ctx context.Context, inputPath, outputDir string) (string, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

// Notifier delivers a summary to a messaging destination. A nil error means
// the message was delivered.
type Notifier interface {
	Notify(ctx context.Context, text, destinationID string) error
}
