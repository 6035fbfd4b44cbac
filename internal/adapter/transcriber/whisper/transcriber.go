package whisper

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/standup/internal/port"
	sherpa "github.com/k2-fsa/sherpa-onnx-go/sherpa_onnx"
)

// Whisper decodes at most 30 seconds of audio per stream.
const chunkSeconds = 30

var (
	ErrEmptyAudio = errors.New("audio file contains no samples")
	ErrClosed     = errors.New("transcriber is closed")
)

type Config struct {
	ModelDir   string
	Language   string // en, fr, ... or empty for auto-detect
	NumThreads int
}

type decoder interface {
	Decode(sampleRate int, samples []float32) string
	Close()
}

type waveReader func(path string) (samples []float32, sampleRate int, err error)

// Transcriber runs a local Whisper model through sherpa-onnx.
type Transcriber struct {
	mu       sync.Mutex
	dec      decoder
	readWave waveReader
}

func NewTranscriber(cfg Config) (*Transcriber, error) {
	dec, err := newWhisperDecoder(cfg)
	if err != nil {
		return nil, err
	}
	return &Transcriber{dec: dec, readWave: readWave}, nil
}

// Transcribe decodes a 16 kHz mono WAV file chunk by chunk. The recognizer
// is shared, so decoding is serialized across jobs.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	samples, rate, err := t.readWave(audioPath)
	if err != nil {
		return "", err
	}
	if len(samples) == 0 || rate <= 0 {
		return "", ErrEmptyAudio
	}

	var parts []string
	for _, chunk := range splitSamples(samples, rate*chunkSeconds) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := t.decode(rate, chunk)
		if err != nil {
			return "", err
		}
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " "), nil
}

func (t *Transcriber) decode(rate int, chunk []float32) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.dec == nil {
		return "", ErrClosed
	}
	return t.dec.Decode(rate, chunk), nil
}

func (t *Transcriber) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.dec != nil {
		t.dec.Close()
		t.dec = nil
	}
}

func splitSamples(samples []float32, size int) [][]float32 {
	if size <= 0 {
		return [][]float32{samples}
	}
	chunks := make([][]float32, 0, len(samples)/size+1)
	for start := 0; start < len(samples); start += size {
		end := min(start+size, len(samples))
		chunks = append(chunks, samples[start:end])
	}
	return chunks
}

func readWave(path string) ([]float32, int, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, 0, fmt.Errorf("stat audio: %w", err)
	}
	wave := sherpa.ReadWave(path)
	if wave == nil {
		return nil, 0, fmt.Errorf("read wave %s: unsupported or corrupt file", filepath.Base(path))
	}
	return wave.Samples, wave.SampleRate, nil
}

type whisperDecoder struct {
	recognizer *sherpa.OfflineRecognizer
}

func newWhisperDecoder(cfg Config) (*whisperDecoder, error) {
	encoder := findModelFile(cfg.ModelDir, []string{
		"encoder.int8.onnx",
		"encoder.onnx",
		"base-encoder.int8.onnx",
		"base-encoder.onnx",
		"small-encoder.int8.onnx",
		"small-encoder.onnx",
	})
	decoder := findModelFile(cfg.ModelDir, []string{
		"decoder.int8.onnx",
		"decoder.onnx",
		"base-decoder.int8.onnx",
		"base-decoder.onnx",
		"small-decoder.int8.onnx",
		"small-decoder.onnx",
	})
	tokens := findModelFile(cfg.ModelDir, []string{
		"tokens.txt",
		"base-tokens.txt",
		"small-tokens.txt",
	})
	switch {
	case encoder == "":
		return nil, fmt.Errorf("encoder model not found in %s", cfg.ModelDir)
	case decoder == "":
		return nil, fmt.Errorf("decoder model not found in %s", cfg.ModelDir)
	case tokens == "":
		return nil, fmt.Errorf("tokens file not found in %s", cfg.ModelDir)
	}

	threads := cfg.NumThreads
	if threads <= 0 {
		threads = 4
	}
	config := sherpa.OfflineRecognizerConfig{
		FeatConfig: sherpa.FeatureConfig{
			SampleRate: 16000,
			FeatureDim: 80,
		},
		ModelConfig: sherpa.OfflineModelConfig{
			Whisper: sherpa.OfflineWhisperModelConfig{
				Encoder:  encoder,
				Decoder:  decoder,
				Language: cfg.Language,
				Task:     "transcribe",
			},
			Tokens:     tokens,
			NumThreads: threads,
			Debug:      0,
		},
	}

	recognizer := sherpa.NewOfflineRecognizer(&config)
	if recognizer == nil {
		return nil, fmt.Errorf("failed to create Whisper recognizer from %s", cfg.ModelDir)
	}
	return &whisperDecoder{recognizer: recognizer}, nil
}

func (d *whisperDecoder) Decode(sampleRate int, samples []float32) string {
	stream := sherpa.NewOfflineStream(d.recognizer)
	defer sherpa.DeleteOfflineStream(stream)

	stream.AcceptWaveform(sampleRate, samples)
	d.recognizer.Decode(stream)

	result := stream.GetResult()
	if result == nil {
		return ""
	}
	return result.Text
}

func (d *whisperDecoder) Close() {
	sherpa.DeleteOfflineRecognizer(d.recognizer)
}

func findModelFile(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

var _ port.Transcriber = (*Transcriber)(nil)
