package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bnema/standup/internal/port"
)

var (
	ErrEmptyPath   = errors.New("empty path")
	ErrInvalidPath = errors.New("path contains null byte")
	ErrNotFound    = errors.New("ffmpeg not found in PATH")
)

// NormalizedName is the file written inside the job directory.
const NormalizedName = "normalized.wav"

// Converter shells out to ffmpeg to produce 16 kHz mono PCM WAV, the input
// format expected by the Whisper models.
type Converter struct {
	binary     string
	sampleRate int
}

func NewConverter() *Converter {
	return &Converter{binary: "ffmpeg", sampleRate: 16000}
}

func validatePath(p string) error {
	if p == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(p, 0) {
		return ErrInvalidPath
	}
	return nil
}

func (c *Converter) Normalize(ctx context.Context, inputPath, outputDir string) (string, error) {
	if err := validatePath(inputPath); err != nil {
		return "", fmt.Errorf("invalid input path: %w", err)
	}
	if err := validatePath(outputDir); err != nil {
		return "", fmt.Errorf("invalid output dir: %w", err)
	}
	if _, err := exec.LookPath(c.binary); err != nil {
		return "", ErrNotFound
	}
	if _, err := os.Stat(inputPath); err != nil {
		return "", fmt.Errorf("stat input: %w", err)
	}

	outputPath := filepath.Join(outputDir, NormalizedName)
	cmd := exec.CommandContext(ctx, c.binary, c.args(inputPath, outputPath)...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("ffmpeg: %w: %s", err, lastLine(output))
	}
	return outputPath, nil
}

func (c *Converter) args(inputPath, outputPath string) []string {
	return []string{
		"-hide_banner",
		"-nostdin",
		"-i", inputPath,
		"-vn",
		"-ac", "1",
		"-ar", fmt.Sprintf("%d", c.sampleRate),
		"-c:a", "pcm_s16le",
		"-f", "wav",
		"-y",
		outputPath,
	}
}

// lastLine keeps ffmpeg's final diagnostic, which names the actual failure.
func lastLine(output []byte) string {
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

var _ port.Normalizer = (*Converter)(nil)
