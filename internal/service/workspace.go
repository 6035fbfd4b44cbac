package service

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/standup/internal/domain"
)

var ErrUnscopedPath = errors.New("path is not a job working directory")

// Workspace owns one working directory per job, directly under root.
type Workspace struct {
	root string
}

func NewWorkspace(root string) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("create workspace root: %w", err)
	}
	return &Workspace{root: abs}, nil
}

func (w *Workspace) Root() string {
	return w.root
}

// Dir returns the working directory of jobID without touching the disk.
func (w *Workspace) Dir(jobID string) (string, error) {
	if !domain.ValidJobID(jobID) {
		return "", fmt.Errorf("%w: %q", ErrUnscopedPath, jobID)
	}
	dir := filepath.Join(w.root, jobID)
	if filepath.Dir(dir) != w.root {
		return "", fmt.Errorf("%w: %q", ErrUnscopedPath, jobID)
	}
	return dir, nil
}

// Create makes the job directory. It fails if the directory already exists,
// so two jobs can never share one.
func (w *Workspace) Create(jobID string) (string, error) {
	dir, err := w.Dir(jobID)
	if err != nil {
		return "", err
	}
	if err := os.Mkdir(dir, 0o750); err != nil {
		return "", fmt.Errorf("create job directory: %w", err)
	}
	return dir, nil
}

// Save copies r into name inside the job directory.
func (w *Workspace) Save(jobID, name string, r io.Reader) (string, int64, error) {
	dir, err := w.Dir(jobID)
	if err != nil {
		return "", 0, err
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return "", 0, fmt.Errorf("%w: file name %q", ErrUnscopedPath, name)
	}

	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", 0, fmt.Errorf("create %s: %w", name, err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", n, fmt.Errorf("write %s: %w", name, err)
	}
	return path, n, nil
}

// Remove deletes the job directory and everything in it. A missing
// directory is not an error. A symlink in place of the directory is
// unlinked, never followed.
func (w *Workspace) Remove(jobID string) error {
	dir, err := w.Dir(jobID)
	if err != nil {
		return err
	}

	info, err := os.Lstat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat job directory: %w", err)
	}
	if !info.IsDir() {
		return os.Remove(dir)
	}
	return os.RemoveAll(dir)
}

// StaleDirs lists job directories last modified before cutoff.
func (w *Workspace) StaleDirs(cutoff time.Time) ([]string, error) {
	entries, err := os.ReadDir(w.root)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if !e.IsDir() || !domain.ValidJobID(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			ids = append(ids, e.Name())
		}
	}
	return ids, nil
}
