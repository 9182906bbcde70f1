package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/geange/lttoolbox"
	"github.com/geange/lttoolbox/dictionary"
	"github.com/geange/lttoolbox/trim"
)

// Options One lt-trim run.
type Options struct {
	Analyser string
	Bidix    string
	Output   string

	// Progress receives the per-section lines; nil discards them.
	Progress io.Writer
	Logger   *zap.Logger
}

// Run Reads both dictionaries, trims the analyser and writes the result to opts.Output. The output file is
// only created once trimming succeeded, and it is replaced atomically.
func Run(opts Options) (*trim.Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}

	mono, err := readDictionary(opts.Analyser)
	if err != nil {
		return nil, err
	}
	logger.Debug("read analyser", zap.String("path", opts.Analyser), zap.Int("sections", len(mono.Sections)))

	bidix, err := readDictionary(opts.Bidix)
	if err != nil {
		return nil, err
	}
	logger.Debug("read bidix", zap.String("path", opts.Bidix), zap.Int("sections", len(bidix.Sections)))

	trimmer := trim.New(lttoolbox.NewTransducer, trim.WithLogger(logger), trim.WithProgress(progress))
	report, err := trimmer.Trim(mono, bidix)
	if err != nil {
		return report, err
	}

	if err := writeFileAtomic(opts.Output, func(w io.Writer) error {
		return dictionary.Write(w, mono)
	}); err != nil {
		return report, err
	}
	logger.Debug("wrote trimmed analyser", zap.String("path", opts.Output), zap.Int("sections", report.Kept()))
	return report, nil
}

func readDictionary(path string) (*dictionary.Dictionary[*lttoolbox.Transducer], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("app: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := dictionary.Read(f)
	if err != nil {
		return nil, fmt.Errorf("app: read %s: %w", path, err)
	}
	return d, nil
}

// writeFileAtomic writes to a temporary file next to path and renames it into place. On failure the
// temporary file is removed and path is left as it was.
func writeFileAtomic(path string, write func(w io.Writer) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return fmt.Errorf("app: create %s: %w", path, err)
	}
	closed := false
	defer func() {
		if err == nil {
			return
		}
		if !closed {
			_ = tmp.Close()
		}
		_ = os.Remove(tmp.Name())
	}()

	if err := write(tmp); err != nil {
		return fmt.Errorf("app: write %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("app: write %s: %w", path, err)
	}
	closed = true
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("app: write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("app: rename %s: %w", path, err)
	}
	return nil
}
