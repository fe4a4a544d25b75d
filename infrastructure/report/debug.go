package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ahrav/go-tally/internal/domain"
)

// FileDebugSink implements the engine's debug port: normalized datasets
// are dumped to per-year "details.<year>.txt" files and trace lines go to
// the given writer (typically stderr).
type FileDebugSink struct {
	dir   string
	trace io.Writer
}

// NewFileDebugSink creates a sink dumping into dir.
func NewFileDebugSink(dir string, trace io.Writer) *FileDebugSink {
	return &FileDebugSink{dir: dir, trace: trace}
}

// DumpDataset writes one year's normalized dataset, pretty-printed, to
// details.<year>.txt in the sink's directory.
func (s *FileDebugSink) DumpDataset(year int, ds domain.Dataset) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	path := filepath.Join(s.dir, fmt.Sprintf("details.%d.txt", year))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write dump: %w", err)
	}
	return nil
}

// Tracef emits one formatted trace line.
func (s *FileDebugSink) Tracef(format string, args ...any) {
	fmt.Fprintf(s.trace, "DEBUG: "+format+"\n", args...)
}
