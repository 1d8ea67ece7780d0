package pkg

import (
	"fmt"
	"io"
	"slices"

	"go.uber.org/multierr"
)

// CombinedWriter tees log output to every writer. A failing writer does not
// stop the others, its error is collected and returned.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		writers: slices.Clone(writers),
	}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	for i, w := range cw.writers {
		n, werr := w.Write(p)
		if werr == nil && n < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, fmt.Errorf("writer %d: %w", i, werr))
		}
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
