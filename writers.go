package gridsearch

import (
	"fmt"
	"strings"

	"github.com/maseology/mmio"
)

// ResultWriter is one worker's sink: an exclusive sequence of
// results_<n>.csv files. A new file (with the fixed header) is opened
// whenever appending would push the current file past maxBytes. Workers get
// interleaved file numbers (first, first+stride, ...) so no two workers ever
// own the same name.
type ResultWriter struct {
	dir      string
	next     int
	stride   int
	maxBytes int
	tw       *mmio.TXTwriter
	size     int
}

func NewResultWriter(dir string, first, stride, maxBytes int) *ResultWriter {
	if stride < 1 {
		stride = 1
	}
	return &ResultWriter{dir: dir, next: first, stride: stride, maxBytes: maxBytes}
}

// Write normalizes r to the full fixed column set and appends it, rotating
// files as needed.
func (w *ResultWriter) Write(r *EvaluationResult) error {
	ln := strings.Join(NormalizeRow(r.Row()), ";")
	if w.tw != nil && w.maxBytes > 0 && w.size+len(ln)+1 > w.maxBytes {
		w.tw.Close()
		w.tw = nil
	}
	if w.tw == nil {
		if err := w.open(); err != nil {
			return err
		}
	}
	w.tw.WriteLine(ln)
	w.size += len(ln) + 1
	return nil
}

func (w *ResultWriter) open() error {
	fp := fmt.Sprintf("%sresults_%d.csv", w.dir, w.next)
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf("ResultWriter.open: %v", err)
	}
	w.next += w.stride
	w.tw = tw
	w.tw.WriteLine(ResultHeader)
	w.size = len(ResultHeader) + 1
	return nil
}

func (w *ResultWriter) Close() {
	if w.tw != nil {
		w.tw.Close()
		w.tw = nil
	}
}
