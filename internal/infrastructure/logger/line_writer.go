package logger

import (
	"bytes"
	"sync"
)

// LineWriter is an io.Writer that forwards complete lines to an emit
// function. It is used to feed a child process's stdout/stderr into the
// leveled logger without interleaving partial writes.
type LineWriter struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	emit func(line string)
}

// NewLineWriter creates a LineWriter that calls emit once per line,
// without the trailing newline.
func NewLineWriter(emit func(line string)) *LineWriter {
	return &LineWriter{emit: emit}
}

// Write buffers p and emits every complete line it contains
func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// No newline yet, keep the partial line buffered
			w.buf.WriteString(line)
			break
		}
		w.emit(trimEOL(line))
	}
	return len(p), nil
}

// Close flushes any buffered partial line
func (w *LineWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(trimEOL(w.buf.String()))
		w.buf.Reset()
	}
	return nil
}

func trimEOL(line string) string {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}
