package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
)

// FileHandler appends plain-text lines of the form
// "2006-01-02 15:04:05 - <message> key=value ..." to a log file.
// The parent directory is created on first write.
type FileHandler struct {
	sink  *fileSink
	level slog.Level
	attrs []slog.Attr
}

type fileSink struct {
	mu   sync.Mutex
	path string
	f    *os.File
}

// NewFileHandler creates a handler appending to the file at path
func NewFileHandler(path string, level slog.Level) *FileHandler {
	return &FileHandler{
		sink:  &fileSink{path: path},
		level: level,
	}
}

// Enabled implements slog.Handler
func (h *FileHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle implements slog.Handler
func (h *FileHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format("2006-01-02 15:04:05"))
	b.WriteString(" - ")
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&b, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, a)
		return true
	})
	b.WriteByte('\n')

	return h.sink.write(b.String())
}

// WithAttrs implements slog.Handler
func (h *FileHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

// WithGroup implements slog.Handler. Groups are flattened; the file format
// is a flat line.
func (h *FileHandler) WithGroup(string) slog.Handler {
	return h
}

func writeAttr(b *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(b, " %s=%v", a.Key, a.Value.Resolve().Any())
}

func (s *fileSink) write(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f == nil {
		if dir := filepath.Dir(s.path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return goerr.Wrap(err, "failed to create log directory", goerr.V("dir", dir))
			}
		}
		f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return goerr.Wrap(err, "failed to open log file", goerr.V("path", s.path))
		}
		s.f = f
	}

	if _, err := s.f.WriteString(line); err != nil {
		return goerr.Wrap(err, "failed to append to log file", goerr.V("path", s.path))
	}
	return nil
}
