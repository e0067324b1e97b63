package logger

import (
	"reflect"
	"testing"
)

func TestLineWriterEmitsCompleteLines(t *testing.T) {
	var lines []string
	w := NewLineWriter(func(line string) { lines = append(lines, line) })

	w.Write([]byte("first line\nsecond"))
	w.Write([]byte(" line\nthird\n"))

	want := []string{"first line", "second line", "third"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %q, want %q", lines, want)
	}
}

func TestLineWriterFlushesPartialLineOnClose(t *testing.T) {
	var lines []string
	w := NewLineWriter(func(line string) { lines = append(lines, line) })

	w.Write([]byte("no newline"))
	if len(lines) != 0 {
		t.Fatalf("partial line emitted early: %q", lines)
	}

	w.Close()
	if len(lines) != 1 || lines[0] != "no newline" {
		t.Errorf("lines = %q, want the flushed partial line", lines)
	}
}

func TestLineWriterStripsCarriageReturns(t *testing.T) {
	var lines []string
	w := NewLineWriter(func(line string) { lines = append(lines, line) })

	w.Write([]byte("windows line\r\n"))
	if len(lines) != 1 || lines[0] != "windows line" {
		t.Errorf("lines = %q", lines)
	}
}

func TestLineWriterCloseIsIdempotent(t *testing.T) {
	count := 0
	w := NewLineWriter(func(line string) { count++ })

	w.Write([]byte("tail"))
	w.Close()
	w.Close()
	if count != 1 {
		t.Errorf("emit count = %d, want 1", count)
	}
}
