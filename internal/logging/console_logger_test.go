package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
)

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, true)
	logger.Verbose("test message: %s", "value")

	expected := "[VERBOSE] test message: value\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)
	logger.Verbose("test message: %s", "value")

	if buf.String() != "" {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestConsoleLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)
	logger.Info("info message: %s", "value")

	expected := "info message: value\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_Error_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)
	logger.Error("disk full 100%")

	// Without args the format string is written verbatim, so % is not interpreted.
	expected := "[ERROR] disk full 100%\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_DefaultsToStderr(t *testing.T) {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	logger := NewConsoleLogger(false)
	logger.Error("error message: %s", "value")

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	io.Copy(&buf, r)

	expected := "[ERROR] error message: value\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 30 {
		t.Errorf("Expected 30 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if !strings.Contains(line, "message") && !strings.Contains(line, "verbose") && !strings.Contains(line, "error") {
			t.Errorf("Line %d appears corrupted: %q", i, line)
		}
	}
}

func TestNullLogger_ConcurrentSafety(t *testing.T) {
	logger := NewNullLogger()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}

	wg.Wait()
}

func BenchmarkConsoleLogger_VerboseDisabled(b *testing.B) {
	logger := NewWriterLogger(io.Discard, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Verbose("benchmark message %d", i)
	}
}

func ExampleNullLogger() {
	logger := NewNullLogger()
	logger.Info("This message is discarded")
	logger.Verbose("This too")
	logger.Error("And this")
	fmt.Println("Done")
	// Output:
	// Done
}
