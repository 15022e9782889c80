package logging

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/vsh/pkg/vsh"
)

var (
	_ vsh.Logger = (*ConsoleLogger)(nil)
	_ vsh.Logger = (*NullLogger)(nil)
)

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, true)
	logger.Verbose("test message: %s", "value")

	assert.Equal(t, "[VERBOSE] test message: value\n", buf.String())
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)
	logger.Verbose("test message: %s", "value")

	assert.Empty(t, buf.String())
}

func TestConsoleLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)
	logger.Info("info message: %s", "value")

	assert.Equal(t, "info message: value\n", buf.String())
}

func TestConsoleLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)
	logger.Error("error message: %s", "value")

	assert.Equal(t, "[ERROR] error message: value\n", buf.String())
}

func TestConsoleLogger_NoArgsKeepsPercent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, false)
	logger.Info("100% loaded")

	assert.Equal(t, "100% loaded\n", buf.String())
}

func TestConsoleLogger_DefaultsToStderr(t *testing.T) {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	logger := NewConsoleLogger(false)
	logger.Error("to stderr")

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	assert.Equal(t, "[ERROR] to stderr\n", buf.String())
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
	assert.Len(t, lines, 30)
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
