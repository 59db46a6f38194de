package logging

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/vvka-141/gols/pkg/gols"
)

var (
	_ gols.Logger = (*ConsoleLogger)(nil)
	_ gols.Logger = (*NullLogger)(nil)
)

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "ls", true)
	logger.Verbose("entering %s", "dir")

	expected := "ls: [VERBOSE] entering dir\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_Verbose_WhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "ls", false)
	logger.Verbose("entering %s", "dir")

	if buf.String() != "" {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestConsoleLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "ls", false)
	logger.Error("'%s': %s", "missing", "no such file or directory")

	expected := "ls: 'missing': no such file or directory\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_NoArgsKeepsPercent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "ls", false)
	logger.Error("'100%'")

	expected := "ls: '100%'\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "ls", true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 20 {
		t.Errorf("Expected 20 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, "ls: ") {
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
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}

	// Should complete without panic
	wg.Wait()
}

// Example demonstrates ConsoleLogger usage
func ExampleConsoleLogger() {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "ls", true)
	logger.Verbose("listing %s", ".")
	logger.Error("'%s': %s", "gone", "no such file or directory")
	fmt.Print(buf.String())
	// Output:
	// ls: [VERBOSE] listing .
	// ls: 'gone': no such file or directory
}

// Example demonstrates NullLogger usage
func ExampleNullLogger() {
	logger := NewNullLogger()
	logger.Verbose("This message is discarded")
	logger.Error("And this")
	fmt.Println("Done")
	// Output:
	// Done
}
