package headerbrute

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Reporter must be implemented by anything that wants to receive matches.
// Reporters are called concurrently from every worker.
type Reporter interface {
	Report(match *Match) error
	Name() string
}

// Match is a candidate key whose response carried a flag.
type Match struct {
	Key        string
	Flag       string
	StatusCode int
}

// ConsoleReporter writes each match as a "key:" line followed by a "flag:" line.
type ConsoleReporter struct {
	Writer io.Writer
	Color  bool
	mux    sync.Mutex
}

// Report writes a match, keeping its two lines together.
func (c *ConsoleReporter) Report(match *Match) error {
	c.mux.Lock()
	defer c.mux.Unlock()

	keyLine := fmt.Sprintf("key: %s", match.Key)
	flagLine := fmt.Sprintf("flag: %s", match.Flag)
	if c.Color {
		keyLine = color.New(color.FgCyan).Sprint(keyLine)
		flagLine = color.New(color.FgGreen, color.Bold).Sprint(flagLine)
	}

	_, err := fmt.Fprintf(c.Writer, "%s\n%s\n", keyLine, flagLine)
	return err
}

// Name identifies the reporter in logs.
func (c *ConsoleReporter) Name() string {
	return "console"
}
