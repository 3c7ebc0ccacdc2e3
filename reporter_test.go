package headerbrute

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleReporterFormat(t *testing.T) {
	var out bytes.Buffer
	reporter := &ConsoleReporter{Writer: &out}

	err := reporter.Report(&Match{Key: "abc", Flag: "CTF-BR{test}"})
	require.NoError(t, err)

	assert.Equal(t, "key: abc\nflag: CTF-BR{test}\n", out.String())
	assert.Equal(t, "console", reporter.Name())
}

func TestConsoleReporterKeepsLinesTogether(t *testing.T) {
	var out bytes.Buffer
	reporter := &ConsoleReporter{Writer: &out}

	var wg sync.WaitGroup
	for _, key := range []string{"0", "1", "2", "3", "4", "5", "6", "7"} {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			reporter.Report(&Match{Key: key, Flag: "CTF-BR{" + key + "}"})
		}(key)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 16)
	for i := 0; i < len(lines); i += 2 {
		key := strings.TrimPrefix(lines[i], "key: ")
		assert.Equal(t, "flag: CTF-BR{"+key+"}", lines[i+1])
	}
}
