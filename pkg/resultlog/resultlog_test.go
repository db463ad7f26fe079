package resultlog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/addrename/pkg/inventory"
)

func TestOpenTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	var console bytes.Buffer
	l, err := Open(path, &console)
	require.NoError(t, err)
	l.Match(inventory.LiveObject{Identity: "A", Value: "10.0.0.1"}, "C")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale content")
	assert.Contains(t, string(data), "PAN object: A: 10.0.0.1")
	assert.Contains(t, string(data), "Changed to: C: 10.0.0.1")
	assert.Equal(t, string(data), console.String())
}

func TestConcurrentAppend(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Applied(fmt.Sprintf("obj-%d", i), fmt.Sprintf("new-%d", i))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 50)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "API push for obj-"), line)
	}
}

func TestNilLogDiscards(t *testing.T) {
	var l *Log
	l.NoMatches()
	l.Skip("A", "B", "override")
	assert.NoError(t, l.Err())
	assert.NoError(t, l.Close())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, fmt.Errorf("disk full") }

func TestWriteErrorIsKept(t *testing.T) {
	l := New(failingWriter{})
	l.NoMatches()
	l.Summary(1, 0, 0, 0, 0)
	require.Error(t, l.Err())
	assert.Contains(t, l.Err().Error(), "disk full")
}
