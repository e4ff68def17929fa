package handler

import (
	"bytes"
	"errors"
	"testing"

	"github.com/philipp01105/colada/formatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upper is a Formatter without FormatTo, exercising the fallback path
type upper struct{}

func (upper) Format(record []byte) []byte {
	return append(bytes.ToUpper(record), '\n')
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestConsoleHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	defer h.Close()

	require.NoError(t, h.Handle([]byte("plain line")))
	require.NoError(t, h.Handle([]byte(`{"v":1,"level":30,"msg":"hello"}`)))

	out := buf.String()
	assert.Contains(t, out, "plain line\n")
	assert.Contains(t, out, "hello")
	assert.Equal(t, Snapshot{ProcessedTotal: 2}, h.Stats())
}

func TestConsoleHandler_PlainFormatter(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Formatter: upper{}})

	require.NoError(t, h.Handle([]byte("abc")))
	assert.Equal(t, "ABC\n", buf.String())
}

func TestConsoleHandler_WriteError(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    failingWriter{},
		Formatter: formatter.NewPrettyFormatter(formatter.Config{}),
	})

	err := h.Handle([]byte("x"))
	assert.EqualError(t, err, "broken pipe")
	assert.Equal(t, uint64(1), h.Stats().FailedTotal)
}

func TestConsoleHandler_Closed(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	require.NoError(t, h.Close())

	assert.ErrorIs(t, h.Handle([]byte("late")), ErrClosed)
	assert.Empty(t, buf.String())
}

func TestStats_Reset(t *testing.T) {
	s := NewStats()
	s.IncrementProcessed()
	s.IncrementFailed()
	s.Reset()
	assert.Equal(t, Snapshot{}, s.GetSnapshot())
}
