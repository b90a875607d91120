package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type memoryBackend struct {
	initErr   error
	initCalls int
	text      string
}

func (m *memoryBackend) Init() error {
	m.initCalls++
	return m.initErr
}

func (m *memoryBackend) WriteText(text string) { m.text = text }
func (m *memoryBackend) ReadText() string      { return m.text }

func TestWriteText_RoundTrip(t *testing.T) {
	mem := &memoryBackend{}
	SetBackend(mem)
	defer ResetBackend()

	require.NoError(t, WriteText("  Sincere@april.biz \n"))

	got, err := ReadText()
	require.NoError(t, err)
	require.Equal(t, "Sincere@april.biz", got)
	require.Equal(t, 1, mem.initCalls, "init should run once")
}

func TestWriteText_Blank(t *testing.T) {
	mem := &memoryBackend{}
	SetBackend(mem)
	defer ResetBackend()

	require.Error(t, WriteText("   "))
	require.Empty(t, mem.text)
}

func TestInit_FailureIsRemembered(t *testing.T) {
	mem := &memoryBackend{initErr: errors.New("no display")}
	SetBackend(mem)
	defer ResetBackend()

	require.Error(t, Init())
	err := WriteText("hello")
	require.ErrorContains(t, err, "no display")
	require.Equal(t, 1, mem.initCalls)
	require.Empty(t, mem.text)
}
