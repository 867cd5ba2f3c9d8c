package advanced

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	points := LoadFixture("straddling_pair")
	result, err := Analyze(points)
	require.NoError(t, err)

	c := result.Draw(20)
	assert.Equal(t, 10*20+dbgDrawPadding*2, c.Width())
	assert.Equal(t, 9*20+dbgDrawPadding*2, c.Height())

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))
	assert.NotZero(t, buf.Len())

	t.Run("degenerate", func(t *testing.T) {
		for _, points := range []PointList{nil, {{1, 1}}, {{1, 1}, {1, 1}}} {
			result, err := Analyze(points)
			require.NoError(t, err)
			c := result.Draw(10)
			assert.Equal(t, dbgDrawPadding*2, c.Width())
		}
	})
}

func TestDbgDraw(t *testing.T) {
	result, err := Analyze(RandomPoints(30, 42, 10))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "closest_pair.png")
	require.NoError(t, result.DbgDraw(30, path, io.Discard))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
