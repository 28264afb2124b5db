package draw_test

import (
	"bytes"
	"testing"

	"github.com/kaleaditya28897-linux/picotris/internal/draw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasSetCell(t *testing.T) {
	c := draw.NewCanvas(4, 3)
	_, filled := c.Cell(0, 0)
	assert.False(t, filled)

	c.SetCell(1, 2, 0xFF8000)
	rgb, filled := c.Cell(1, 2)
	require.True(t, filled)
	assert.Equal(t, uint32(0xFF8000), rgb)

	// Out-of-range writes are ignored rather than panicking.
	c.SetCell(-1, 0, 0xFFFFFF)
	c.SetCell(4, 0, 0xFFFFFF)
	c.SetCell(0, 3, 0xFFFFFF)

	c.Clear()
	_, filled = c.Cell(1, 2)
	assert.False(t, filled)
}

func TestCanvasRender(t *testing.T) {
	var out bytes.Buffer
	cw := draw.NewChunkWriter(&out, 0, 0)

	c := draw.NewCanvas(2, 1)
	c.SetCell(0, 0, 0x00FFFF)
	c.Render(cw, 1, 1)
	require.NoError(t, cw.Flush())

	s := out.String()
	assert.Contains(t, s, "\033[1;1H", "cursor moved to the origin")
	assert.Contains(t, s, "\033[48;2;0;255;255m", "cyan background run")
	assert.Contains(t, s, "\033[0m", "style reset after the row")
}

func TestChunkWriterOffset(t *testing.T) {
	var out bytes.Buffer
	cw := draw.NewChunkWriter(&out, 10, 5)
	cw.WriteAt(1, 1, "hi")
	require.NoError(t, cw.Flush())
	assert.Contains(t, out.String(), "\033[6;11H", "offset applied to cursor moves")
}
