package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitText(t *testing.T) {
	t.Run("short text stays whole", func(t *testing.T) {
		chunks := SplitText("short document", 100, 10)
		assert.Equal(t, []string{"short document"}, chunks)
	})

	t.Run("empty text yields nothing", func(t *testing.T) {
		assert.Nil(t, SplitText("   ", 100, 10))
	})

	t.Run("splits on paragraph boundaries", func(t *testing.T) {
		para1 := strings.Repeat("a", 60)
		para2 := strings.Repeat("b", 60)
		para3 := strings.Repeat("c", 60)

		chunks := SplitText(para1+"\n\n"+para2+"\n\n"+para3, 130, 10)

		require.Len(t, chunks, 2)
		assert.Equal(t, para1+"\n\n"+para2, chunks[0])
		assert.Equal(t, para3, chunks[1])
	})

	t.Run("oversized paragraph falls back to slicing with overlap", func(t *testing.T) {
		text := strings.Repeat("x", 250)

		chunks := SplitText(text, 100, 20)

		require.Len(t, chunks, 3)
		assert.Len(t, chunks[0], 100)
		assert.Len(t, chunks[1], 100)
		// steps of 80: last chunk covers 160..250
		assert.Len(t, chunks[2], 90)
	})

	t.Run("no content is lost", func(t *testing.T) {
		paras := []string{
			"Enrollment opens in August every year.",
			"Students must bring their id card and proof of payment.",
			"Late enrollment carries an administrative fee.",
		}
		chunks := SplitText(strings.Join(paras, "\n\n"), 70, 10)

		joined := strings.Join(chunks, "\n\n")
		for _, p := range paras {
			assert.Contains(t, joined, p)
		}
	})
}
