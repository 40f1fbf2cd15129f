package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrainPaths(t *testing.T) {
	ch := make(chan string, 4)
	assert.Empty(t, drainPaths(ch))

	ch <- "a.yaml"
	ch <- "b.tmx"
	assert.Equal(t, []string{"a.yaml", "b.tmx"}, drainPaths(ch))
	assert.Empty(t, drainPaths(ch))

	ch <- "c.yaml"
	close(ch)
	assert.Equal(t, []string{"c.yaml"}, drainPaths(ch))
}
