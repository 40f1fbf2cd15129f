package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/celestial-survivor/shared/kinematics"
)

const sampleScript = `
name: hop
segments:
  - { ticks: 2, right: true }
  - { ticks: 1, jump: true }
  - { ticks: 1, left: true, jump: true }
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(sampleScript))
	require.NoError(t, err)

	assert.Equal(t, "hop", s.Name)
	assert.Equal(t, 4, s.Ticks())

	src := NewScriptSource(s)
	var got []kinematics.Intent
	for {
		in, ok := src.Next()
		if !ok {
			break
		}
		got = append(got, in)
	}

	assert.Equal(t, []kinematics.Intent{
		{MoveRight: true},
		{MoveRight: true},
		{JumpPressed: true, JumpHeld: true},
		{MoveLeft: true, JumpPressed: true, JumpHeld: true},
	}, got)

	_, ok := src.Next()
	assert.False(t, ok)
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"zero ticks", "segments: [ { ticks: 0 } ]", "ticks must be positive"},
		{"bad yaml", "segments: {", "parse script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.doc))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hop.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScript), 0644))

	s, err := LoadScript(path)
	require.NoError(t, err)
	assert.Len(t, s.Segments, 3)

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
