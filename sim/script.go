package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/automoto/celestial-survivor/shared/kinematics"
)

// Segment holds a key combination for a number of ticks.
type Segment struct {
	Ticks int  `yaml:"ticks"`
	Left  bool `yaml:"left"`
	Right bool `yaml:"right"`
	Jump  bool `yaml:"jump"`
}

// Script is a scripted input sequence for headless replays.
type Script struct {
	Name     string    `yaml:"name"`
	Segments []Segment `yaml:"segments"`
}

// ParseScript decodes and validates a YAML replay script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	for i, seg := range s.Segments {
		if seg.Ticks <= 0 {
			return Script{}, fmt.Errorf("parse script: segment %d: ticks must be positive", i+1)
		}
	}
	return s, nil
}

// LoadScript reads a replay script from disk.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script %s: %w", path, err)
	}
	return ParseScript(data)
}

// Ticks is the total script length.
func (s Script) Ticks() int {
	n := 0
	for _, seg := range s.Segments {
		n += seg.Ticks
	}
	return n
}

// ScriptSource plays a script back one tick at a time. The jump key is
// reported as both pressed and held, the same as a keyboard that is read
// by level.
type ScriptSource struct {
	script  Script
	segment int
	used    int
}

func NewScriptSource(s Script) *ScriptSource {
	return &ScriptSource{script: s}
}

func (src *ScriptSource) Next() (kinematics.Intent, bool) {
	for src.segment < len(src.script.Segments) {
		seg := src.script.Segments[src.segment]
		if src.used < seg.Ticks {
			src.used++
			return kinematics.Intent{
				MoveLeft:    seg.Left,
				MoveRight:   seg.Right,
				JumpPressed: seg.Jump,
				JumpHeld:    seg.Jump,
			}, true
		}
		src.segment++
		src.used = 0
	}
	return kinematics.Intent{}, false
}
