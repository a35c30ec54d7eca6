package main

import (
	"fmt"
	"os"

	"github.com/automoto/throwball/components"
	"github.com/automoto/throwball/scenes"
	"gopkg.in/yaml.v3"
)

// Frame is one scripted input step, optionally repeated.
type Frame struct {
	DT     float64 `yaml:"dt"` // 0 uses the sim tick interval
	DX     float64 `yaml:"dx"`
	DY     float64 `yaml:"dy"`
	Throw  string  `yaml:"throw"` // none, press, hold or release
	Repeat int     `yaml:"repeat"`
}

// Script is a named sequence of frames.
type Script struct {
	Name   string  `yaml:"name"`
	Frames []Frame `yaml:"frames"`
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Frames) == 0 {
		return nil, fmt.Errorf("script has no frames")
	}
	for i, f := range s.Frames {
		if f.DT < 0 {
			return nil, fmt.Errorf("frame %d: negative dt %v", i, f.DT)
		}
		if f.Repeat < 0 {
			return nil, fmt.Errorf("frame %d: negative repeat %d", i, f.Repeat)
		}
		if _, err := buttonFor(f.Throw); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return &s, nil
}

// Expand unrolls repeats and fills in defaultDT.
func (s *Script) Expand(defaultDT float64) []Frame {
	var out []Frame
	for _, f := range s.Frames {
		n := max(f.Repeat, 1)
		if f.DT == 0 {
			f.DT = defaultDT
		}
		f.Repeat = 0
		for i := 0; i < n; i++ {
			out = append(out, f)
		}
	}
	return out
}

// Input converts the frame into the scene's per-frame feed.
func (f Frame) Input() scenes.Input {
	b, _ := buttonFor(f.Throw)
	return scenes.Input{LookDX: f.DX, LookDY: f.DY, Throw: b}
}

func buttonFor(name string) (components.ButtonState, error) {
	switch name {
	case "", "none":
		return components.ButtonState{}, nil
	case "press":
		return components.ButtonState{Pressed: true, JustPressed: true}, nil
	case "hold":
		return components.ButtonState{Pressed: true}, nil
	case "release":
		return components.ButtonState{JustReleased: true}, nil
	}
	return components.ButtonState{}, fmt.Errorf("unknown throw input %q", name)
}
