package tween

import (
	"strconv"
	"strings"
)

// Track is a parsed keyframe curve with its interpolation mode.
type Track struct {
	Keyframes []Keyframe
	Mode      string
}

// ParseTrack parses a compact track string from the animation config.
//
// The format is an optional leading interpolation keyword followed by
// "time,value" pairs separated by whitespace:
//
//	"0,1 0.5,1.08 1,1"
//	"EaseOut 0,0 1,1"
//
// A bare single number is treated as a constant track. Malformed pairs are
// skipped; an empty or fully malformed string yields an empty track whose
// Evaluate always returns 0.
func ParseTrack(s string) Track {
	s = strings.TrimSpace(s)
	if s == "" {
		return Track{}
	}

	track := Track{Mode: Linear}

	fields := strings.Fields(s)
	for _, f := range fields {
		switch f {
		case Linear, EaseIn, EaseOut, EaseInOut, FastInOutWeak:
			track.Mode = f
			continue
		}

		if strings.Contains(f, ",") {
			pair := strings.Split(f, ",")
			if len(pair) != 2 {
				continue
			}
			t, err1 := strconv.ParseFloat(pair[0], 64)
			v, err2 := strconv.ParseFloat(pair[1], 64)
			if err1 == nil && err2 == nil {
				track.Keyframes = append(track.Keyframes, Keyframe{Time: t, Value: v})
			}
			continue
		}

		// Bare number: constant track
		if v, err := strconv.ParseFloat(f, 64); err == nil && len(track.Keyframes) == 0 {
			track.Keyframes = append(track.Keyframes, Keyframe{Time: 0, Value: v})
		}
	}

	return track
}

// Evaluate evaluates the track at normalized time t.
func (tr Track) Evaluate(t float64) float64 {
	return Evaluate(tr.Keyframes, t, tr.Mode)
}

// IsEmpty reports whether the track has no keyframes.
func (tr Track) IsEmpty() bool {
	return len(tr.Keyframes) == 0
}
