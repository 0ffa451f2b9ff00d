package skip

import "strings"

const (
	// DefaultConfidence is the confidence attached to every generated segment
	DefaultConfidence = 0.8
	// ReasonIntro tags a segment as an intro
	ReasonIntro = "intro"
	// DefaultFile names the source video when no input was given
	DefaultFile = "sample.mp4"
)

// Segment is a skippable time range in a media file, in whole seconds
type Segment struct {
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// Result is the document written by the analyzer
type Result struct {
	File  string    `json:"file"`
	Skips []Segment `json:"skips"`
}

var reasonLabels = map[string]string{
	"cold_open":   "Skip Cold Open",
	"credits":     "Skip Credits",
	"credits_end": "Skip End Credits",
	"intro":       "Skip Intro",
	"recap":       "Skip Recap",
	"preview":     "Skip Preview",
}

// Label returns the button label a player shows for a segment reason
func Label(reason string) string {
	if label, ok := reasonLabels[strings.ToLower(reason)]; ok {
		return label
	}
	return "Skip"
}

// Contains reports whether pos (seconds) falls inside the half-open range [Start, End)
func (s Segment) Contains(pos float64) bool {
	return pos >= float64(s.Start) && pos < float64(s.End)
}

// FitsRuntime reports whether the segment is a non-empty range inside [0, runtimeSec].
// An unknown runtime (<= 0) always fits.
func (s Segment) FitsRuntime(runtimeSec float64) bool {
	if runtimeSec <= 0 {
		return true
	}
	return s.Start >= 0 && float64(s.End) <= runtimeSec && s.Start < s.End
}

// FindActive returns the first segment containing pos
func FindActive(pos float64, segments []Segment) (Segment, bool) {
	for _, s := range segments {
		if s.Contains(pos) {
			return s, true
		}
	}
	return Segment{}, false
}

// ValidateAgainstRuntime splits segments into those that fit inside a video of
// runtimeSec seconds and those that don't. An unknown runtime (<= 0) accepts everything.
func ValidateAgainstRuntime(segments []Segment, runtimeSec float64) (valid, rejected []Segment) {
	if runtimeSec <= 0 {
		return segments, nil
	}

	for _, s := range segments {
		if s.FitsRuntime(runtimeSec) {
			valid = append(valid, s)
		} else {
			rejected = append(rejected, s)
		}
	}
	return valid, rejected
}
