package skip

import "math/rand/v2"

// Bounds for generated segments. All ranges are inclusive.
const (
	simulatedStartMin, simulatedStartMax = 25, 35
	simulatedEndMin, simulatedEndMax     = 85, 95

	analyzedStartMin, analyzedStartMax = 20, 40
	analyzedEndMin, analyzedEndMax     = 80, 120
)

// Generator produces skip segments. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator. A nil rng uses a randomly seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

// Generate produces sample data when simulate is set or input is empty,
// otherwise it runs the analysis on input.
func (g *Generator) Generate(input string, simulate bool) Result {
	if simulate || input == "" {
		return g.Simulate(input)
	}
	return g.AnalyzeFile(input)
}

// Simulate generates sample data without looking at any file
func (g *Generator) Simulate(input string) Result {
	file := input
	if file == "" {
		file = DefaultFile
	}
	return Result{
		File: file,
		Skips: []Segment{g.segment(
			simulatedStartMin, simulatedStartMax,
			simulatedEndMin, simulatedEndMax,
		)},
	}
}

// AnalyzeFile generates skip segments for a video file.
//
// The analysis is a placeholder: the file is never opened and the segment is
// random within the intro bounds.
func (g *Generator) AnalyzeFile(path string) Result {
	return Result{
		File: path,
		Skips: []Segment{g.segment(
			analyzedStartMin, analyzedStartMax,
			analyzedEndMin, analyzedEndMax,
		)},
	}
}

func (g *Generator) segment(startMin, startMax, endMin, endMax int) Segment {
	return Segment{
		Start:      g.between(startMin, startMax),
		End:        g.between(endMin, endMax),
		Confidence: DefaultConfidence,
		Reason:     ReasonIntro,
	}
}

// between returns a uniform integer in [lo, hi]
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
