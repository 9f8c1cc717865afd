package search

// LevelDiagnostics records the outcome of one superstep.
type LevelDiagnostics struct {
	Level         int     `json:"level"`
	TargetDigit   int     `json:"target_digit"`
	FrontierIn    int     `json:"frontier_in"`
	Generated     int     `json:"generated"`
	Pruned        int     `json:"pruned"`
	ViolationRate float64 `json:"violation_rate"`
	BeamWidth     int     `json:"beam_width"`
	FrontierOut   int     `json:"frontier_out"`
}

// Diagnostics accompanies every result, successful or not, so callers can
// measure how the heuristic behaved on their instance.
type Diagnostics struct {
	Levels         []LevelDiagnostics `json:"levels"`
	LevelsExplored int                `json:"levels_explored"`
	Generated      int                `json:"generated"`
	Pruned         int                `json:"pruned"`
	Verified       int                `json:"verified"`
	ElapsedNanos   int64              `json:"elapsed_nanos"`
}

func (d *Diagnostics) record(ld LevelDiagnostics) {
	d.Levels = append(d.Levels, ld)
	d.LevelsExplored = len(d.Levels)
	d.Generated += ld.Generated
	d.Pruned += ld.Pruned
}
