package trace

// Level controls the verbosity of decision tracing.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelDecisions captures all placement and preemption decisions.
	LevelDecisions Level = "decisions"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:      true,
	LevelDecisions: true,
	"":             true, // empty defaults to none
}

// IsValidLevel returns true if the given level string is a recognized trace level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// SimulationTrace collects decision records during a simulation run.
type SimulationTrace struct {
	Level       Level
	Placements  []PlacementRecord
	Preemptions []PreemptionRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(level Level) *SimulationTrace {
	return &SimulationTrace{
		Level:       level,
		Placements:  make([]PlacementRecord, 0),
		Preemptions: make([]PreemptionRecord, 0),
	}
}

// Enabled reports whether records should be collected.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Level == LevelDecisions
}

// RecordPlacement appends a placement decision record.
func (st *SimulationTrace) RecordPlacement(record PlacementRecord) {
	if !st.Enabled() {
		return
	}
	st.Placements = append(st.Placements, record)
}

// RecordPreemption appends a preemption decision record.
func (st *SimulationTrace) RecordPreemption(record PreemptionRecord) {
	if !st.Enabled() {
		return
	}
	st.Preemptions = append(st.Preemptions, record)
}
