package trace

// Summary aggregates statistics from a SimulationTrace.
type Summary struct {
	TotalPlacements  int
	Preemptions      int
	UniqueCores      int
	CoreDistribution map[int]int         // core index → placements landed there
	CauseCounts      map[PlacementCause]int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *Summary {
	summary := &Summary{
		CoreDistribution: make(map[int]int),
		CauseCounts:      make(map[PlacementCause]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalPlacements = len(st.Placements)
	summary.Preemptions = len(st.Preemptions)
	for _, p := range st.Placements {
		summary.CoreDistribution[p.Core]++
		summary.CauseCounts[p.Cause]++
	}
	summary.UniqueCores = len(summary.CoreDistribution)

	return summary
}
