package bicomp

// Test-only bridge: white-box access to discovery numbers so the invariant
// low[v] <= num[v] can be verified without widening the production API.

// NumOfForTest returns v's discovery number (0 while unvisited).
func (d *Decomposition) NumOfForTest(v int) int {
	return d.num[v]
}

// VisitedForTest returns how many vertices the current pass has numbered.
func (d *Decomposition) VisitedForTest() int {
	return d.visited
}
