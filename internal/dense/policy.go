package dense

// Policy selects whether a Table tracks slot generations.
// Only Checked and Unchecked satisfy it.
type Policy interface {
	tracksGenerations() bool
}

// Checked tracks a generation per slot and rejects stale handles.
type Checked struct{}

func (Checked) tracksGenerations() bool { return true }

// Unchecked reuses slot numbers without any staleness detection.
type Unchecked struct{}

func (Unchecked) tracksGenerations() bool { return false }
