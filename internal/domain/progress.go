package domain

// Snapshot is what the presentation layer consumes after every state change.
type Snapshot struct {
	Clicks    int
	Rank      Rank
	RankIndex int
	Next      *Rank // nil at the top of the ladder
	Progress  float64
	Remaining int
}

// SnapshotAt computes the snapshot for clicks on the ladder.
func (l Ladder) SnapshotAt(clicks int) Snapshot {
	s := Snapshot{
		Clicks:    clicks,
		Rank:      l.CurrentRank(clicks),
		RankIndex: l.Index(clicks),
		Progress:  l.Progress(clicks),
		Remaining: l.Remaining(clicks),
	}
	if next, ok := l.NextRank(clicks); ok {
		s.Next = &next
	}
	return s
}

// RankedUp reports whether s sits on a higher rank than prev.
func (s Snapshot) RankedUp(prev Snapshot) bool {
	return s.RankIndex > prev.RankIndex
}
