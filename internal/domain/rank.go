package domain

import "fmt"

// Rank is a named tier unlocked once the click count reaches Threshold.
type Rank struct {
	Name      string `mapstructure:"name" json:"name"`
	Threshold int    `mapstructure:"threshold" json:"threshold"`
}

// Ladder is an ordered rank sequence with strictly increasing thresholds,
// the first of which is zero. The zero value is not usable; build one with
// NewLadder or DefaultLadder.
type Ladder struct {
	ranks []Rank
}

// NewLadder validates ranks and returns a ladder over a copy of them.
func NewLadder(ranks []Rank) (Ladder, error) {
	if len(ranks) == 0 {
		return Ladder{}, fmt.Errorf("%w: no ranks", ErrInvalidLadder)
	}
	if ranks[0].Threshold != 0 {
		return Ladder{}, fmt.Errorf("%w: first threshold is %d, want 0", ErrInvalidLadder, ranks[0].Threshold)
	}
	for i, r := range ranks {
		if r.Name == "" {
			return Ladder{}, fmt.Errorf("%w: rank %d has no name", ErrInvalidLadder, i)
		}
		if i > 0 && r.Threshold <= ranks[i-1].Threshold {
			return Ladder{}, fmt.Errorf("%w: %q threshold %d does not exceed %q threshold %d",
				ErrInvalidLadder, r.Name, r.Threshold, ranks[i-1].Name, ranks[i-1].Threshold)
		}
	}

	cp := make([]Rank, len(ranks))
	copy(cp, ranks)
	return Ladder{ranks: cp}, nil
}

// DefaultRanks returns the stock rank table.
func DefaultRanks() []Rank {
	return []Rank{
		{Name: "Bronze beater", Threshold: 0},
		{Name: "Silver stroker", Threshold: 1000},
		{Name: "Golden gooner", Threshold: 2000},
		{Name: "Platinum puller", Threshold: 5000},
		{Name: "Emerald edger", Threshold: 8000},
		{Name: "Grandmaster baiter", Threshold: 10000},
	}
}

// DefaultLadder returns the ladder built from DefaultRanks.
func DefaultLadder() Ladder {
	l, err := NewLadder(DefaultRanks())
	if err != nil {
		panic(err) // stock table is static
	}
	return l
}

// Ranks returns a copy of the ladder's ranks in order.
func (l Ladder) Ranks() []Rank {
	out := make([]Rank, len(l.ranks))
	copy(out, l.ranks)
	return out
}

// Len returns the number of ranks.
func (l Ladder) Len() int { return len(l.ranks) }

// Index returns the position of the current rank for clicks.
// Counts below zero resolve to the first rank.
func (l Ladder) Index(clicks int) int {
	for i := len(l.ranks) - 1; i > 0; i-- {
		if clicks >= l.ranks[i].Threshold {
			return i
		}
	}
	return 0
}

// CurrentRank returns the highest rank whose threshold is <= clicks.
func (l Ladder) CurrentRank(clicks int) Rank {
	return l.ranks[l.Index(clicks)]
}

// NextRank returns the rank after the current one, or false at the top.
func (l Ladder) NextRank(clicks int) (Rank, bool) {
	i := l.Index(clicks) + 1
	if i >= len(l.ranks) {
		return Rank{}, false
	}
	return l.ranks[i], true
}

// Progress returns the percentage (0-100) of the way from the current
// rank's threshold to the next one. It is 100 at the top of the ladder.
func (l Ladder) Progress(clicks int) float64 {
	next, ok := l.NextRank(clicks)
	if !ok {
		return 100
	}
	cur := l.CurrentRank(clicks)

	pct := float64(clicks-cur.Threshold) / float64(next.Threshold-cur.Threshold) * 100
	if pct > 100 {
		// unreachable with monotonic increments; kept as a cap
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// Remaining returns how many clicks are left until the next rank, 0 at the top.
func (l Ladder) Remaining(clicks int) int {
	next, ok := l.NextRank(clicks)
	if !ok {
		return 0
	}
	return next.Threshold - clicks
}
