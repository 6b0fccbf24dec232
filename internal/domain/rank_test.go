package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLadderScenarios(t *testing.T) {
	l := DefaultLadder()

	tests := []struct {
		clicks   int
		rank     string
		progress float64
	}{
		{clicks: 0, rank: "Bronze beater", progress: 0},
		{clicks: 500, rank: "Bronze beater", progress: 50},
		{clicks: 999, rank: "Bronze beater", progress: 99.9},
		{clicks: 1000, rank: "Silver stroker", progress: 0},
		{clicks: 3500, rank: "Golden gooner", progress: 50},
		{clicks: 9999, rank: "Emerald edger", progress: 99.95},
		{clicks: 10000, rank: "Grandmaster baiter", progress: 100},
		{clicks: 15000, rank: "Grandmaster baiter", progress: 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.rank, l.CurrentRank(tt.clicks).Name, "clicks=%d", tt.clicks)
		assert.InDelta(t, tt.progress, l.Progress(tt.clicks), 1e-9, "clicks=%d", tt.clicks)
	}
}

func TestCurrentRankIsUnique(t *testing.T) {
	l := DefaultLadder()
	ranks := l.Ranks()

	for clicks := 0; clicks <= 12000; clicks += 7 {
		matches := 0
		for i, r := range ranks {
			upper := int(^uint(0) >> 1)
			if i+1 < len(ranks) {
				upper = ranks[i+1].Threshold
			}
			if r.Threshold <= clicks && clicks < upper {
				matches++
				assert.Equal(t, r, l.CurrentRank(clicks))
			}
		}
		assert.Equal(t, 1, matches, "clicks=%d", clicks)
	}
}

func TestProgressMonotonicWithinRank(t *testing.T) {
	l := DefaultLadder()

	prev := l.SnapshotAt(0)
	for clicks := 1; clicks <= 10500; clicks++ {
		cur := l.SnapshotAt(clicks)
		if cur.RankIndex == prev.RankIndex {
			assert.GreaterOrEqual(t, cur.Progress, prev.Progress, "clicks=%d", clicks)
		} else {
			assert.True(t, cur.RankedUp(prev))
			if cur.Next != nil {
				assert.Less(t, cur.Progress, prev.Progress, "clicks=%d", clicks)
				assert.Zero(t, cur.Progress)
			}
		}
		prev = cur
	}
}

func TestNextRank(t *testing.T) {
	l := DefaultLadder()

	next, ok := l.NextRank(0)
	require.True(t, ok)
	assert.Equal(t, "Silver stroker", next.Name)

	_, ok = l.NextRank(10000)
	assert.False(t, ok)

	assert.Equal(t, 1000, l.Remaining(0))
	assert.Equal(t, 1, l.Remaining(9999))
	assert.Equal(t, 0, l.Remaining(20000))
}

func TestNegativeClicksClampToFirstRank(t *testing.T) {
	l := DefaultLadder()
	assert.Equal(t, "Bronze beater", l.CurrentRank(-5).Name)
	assert.Equal(t, 0.0, l.Progress(-5))
}

func TestNewLadderValidation(t *testing.T) {
	tests := []struct {
		name  string
		ranks []Rank
	}{
		{name: "empty", ranks: nil},
		{name: "first not zero", ranks: []Rank{{Name: "a", Threshold: 1}}},
		{name: "not increasing", ranks: []Rank{{Name: "a"}, {Name: "b", Threshold: 5}, {Name: "c", Threshold: 5}}},
		{name: "missing name", ranks: []Rank{{Name: "a"}, {Threshold: 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLadder(tt.ranks)
			assert.ErrorIs(t, err, ErrInvalidLadder)
		})
	}
}

func TestNewLadderCopiesInput(t *testing.T) {
	ranks := []Rank{{Name: "a"}, {Name: "b", Threshold: 3}}
	l, err := NewLadder(ranks)
	require.NoError(t, err)

	ranks[1].Name = "changed"
	assert.Equal(t, "b", l.CurrentRank(3).Name)
	assert.Equal(t, 2, l.Len())
}
