package components

import (
	"github.com/mmcdole/clickrank/internal/domain"
	"github.com/mmcdole/clickrank/internal/tui/styles"
)

// RankBadge displays the current rank name, colored by tier
type RankBadge struct {
	rank domain.Rank
	tier int
}

// NewRankBadge creates a rank badge
func NewRankBadge() *RankBadge {
	return &RankBadge{}
}

// SetRank updates the badge text and tier color
func (b *RankBadge) SetRank(r domain.Rank, tier int) {
	b.rank = r
	b.tier = tier
}

// Rank returns the displayed rank
func (b *RankBadge) Rank() domain.Rank { return b.rank }

// Tier returns the displayed tier
func (b *RankBadge) Tier() int { return b.tier }

// View renders the badge
func (b *RankBadge) View() string {
	if b.rank.Name == "" {
		return ""
	}
	return styles.TierBadge(b.tier).Render(b.rank.Name)
}
