package score

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/sky-dodger/parameter"
)

// Entry is one leaderboard row
type Entry struct {
	Score     int    `yaml:"score"`
	Timestamp string `yaml:"timestamp"`
}

// Normalize sorts entries by score descending and keeps the top capacity
// Ties keep their original relative order
func Normalize(entries []Entry) []Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(out) > parameter.LeaderboardCapacity {
		out = out[:parameter.LeaderboardCapacity]
	}
	return out
}

// Leaderboard is the in-memory high score list, always normalized
// Not safe for concurrent use
type Leaderboard struct {
	entries []Entry
}

func NewLeaderboard(entries []Entry) *Leaderboard {
	return &Leaderboard{entries: Normalize(entries)}
}

// Entries returns a copy of the current list
func (l *Leaderboard) Entries() []Entry {
	return slices.Clone(l.entries)
}

func (l *Leaderboard) Len() int {
	return len(l.entries)
}

// Qualifies reports whether score would be inserted
// A score equal to the current minimum of a full board does not qualify
func (l *Leaderboard) Qualifies(score int) bool {
	if len(l.entries) < parameter.LeaderboardCapacity {
		return true
	}
	return score > l.entries[len(l.entries)-1].Score
}

// Insert adds the score if it qualifies and returns whether the list changed
func (l *Leaderboard) Insert(score int, timestamp string) bool {
	if !l.Qualifies(score) {
		return false
	}
	l.entries = Normalize(append(l.entries, Entry{Score: score, Timestamp: timestamp}))
	return true
}

// Best returns the top score, zero when empty
func (l *Leaderboard) Best() int {
	if len(l.entries) == 0 {
		return 0
	}
	return l.entries[0].Score
}
