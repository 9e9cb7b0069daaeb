package score

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scores(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func assertSortedCapped(t *testing.T, entries []Entry) {
	t.Helper()
	assert.LessOrEqual(t, len(entries), 5)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Score, entries[i].Score)
	}
}

func TestNormalize(t *testing.T) {
	in := []Entry{{Score: 3}, {Score: 9}, {Score: 1}, {Score: 7}, {Score: 5}, {Score: 8}, {Score: 2}}
	got := Normalize(in)
	assert.Equal(t, []int{9, 8, 7, 5, 3}, scores(got))
	assert.Equal(t, 3, in[0].Score, "input untouched")
}

func TestNormalizeStableTies(t *testing.T) {
	got := Normalize([]Entry{{Score: 5, Timestamp: "a"}, {Score: 5, Timestamp: "b"}, {Score: 6, Timestamp: "c"}})
	assert.Equal(t, []string{"c", "a", "b"}, []string{got[0].Timestamp, got[1].Timestamp, got[2].Timestamp})
}

func TestQualifies(t *testing.T) {
	lb := NewLeaderboard(nil)
	assert.True(t, lb.Qualifies(0))

	for _, s := range []int{100, 200, 300, 400, 500} {
		require.True(t, lb.Insert(s, "t"))
	}
	assert.False(t, lb.Qualifies(100), "equal to minimum")
	assert.False(t, lb.Qualifies(50))
	assert.True(t, lb.Qualifies(101))
}

func TestInsertKeepsTopFive(t *testing.T) {
	lb := NewLeaderboard(nil)
	for i := 0; i < 50; i++ {
		s := (i * 37) % 101
		lb.Insert(s, fmt.Sprintf("t%d", i))
		assertSortedCapped(t, lb.Entries())
	}
	assert.Equal(t, 5, lb.Len())
	assert.Equal(t, lb.Entries()[0].Score, lb.Best())
}

func TestInsertRejected(t *testing.T) {
	lb := NewLeaderboard([]Entry{{Score: 10}, {Score: 20}, {Score: 30}, {Score: 40}, {Score: 50}})
	before := lb.Entries()
	assert.False(t, lb.Insert(10, "x"))
	assert.Equal(t, before, lb.Entries())
}

func TestNewLeaderboardNormalizesOversizedInput(t *testing.T) {
	lb := NewLeaderboard([]Entry{{Score: 1}, {Score: 2}, {Score: 3}, {Score: 4}, {Score: 5}, {Score: 6}, {Score: 7}})
	assert.Equal(t, []int{7, 6, 5, 4, 3}, scores(lb.Entries()))
	assert.Zero(t, NewLeaderboard(nil).Best())
}
