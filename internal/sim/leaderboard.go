package sim

import "sort"

// LeaderboardSize is the maximum number of scores retained per tier.
const LeaderboardSize = 5

// Leaderboards holds the per-tier top scores, sorted descending and
// truncated to LeaderboardSize. Persistence is an external collaborator:
// boards are loaded once at startup and the platform writes changes back.
type Leaderboards struct {
	byTier map[Tier][]int
}

// NewLeaderboards creates empty leaderboards for all tiers.
func NewLeaderboards() *Leaderboards {
	return &Leaderboards{byTier: make(map[Tier][]int)}
}

// Load replaces the board for a tier with previously persisted scores.
// Input is sanitized rather than trusted: negative entries are dropped and
// the result is re-sorted and truncated, so malformed data degrades to a
// shorter board instead of an error.
func (l *Leaderboards) Load(t Tier, scores []int) {
	board := make([]int, 0, LeaderboardSize)
	for _, s := range scores {
		if s < 0 {
			continue
		}
		board = append(board, s)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(board)))
	if len(board) > LeaderboardSize {
		board = board[:LeaderboardSize]
	}
	l.byTier[t] = board
}

// Record inserts a score into the tier's board. Returns true if the board
// changed, i.e. the score ranked within the combined top LeaderboardSize.
func (l *Leaderboards) Record(t Tier, score int) bool {
	board, changed := insertScore(l.byTier[t], score)
	if changed {
		l.byTier[t] = board
	}
	return changed
}

// Top returns a copy of the tier's board, best first.
func (l *Leaderboards) Top(t Tier) []int {
	board := l.byTier[t]
	out := make([]int, len(board))
	copy(out, board)
	return out
}

// Best returns the highest recorded score for a tier, or 0 if the board is
// empty.
func (l *Leaderboards) Best(t Tier) int {
	board := l.byTier[t]
	if len(board) == 0 {
		return 0
	}
	return board[0]
}

// insertScore merges a score into a descending board, keeping at most
// LeaderboardSize entries. The second return value reports whether the
// score made the cut.
func insertScore(board []int, score int) ([]int, bool) {
	if len(board) == LeaderboardSize && score <= board[len(board)-1] {
		return board, false
	}

	out := make([]int, 0, LeaderboardSize+1)
	out = append(out, board...)
	out = append(out, score)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	if len(out) > LeaderboardSize {
		out = out[:LeaderboardSize]
	}
	return out, true
}
