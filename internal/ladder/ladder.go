// Package ladder implements the tennis ladder domain: ordered standings,
// promotion rules, weekly pairings and match history.
package ladder

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Rule determines how ranks move after a reported result.
type Rule string

const (
	// RuleSwapOnly swaps winner and loser only when the winner was ranked
	// below the loser.
	RuleSwapOnly Rule = "SWAP_ONLY"
	// RuleOneStepAlways moves the winner up one rank and the loser down one
	// rank regardless of their relative positions.
	RuleOneStepAlways Rule = "ONE_STEP_ALWAYS"
)

// ParseRule validates a user-supplied rule name.
func ParseRule(s string) (Rule, error) {
	switch Rule(strings.ToUpper(strings.TrimSpace(s))) {
	case RuleSwapOnly:
		return RuleSwapOnly, nil
	case RuleOneStepAlways:
		return RuleOneStepAlways, nil
	default:
		return "", fmt.Errorf("invalid rule %q: use %s or %s", s, RuleSwapOnly, RuleOneStepAlways)
	}
}

// Sentinel errors returned by ladder operations.
var (
	ErrEmptyLadder    = errors.New("no players on the ladder yet")
	ErrUnknownPlayer  = errors.New("could not identify player")
	ErrRankOutOfRange = errors.New("rank out of range")
	ErrSameRank       = errors.New("winner and loser ranks are the same")
)

// Player is one entry on the ladder. The slice index determines the rank:
// index 0 is rank 1.
type Player struct {
	Name string `json:"name"`
	// UserID links the entry to a Discord account. Zero means unlinked.
	UserID uint64 `json:"user_id,omitempty"`
}

// Display returns a Discord mention for linked players, the plain name
// otherwise.
func (p Player) Display() string {
	if p.UserID != 0 {
		return fmt.Sprintf("<@%d>", p.UserID)
	}

	return p.Name
}

// Pairing is a matchup between two 1-based ranks. B == 0 marks a BYE.
type Pairing struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Bye reports whether the pairing has no opponent.
func (p Pairing) Bye() bool {
	return p.B == 0
}

// Result records a reported match and the pre-match ranks.
type Result struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Round         int       `json:"round"`
	WinnerRankPre int       `json:"winner_rank_pre"`
	LoserRankPre  int       `json:"loser_rank_pre"`
	Winner        string    `json:"winner"`
	Loser         string    `json:"loser"`
	Score         string    `json:"score"`
	ReporterID    uint64    `json:"reporter_id,omitempty"`
	Rule          Rule      `json:"rule"`
}

// State is the full persisted ladder document.
type State struct {
	Players  []Player  `json:"players"`
	Pairings []Pairing `json:"pairings"`
	Round    int       `json:"round"`
	History  []Result  `json:"history"`
	Rule     Rule      `json:"rule"`
}

// NewState returns an empty ladder using the default promotion rule.
func NewState() *State {
	return &State{
		Players:  []Player{},
		Pairings: []Pairing{},
		History:  []Result{},
		Rule:     RuleSwapOnly,
	}
}

var mentionPattern = regexp.MustCompile(`^<@!?(\d+)>$`)

// FindPlayer resolves an identifier to a 0-based index. Accepted forms, in
// order: rank number, Discord mention, exact name (case-insensitive), unique
// case-insensitive substring.
func (st *State) FindPlayer(identifier string) (int, bool) {
	s := strings.TrimSpace(identifier)
	n := len(st.Players)

	if i, err := strconv.Atoi(s); err == nil {
		if i >= 1 && i <= n {
			return i - 1, true
		}

		return 0, false
	}

	if m := mentionPattern.FindStringSubmatch(s); m != nil {
		uid, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			return 0, false
		}
		for i, p := range st.Players {
			if p.UserID == uid {
				return i, true
			}
		}

		return 0, false
	}

	lowered := strings.ToLower(s)
	for i, p := range st.Players {
		if strings.ToLower(p.Name) == lowered {
			return i, true
		}
	}

	var matches []int
	for i, p := range st.Players {
		if strings.Contains(strings.ToLower(p.Name), lowered) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 1 {
		return matches[0], true
	}

	return 0, false
}

// AddPlayer appends a player at the bottom and returns the new 1-based rank.
func (st *State) AddPlayer(name string, userID uint64) int {
	st.Players = append(st.Players, Player{Name: name, UserID: userID})

	return len(st.Players)
}

// RemovePlayer removes a player by rank number or exact name
// (case-insensitive).
func (st *State) RemovePlayer(identifier string) (Player, error) {
	s := strings.TrimSpace(identifier)

	if i, err := strconv.Atoi(s); err == nil {
		if i < 1 || i > len(st.Players) {
			return Player{}, fmt.Errorf("%w: %d", ErrRankOutOfRange, i)
		}
		p := st.Players[i-1]
		st.Players = append(st.Players[:i-1], st.Players[i:]...)

		return p, nil
	}

	lowered := strings.ToLower(s)
	for i, p := range st.Players {
		if strings.ToLower(p.Name) == lowered {
			st.Players = append(st.Players[:i], st.Players[i+1:]...)

			return p, nil
		}
	}

	return Player{}, fmt.Errorf("%w: %s", ErrUnknownPlayer, identifier)
}

// SetRank moves the identified player to newRank, shifting everyone in
// between.
func (st *State) SetRank(identifier string, newRank int) (Player, error) {
	n := len(st.Players)
	if n == 0 {
		return Player{}, ErrEmptyLadder
	}
	if newRank < 1 || newRank > n {
		return Player{}, fmt.Errorf("%w: new rank must be between 1 and %d", ErrRankOutOfRange, n)
	}

	idx, ok := st.FindPlayer(identifier)
	if !ok {
		return Player{}, fmt.Errorf("%w: %s", ErrUnknownPlayer, identifier)
	}

	p := st.Players[idx]
	st.Players = append(st.Players[:idx], st.Players[idx+1:]...)
	st.Players = append(st.Players[:newRank-1], append([]Player{p}, st.Players[newRank-1:]...)...)

	return p, nil
}

// GeneratePairings pairs adjacent ranks (1v2, 3v4, ...). An odd tail gets a
// BYE. The round counter is incremented and the pairings replace the
// previous round's.
func (st *State) GeneratePairings() []Pairing {
	pairings := make([]Pairing, 0, (len(st.Players)+1)/2)
	for i := 0; i < len(st.Players); i += 2 {
		if i+1 < len(st.Players) {
			pairings = append(pairings, Pairing{A: i + 1, B: i + 2})
		} else {
			pairings = append(pairings, Pairing{A: i + 1})
		}
	}

	st.Pairings = pairings
	st.Round++

	return pairings
}

// ApplyResult records a match outcome and adjusts ranks per the active rule.
// Ranks are the pre-match 1-based positions.
func (st *State) ApplyResult(winnerRank, loserRank int, score string, reporterID uint64) (Result, error) {
	n := len(st.Players)
	if winnerRank < 1 || winnerRank > n || loserRank < 1 || loserRank > n {
		return Result{}, fmt.Errorf("%w: ranks must be between 1 and %d", ErrRankOutOfRange, n)
	}
	if winnerRank == loserRank {
		return Result{}, ErrSameRank
	}

	wi := winnerRank - 1
	li := loserRank - 1

	result := Result{
		ID:            uuid.NewString(),
		Timestamp:     time.Now().UTC(),
		Round:         st.Round,
		WinnerRankPre: winnerRank,
		LoserRankPre:  loserRank,
		Winner:        st.Players[wi].Name,
		Loser:         st.Players[li].Name,
		Score:         score,
		ReporterID:    reporterID,
		Rule:          st.Rule,
	}

	switch st.Rule {
	case RuleOneStepAlways:
		if wi > 0 {
			st.Players[wi-1], st.Players[wi] = st.Players[wi], st.Players[wi-1]
			// The loser may have been sitting directly above the winner,
			// in which case the swap already moved them down.
			if li == wi-1 {
				li = wi
			}
			wi--
		}
		if li < n-1 {
			st.Players[li+1], st.Players[li] = st.Players[li], st.Players[li+1]
		}
	default: // RuleSwapOnly
		if wi > li {
			st.Players[wi], st.Players[li] = st.Players[li], st.Players[wi]
		}
	}

	st.History = append(st.History, result)

	return result, nil
}

// RecentResults returns the last n history entries, newest last.
func (st *State) RecentResults(n int) []Result {
	if n <= 0 || len(st.History) == 0 {
		return nil
	}
	if n > len(st.History) {
		n = len(st.History)
	}

	out := make([]Result, n)
	copy(out, st.History[len(st.History)-n:])

	return out
}
