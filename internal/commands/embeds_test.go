package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/ladder"
)

func TestLadderEmbed(t *testing.T) {
	players := []ladder.Player{
		{Name: "Alice", UserID: 111},
		{Name: "Bob"},
	}

	embed := LadderEmbed("Spring Ladder", players)

	assert.Equal(t, "Spring Ladder — Current Ladder", embed.Title)
	assert.Contains(t, embed.Description, "**#1**  <@111>")
	assert.Contains(t, embed.Description, "**#2**  Bob")
	require.NotNil(t, embed.Footer)
	assert.Contains(t, embed.Footer.Text, "/pairings")
}

func TestPairingsEmbed(t *testing.T) {
	players := []ladder.Player{
		{Name: "Alice"},
		{Name: "Bob"},
		{Name: "Carol"},
	}
	pairings := []ladder.Pairing{
		{A: 1, B: 2},
		{A: 3, B: 0},
	}

	embed := PairingsEmbed(4, pairings, players)

	assert.Equal(t, "Round 4 Pairings", embed.Title)
	lines := strings.Split(embed.Description, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "**#1** Alice  **vs**  **#2** Bob", lines[0])
	assert.Equal(t, "**#3** Carol — **BYE**", lines[1])
}

func TestHistoryEmbed(t *testing.T) {
	results := []ladder.Result{
		{Round: 2, Winner: "Bob", Loser: "Alice", Score: "6-4 6-3", Rule: ladder.RuleSwapOnly},
	}

	embed := HistoryEmbed(results)

	assert.Equal(t, "Recent Results", embed.Title)
	assert.Contains(t, embed.Description, "R2 — **Bob** def. **Alice** (6-4 6-3)")
	assert.Contains(t, embed.Description, string(ladder.RuleSwapOnly))
}

func TestTruncate(t *testing.T) {
	t.Run("ShortStringUnchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncate("hello", 10))
	})

	t.Run("ExactLimitUnchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncate("hello", 5))
	})

	t.Run("LongStringCutWithEllipsis", func(t *testing.T) {
		got := truncate(strings.Repeat("a", 30), 10)
		assert.Equal(t, strings.Repeat("a", 10)+"…", got)
	})

	t.Run("DoesNotSplitRunes", func(t *testing.T) {
		// "é" is two bytes; a limit of 3 lands mid-rune.
		got := truncate("aéé", 3)
		assert.Equal(t, "aé…", got)
	})
}
