package commands

import (
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/ladder"
)

const (
	ladderEmbedColor   discord.Color = 0x2B7CFF
	pairingsEmbedColor discord.Color = 0x00B894
	historyEmbedColor  discord.Color = 0x6C5CE7
)

// LadderEmbed renders the current standings.
func LadderEmbed(ladderName string, players []ladder.Player) discord.Embed {
	lines := make([]string, len(players))
	for i, p := range players {
		lines[i] = fmt.Sprintf("**#%d**  %s", i+1, p.Display())
	}

	return discord.Embed{
		Title:       ladderName + " — Current Ladder",
		Description: strings.Join(lines, "\n"),
		Color:       ladderEmbedColor,
		Footer: &discord.EmbedFooter{
			Text: "Pairings update via /pairings",
		},
	}
}

// PairingsEmbed renders a round of pairings, BYEs included.
func PairingsEmbed(round int, pairings []ladder.Pairing, players []ladder.Player) discord.Embed {
	lines := make([]string, len(pairings))
	for i, p := range pairings {
		if p.Bye() {
			lines[i] = fmt.Sprintf("**#%d** %s — **BYE**", p.A, players[p.A-1].Name)

			continue
		}
		lines[i] = fmt.Sprintf("**#%d** %s  **vs**  **#%d** %s",
			p.A, players[p.A-1].Name, p.B, players[p.B-1].Name)
	}

	return discord.Embed{
		Title:       fmt.Sprintf("Round %d Pairings", round),
		Description: strings.Join(lines, "\n"),
		Color:       pairingsEmbedColor,
	}
}

// HistoryEmbed renders recent match results.
func HistoryEmbed(results []ladder.Result) discord.Embed {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = fmt.Sprintf("R%d — **%s** def. **%s** (%s) — rule %s",
			r.Round, r.Winner, r.Loser, r.Score, r.Rule)
	}

	return discord.Embed{
		Title:       "Recent Results",
		Description: strings.Join(lines, "\n"),
		Color:       historyEmbedColor,
	}
}
