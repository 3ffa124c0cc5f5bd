package game

import (
	"github.com/KirkDiggler/undercover/internal/models"
	"github.com/KirkDiggler/undercover/internal/prompts"
)

// spokenBefore returns this round's descriptions from seats ahead of seat
func spokenBefore(session *models.GameSession, round, seat int) []prompts.Line {
	var lines []prompts.Line
	for idx, entry := range session.RoundDescriptions(round) {
		if idx >= seat {
			break
		}
		if entry != nil {
			lines = append(lines, prompts.Line{SeatName: entry.SeatName, Text: entry.Text})
		}
	}
	return lines
}

// previousRounds returns every description of the rounds before round
func previousRounds(session *models.GameSession, round int) []prompts.RoundLines {
	var rounds []prompts.RoundLines
	for r := 1; r < round; r++ {
		var lines []prompts.Line
		for _, entry := range session.RoundDescriptions(r) {
			if entry != nil {
				lines = append(lines, prompts.Line{SeatName: entry.SeatName, Text: entry.Text})
			}
		}
		rounds = append(rounds, prompts.RoundLines{Round: r, Lines: lines})
	}
	return rounds
}

// roundLines returns the round's descriptions from the given seats, in seat order
func roundLines(session *models.GameSession, round int, seats []int) []prompts.Line {
	entries := session.RoundDescriptions(round)
	lines := make([]prompts.Line, 0, len(seats))
	for _, idx := range seats {
		if idx < len(entries) && entries[idx] != nil {
			lines = append(lines, prompts.Line{SeatName: entries[idx].SeatName, Text: entries[idx].Text})
		}
	}
	return lines
}
