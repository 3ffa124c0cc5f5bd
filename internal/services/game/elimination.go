package game

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/undercover/internal/interpreter"
	"github.com/KirkDiggler/undercover/internal/models"
	"github.com/KirkDiggler/undercover/internal/prompts"
	"github.com/KirkDiggler/undercover/internal/services/fallback"
)

// eliminate removes seat from the working copy, records its speech and
// evaluates the win conditions. It leaves round and phase alone unless the
// game ends.
func (s *service) eliminate(ctx context.Context, work *models.GameSession, seat int) (*EliminationResult, error) {
	info := work.Seats[seat]
	isSaboteur := work.IsSaboteur(seat)

	work.Eliminated = append(work.Eliminated, seat)

	speech, err := s.eliminationSpeech(ctx, work, seat)
	if err != nil {
		return nil, err
	}

	work.Eliminations = append(work.Eliminations, &models.Elimination{
		Round:      work.CurrentRound,
		SeatIndex:  seat,
		SeatName:   info.Name,
		IsSaboteur: isSaboteur,
		Speech:     speech,
	})

	switch {
	case isSaboteur:
		finish(work, models.WinnerCivilians)
	case len(work.ActiveSeats()) <= 2:
		finish(work, models.WinnerSaboteur)
	}

	return &EliminationResult{
		EliminatedSeat: seat,
		EliminatedName: info.Name,
		WasSaboteur:    isSaboteur,
		Speech:         speech,
		GameOver:       work.IsFinished(),
		Winner:         work.Winner,
	}, nil
}

func finish(work *models.GameSession, winner models.Winner) {
	work.Status = models.SessionStatusFinished
	work.Phase = models.PhaseFinished
	work.Winner = winner
}

// eliminationSpeech asks the model for the seat's parting words and falls back
// to the curated bank. A missing persona only costs the persona instructions.
func (s *service) eliminationSpeech(ctx context.Context, work *models.GameSession, seat int) (string, error) {
	info := work.Seats[seat]
	isSaboteur := work.IsSaboteur(seat)

	var instructions string
	persona, err := s.getPersona(ctx, info.PersonaID)
	if err != nil {
		log.Printf("Error getting persona for %s speech: %v", info.Name, err)
	} else {
		instructions = persona.Instructions
	}

	messages := s.composer.EliminationSpeechPrompt(&prompts.SpeechPromptInput{
		Name:           info.Name,
		Personality:    info.Personality,
		Instructions:   instructions,
		IsSaboteur:     isSaboteur,
		Round:          work.CurrentRound,
		PublicWord:     work.PublicWord,
		UndercoverWord: work.UndercoverWord,
	})

	speech, ok, err := s.generate(ctx, "elimination speech for "+info.Name, messages, s.speechDelay, interpreter.CleanSpeech)
	if err != nil {
		return "", err
	}
	if ok {
		return speech, nil
	}

	fb, err := s.fallback.GetSpeech(ctx, &fallback.GetSpeechInput{Name: info.Name, IsSaboteur: isSaboteur})
	if err != nil {
		return "", fmt.Errorf("failed to get fallback speech: %w", err)
	}
	log.Printf("Using fallback speech for %s in session %s", info.Name, work.ID)
	return fb.Text, nil
}

// previousElimination rebuilds the result of an elimination that already happened
func previousElimination(session *models.GameSession, seat int) EliminationResult {
	result := EliminationResult{
		EliminatedSeat: seat,
		EliminatedName: session.Seats[seat].Name,
		WasSaboteur:    session.IsSaboteur(seat),
		GameOver:       session.IsFinished(),
		Winner:         session.Winner,
	}
	for _, e := range session.Eliminations {
		if e != nil && e.SeatIndex == seat {
			result.Speech = e.Speech
			break
		}
	}
	return result
}
