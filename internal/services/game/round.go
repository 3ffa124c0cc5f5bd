package game

import (
	"context"
	"errors"
	"log"

	"github.com/KirkDiggler/undercover/internal/models"
)

// PlayRound describes every non-eliminated seat that has not spoken yet this
// round, then votes and applies the result. A round left in the voting phase
// by an empty tally resumes at the vote.
func (s *service) PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	session, err := s.loadActiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	out := &PlayRoundOutput{
		Round: session.CurrentRound,
	}

	if session.Phase == models.PhaseDescribing {
		spoken := session.RoundDescriptions(session.CurrentRound)
		for _, seat := range session.ActiveSeats() {
			if seat < len(spoken) && spoken[seat] != nil {
				out.Descriptions = append(out.Descriptions, spoken[seat])
				continue
			}

			described, err := s.RecordDescription(ctx, &RecordDescriptionInput{
				SessionID: input.SessionID,
				SeatIndex: seat,
			})
			if errors.Is(err, ErrPersonaNotFound) {
				log.Printf("Skipping description for seat %d: %v", seat, err)
				continue
			}
			if err != nil {
				return out, err
			}
			out.Descriptions = append(out.Descriptions, described.Entry)
		}
	}

	voting, err := s.RunVotingPhase(ctx, &RunVotingPhaseInput{SessionID: input.SessionID})
	if err != nil {
		return out, err
	}
	out.Votes = voting.Votes

	result, err := s.ApplyVotes(ctx, &ApplyVotesInput{
		SessionID: input.SessionID,
		Votes:     voting.Votes,
	})
	if err != nil {
		return out, err
	}
	out.Result = result

	return out, nil
}
