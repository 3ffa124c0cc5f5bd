package fallback

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/undercover/internal/common/random"
	"github.com/KirkDiggler/undercover/internal/interpreter"
)

// ErrNoTargets is returned when a fallback vote has nobody to vote for
var ErrNoTargets = errors.New("no eligible vote targets")

type service struct {
	random random.Source
}

// NewService creates a new fallback service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}
	if config.Random == nil {
		return nil, errors.New("random source cannot be nil")
	}

	return &service{
		random: config.Random,
	}, nil
}

// GetDescription returns a canned description for the seat's role
func (s *service) GetDescription(ctx context.Context, input *GetDescriptionInput) (*GetDescriptionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	bank := civilianDescriptions
	if input.IsSaboteur {
		bank = saboteurDescriptions
	}

	return &GetDescriptionOutput{
		Text: random.Pick(s.random, bank),
	}, nil
}

// GetVote picks a uniformly random target and a canned reason
func (s *service) GetVote(ctx context.Context, input *GetVoteInput) (*GetVoteOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if len(input.Targets) == 0 {
		return nil, ErrNoTargets
	}

	target := random.Pick(s.random, input.Targets)

	reasons := civilianVoteReasons
	if input.IsSaboteur {
		reasons = saboteurVoteReasons
	}
	reason := random.Pick(s.random, reasons)

	return &GetVoteOutput{
		Target: target,
		Reason: reason,
		Text:   fmt.Sprintf("投票给：%s，理由：%s", target.Name, reason),
	}, nil
}

// GetSpeech returns a bank speech, or the minimal one when the bank entry is
// out of the speech length bound (very long or very short names)
func (s *service) GetSpeech(ctx context.Context, input *GetSpeechInput) (*GetSpeechOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	bank, minimal := civilianSpeeches, minimalCivilianSpeech
	if input.IsSaboteur {
		bank, minimal = saboteurSpeeches, minimalSaboteurSpeech
	}

	speech := fmt.Sprintf(random.Pick(s.random, bank), input.Name)
	if interpreter.ValidSpeech(speech) {
		return &GetSpeechOutput{Text: speech}, nil
	}

	return &GetSpeechOutput{
		Text:    fmt.Sprintf(minimal, input.Name),
		Minimal: true,
	}, nil
}
