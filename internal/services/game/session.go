package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/undercover/internal/common/clock"
	"github.com/KirkDiggler/undercover/internal/llm"
	"github.com/KirkDiggler/undercover/internal/models"
	personaRepo "github.com/KirkDiggler/undercover/internal/repositories/persona"
	sessionRepo "github.com/KirkDiggler/undercover/internal/repositories/session"
)

// lockSession serializes operations on one session. The returned func unlocks.
func (s *service) lockSession(sessionID string) func() {
	mu, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// loadSession reads the record and rejects finished sessions
func (s *service) loadSession(ctx context.Context, sessionID string) (*models.GameSession, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: sessionID})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (s *service) loadActiveSession(ctx context.Context, sessionID string) (*models.GameSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsFinished() {
		return nil, ErrSessionFinished
	}
	return session, nil
}

// commit writes the working copy in one compare-and-set
func (s *service) commit(ctx context.Context, work *models.GameSession) error {
	work.UpdatedAt = s.clock.Now()

	if err := s.sessionRepo.UpdateSession(ctx, &sessionRepo.UpdateSessionInput{Session: work}); err != nil {
		if errors.Is(err, sessionRepo.ErrVersionConflict) {
			log.Printf("Session %s was modified concurrently at version %d", work.ID, work.Version)
		}
		return fmt.Errorf("failed to commit session: %w", err)
	}

	return nil
}

func (s *service) getPersona(ctx context.Context, personaID string) (*models.Persona, error) {
	persona, err := s.personaRepo.GetPersona(ctx, &personaRepo.GetPersonaInput{PersonaID: personaID})
	if err != nil {
		if errors.Is(err, personaRepo.ErrPersonaNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPersonaNotFound, personaID)
		}
		return nil, fmt.Errorf("failed to get persona: %w", err)
	}
	return persona, nil
}

// generate calls the model up to the configured number of attempts, passing
// each response through accept. ok is false when every attempt failed; err is
// only set when ctx ends while waiting.
func (s *service) generate(ctx context.Context, what string, messages []llm.Message, delay time.Duration, accept func(string) (string, error)) (text string, ok bool, err error) {
	for attempt := 1; attempt <= s.attempts; attempt++ {
		// a retry must reach the model; the previous text was rejected
		out, genErr := s.generator.Generate(ctx, &llm.GenerateInput{
			Messages:  messages,
			SkipCache: attempt > 1,
		})
		if genErr == nil {
			text, genErr = accept(out.Text)
			if genErr == nil {
				return text, true, nil
			}
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", false, ctxErr
		}
		log.Printf("Attempt %d/%d to generate %s failed: %v", attempt, s.attempts, what, genErr)

		if attempt < s.attempts && !clock.Sleep(s.clock, delay, ctx.Done()) {
			return "", false, ctx.Err()
		}
	}

	return "", false, nil
}
