package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/undercover/internal/common/clock"
	"github.com/KirkDiggler/undercover/internal/common/random"
	"github.com/KirkDiggler/undercover/internal/common/uuid"
	"github.com/KirkDiggler/undercover/internal/interpreter"
	"github.com/KirkDiggler/undercover/internal/llm"
	"github.com/KirkDiggler/undercover/internal/models"
	"github.com/KirkDiggler/undercover/internal/prompts"
	personaRepo "github.com/KirkDiggler/undercover/internal/repositories/persona"
	sessionRepo "github.com/KirkDiggler/undercover/internal/repositories/session"
	"github.com/KirkDiggler/undercover/internal/services/fallback"
	"github.com/KirkDiggler/undercover/internal/services/wordpair"
	"golang.org/x/sync/errgroup"
)

// service implements the Service interface
type service struct {
	sessionRepo   sessionRepo.Repository
	personaRepo   personaRepo.Repository
	wordPairs     wordpair.Service
	generator     llm.Generator
	composer      *prompts.Composer
	fallback      fallback.Service
	random        random.Source
	clock         clock.Clock
	uuidGenerator uuid.UUID

	attempts         int
	descriptionDelay time.Duration
	voteDelay        time.Duration
	speechDelay      time.Duration
	tieBreakPolicy   TieBreakPolicy

	// locks holds one *sync.Mutex per session id
	locks sync.Map
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.PersonaRepo == nil {
		return nil, ErrNilPersonaRepo
	}
	if cfg.WordPairs == nil {
		return nil, ErrNilWordPairs
	}
	if cfg.Generator == nil {
		return nil, ErrNilGenerator
	}
	if cfg.Composer == nil {
		return nil, ErrNilComposer
	}
	if cfg.Fallback == nil {
		return nil, ErrNilFallback
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.TieBreakPolicy != "" && !cfg.TieBreakPolicy.Valid() {
		return nil, fmt.Errorf("unknown tie-break policy %q", cfg.TieBreakPolicy)
	}

	svc := &service{
		sessionRepo:      cfg.SessionRepo,
		personaRepo:      cfg.PersonaRepo,
		wordPairs:        cfg.WordPairs,
		generator:        cfg.Generator,
		composer:         cfg.Composer,
		fallback:         cfg.Fallback,
		random:           cfg.Random,
		clock:            cfg.Clock,
		uuidGenerator:    cfg.UUIDGenerator,
		attempts:         cfg.GenerationAttempts,
		descriptionDelay: cfg.DescriptionRetryDelay,
		voteDelay:        cfg.VoteRetryDelay,
		speechDelay:      cfg.SpeechRetryDelay,
		tieBreakPolicy:   cfg.TieBreakPolicy,
	}

	// Set default values if not provided
	if svc.attempts <= 0 {
		svc.attempts = DefaultGenerationAttempts
	}
	if svc.descriptionDelay <= 0 {
		svc.descriptionDelay = DefaultDescriptionRetryDelay
	}
	if svc.voteDelay <= 0 {
		svc.voteDelay = DefaultVoteRetryDelay
	}
	if svc.speechDelay <= 0 {
		svc.speechDelay = DefaultSpeechRetryDelay
	}

	return svc, nil
}

// CreateSession seats the personas, picks the words and the saboteur
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if len(input.PersonaIDs) < MinSeats || len(input.PersonaIDs) > MaxSeats {
		return nil, ErrInvalidSeatCount
	}

	seats := make([]*models.Seat, 0, len(input.PersonaIDs))
	seen := make(map[string]bool, len(input.PersonaIDs))
	names := make(map[string]bool, len(input.PersonaIDs))
	for _, id := range input.PersonaIDs {
		if seen[id] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePersona, id)
		}
		seen[id] = true

		persona, err := s.getPersona(ctx, id)
		if err != nil {
			return nil, err
		}
		// votes are resolved by name, so names must be unique at the table
		if names[persona.Name] {
			return nil, fmt.Errorf("%w: name %s", ErrDuplicatePersona, persona.Name)
		}
		names[persona.Name] = true

		seats = append(seats, &models.Seat{
			PersonaID:   persona.ID,
			Name:        persona.Name,
			Personality: persona.Personality,
		})
	}

	words, err := s.wordPairs.SelectWordPair(ctx, &wordpair.SelectWordPairInput{
		Difficulty: input.Difficulty,
		Custom:     input.CustomPair,
	})
	if err != nil {
		return nil, err
	}

	maxRounds := input.MaxRounds
	if maxRounds <= 0 {
		maxRounds = len(seats)
	}

	now := s.clock.Now()
	session := &models.GameSession{
		ID:             s.uuidGenerator.NewUUID(),
		Seats:          seats,
		PublicWord:     words.PublicWord,
		UndercoverWord: words.UndercoverWord,
		Difficulty:     input.Difficulty,
		SaboteurSeat:   s.random.Intn(len(seats)),
		CurrentRound:   1,
		MaxRounds:      maxRounds,
		Eliminated:     []int{},
		Status:         models.SessionStatusInProgress,
		Phase:          models.PhaseDescribing,
		Winner:         models.WinnerNone,
		DescriptionLog: [][]*models.DescriptionEntry{},
		Eliminations:   []*models.Elimination{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{Session: session}); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &CreateSessionOutput{
		Session: session.Clone(),
	}, nil
}

// GetSession returns a snapshot of the session
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		Session: session,
	}, nil
}

// RecordDescription generates the seat's description for the current round.
// Recording a seat again replaces its entry. Seats must be recorded in seat
// order; the same-round context holds only lower-index seats that have already
// spoken, so a seat recorded early describes without it.
func (s *service) RecordDescription(ctx context.Context, input *RecordDescriptionInput) (*RecordDescriptionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	unlock := s.lockSession(input.SessionID)
	defer unlock()

	session, err := s.loadActiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Phase != models.PhaseDescribing {
		return nil, fmt.Errorf("%w: session is %s", ErrInvalidPhase, session.Phase)
	}
	if !session.ValidSeat(input.SeatIndex) {
		return nil, ErrInvalidSeat
	}
	if session.IsEliminated(input.SeatIndex) {
		return nil, ErrSeatEliminated
	}

	seat := session.Seats[input.SeatIndex]
	persona, err := s.getPersona(ctx, seat.PersonaID)
	if err != nil {
		return nil, err
	}

	round := session.CurrentRound
	messages := s.composer.DescriptionPrompt(&prompts.DescriptionPromptInput{
		Instructions:    persona.Instructions,
		Role:            session.RoleOf(input.SeatIndex),
		TargetWord:      session.TargetWord(input.SeatIndex),
		SpokenThisRound: spokenBefore(session, round, input.SeatIndex),
		PreviousRounds:  previousRounds(session, round),
	})

	text, ok, err := s.generate(ctx, "description for "+seat.Name, messages, s.descriptionDelay, interpreter.CleanDescription)
	if err != nil {
		return nil, err
	}

	isSaboteur := session.IsSaboteur(input.SeatIndex)
	if !ok {
		fb, err := s.fallback.GetDescription(ctx, &fallback.GetDescriptionInput{IsSaboteur: isSaboteur})
		if err != nil {
			return nil, fmt.Errorf("failed to get fallback description: %w", err)
		}
		log.Printf("Using fallback description for %s in session %s", seat.Name, session.ID)
		text = fb.Text
	}

	entry := &models.DescriptionEntry{
		Round:      round,
		SeatIndex:  input.SeatIndex,
		SeatName:   seat.Name,
		Text:       text,
		IsSaboteur: isSaboteur,
		Fallback:   !ok,
	}

	work := session.Clone()
	work.SetDescription(round, input.SeatIndex, entry)
	if err := s.commit(ctx, work); err != nil {
		return nil, err
	}

	return &RecordDescriptionOutput{
		Entry: entry,
	}, nil
}

// RunVotingPhase asks every non-eliminated seat for a vote, concurrently.
// A seat whose persona is missing does not vote; the others are unaffected.
func (s *service) RunVotingPhase(ctx context.Context, input *RunVotingPhaseInput) (*RunVotingPhaseOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	unlock := s.lockSession(input.SessionID)
	defer unlock()

	session, err := s.loadActiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Phase != models.PhaseDescribing && session.Phase != models.PhaseVoting {
		return nil, fmt.Errorf("%w: session is %s", ErrInvalidPhase, session.Phase)
	}

	active := session.ActiveSeats()
	descriptions := roundLines(session, session.CurrentRound, active)

	votes := make([]*models.VoteEntry, len(active))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(len(active))
	for i, voter := range active {
		i, voter := i, voter
		g.Go(func() error {
			vote, err := s.collectVote(gctx, session, voter, active, descriptions)
			if err != nil {
				if errors.Is(err, ErrPersonaNotFound) {
					log.Printf("Seat %d in session %s cannot vote: %v", voter, session.ID, err)
					return nil
				}
				return err
			}
			votes[i] = vote
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	collected := make([]*models.VoteEntry, 0, len(votes))
	for _, v := range votes {
		if v != nil {
			collected = append(collected, v)
		}
	}

	if session.Phase != models.PhaseVoting {
		work := session.Clone()
		work.Phase = models.PhaseVoting
		if err := s.commit(ctx, work); err != nil {
			return nil, err
		}
	}

	return &RunVotingPhaseOutput{
		Votes: collected,
	}, nil
}

// collectVote produces one seat's vote. Unparseable model text yields a vote
// with no target; exhausted generation yields a fallback vote.
func (s *service) collectVote(ctx context.Context, session *models.GameSession, voter int, active []int, descriptions []prompts.Line) (*models.VoteEntry, error) {
	seat := session.Seats[voter]
	persona, err := s.getPersona(ctx, seat.PersonaID)
	if err != nil {
		return nil, err
	}

	candidates := make([]interpreter.Candidate, 0, len(active))
	targetNames := make([]string, 0, len(active))
	for _, idx := range active {
		if idx == voter {
			continue
		}
		candidates = append(candidates, interpreter.Candidate{SeatIndex: idx, Name: session.Seats[idx].Name})
		targetNames = append(targetNames, session.Seats[idx].Name)
	}

	prompt := s.composer.VotePrompt(&prompts.VotePromptInput{
		Instructions: persona.Instructions,
		Personality:  persona.Personality,
		Role:         session.RoleOf(voter),
		OwnWord:      session.TargetWord(voter),
		Descriptions: descriptions,
		Targets:      targetNames,
	})

	raw, ok, err := s.generate(ctx, "vote for "+seat.Name, prompt.Messages, s.voteDelay, func(text string) (string, error) {
		text = strings.TrimSpace(text)
		if text == "" {
			return "", interpreter.ErrEmptyText
		}
		return text, nil
	})
	if err != nil {
		return nil, err
	}

	entry := &models.VoteEntry{
		VoterSeat:  voter,
		VoterName:  seat.Name,
		TargetSeat: models.NoTarget,
	}

	if !ok {
		targets := make([]fallback.Target, 0, len(candidates))
		for _, c := range candidates {
			targets = append(targets, fallback.Target{SeatIndex: c.SeatIndex, Name: c.Name})
		}
		fb, err := s.fallback.GetVote(ctx, &fallback.GetVoteInput{
			IsSaboteur: session.IsSaboteur(voter),
			Targets:    targets,
		})
		if err != nil {
			log.Printf("No fallback vote for %s: %v", seat.Name, err)
			return entry, nil
		}
		log.Printf("Using fallback vote for %s in session %s", seat.Name, session.ID)
		entry.TargetSeat = fb.Target.SeatIndex
		entry.TargetName = fb.Target.Name
		entry.Justification = fb.Reason
		entry.Raw = fb.Text
		entry.Fallback = true
		return entry, nil
	}

	entry.Raw = raw
	vote, err := interpreter.ParseVote(raw, candidates)
	if err != nil {
		log.Printf("Discarding vote from %s: %v", seat.Name, err)
		entry.Justification = raw
		return entry, nil
	}
	entry.TargetSeat = vote.TargetSeat
	entry.TargetName = vote.TargetName
	entry.Justification = vote.Justification

	return entry, nil
}

// ApplyVotes tallies the votes and eliminates the seat with the most. Votes
// for unknown or eliminated seats are ignored.
func (s *service) ApplyVotes(ctx context.Context, input *ApplyVotesInput) (*ApplyVotesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	unlock := s.lockSession(input.SessionID)
	defer unlock()

	session, err := s.loadActiveSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Phase != models.PhaseVoting {
		return nil, fmt.Errorf("%w: session is %s", ErrInvalidPhase, session.Phase)
	}

	tally := tallyVotes(session, input.Votes)
	if len(tally) == 0 {
		return nil, ErrVoteTallyEmpty
	}

	leaders := leadingSeats(tally)
	target := leaders[0]
	var tie *TieBreak
	if len(leaders) > 1 {
		policy := s.pickTieBreakPolicy()
		target = s.breakTie(session, policy, leaders)
		tie = &TieBreak{Policy: policy, Candidates: leaders}
		log.Printf("Tie between seats %v in session %s, %s picked seat %d", leaders, session.ID, policy, target)
	}

	work := session.Clone()
	result, err := s.eliminate(ctx, work, target)
	if err != nil {
		return nil, err
	}
	if !result.GameOver {
		work.CurrentRound++
		work.Phase = models.PhaseDescribing
	}

	if err := s.commit(ctx, work); err != nil {
		return nil, err
	}

	return &ApplyVotesOutput{
		EliminationResult: *result,
		Tally:             tally,
		TieBreak:          tie,
		NextRound:         work.CurrentRound,
	}, nil
}

// ManualEliminate removes a seat chosen by the host. It does not advance the
// round. Eliminating a seat that is already out changes nothing.
func (s *service) ManualEliminate(ctx context.Context, input *ManualEliminateInput) (*ManualEliminateOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	unlock := s.lockSession(input.SessionID)
	defer unlock()

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if !session.ValidSeat(input.SeatIndex) {
		return nil, ErrInvalidSeat
	}
	if session.IsEliminated(input.SeatIndex) {
		return &ManualEliminateOutput{
			EliminationResult: previousElimination(session, input.SeatIndex),
			AlreadyEliminated: true,
		}, nil
	}
	if session.IsFinished() {
		return nil, ErrSessionFinished
	}

	work := session.Clone()
	result, err := s.eliminate(ctx, work, input.SeatIndex)
	if err != nil {
		return nil, err
	}

	if err := s.commit(ctx, work); err != nil {
		return nil, err
	}

	return &ManualEliminateOutput{
		EliminationResult: *result,
	}, nil
}
