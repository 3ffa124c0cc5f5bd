package models

import (
	"time"
)

// SessionStatus represents whether a game can still be played
type SessionStatus string

const (
	// SessionStatusInProgress indicates rounds are still being played
	SessionStatusInProgress SessionStatus = "in_progress"

	// SessionStatusFinished indicates a win condition fired; the record is read only
	SessionStatusFinished SessionStatus = "finished"
)

// Winner is the side that won a finished game
type Winner string

const (
	WinnerNone      Winner = ""
	WinnerCivilians Winner = "civilians"
	WinnerSaboteur  Winner = "saboteur"
)

// Phase is the step of the current round
type Phase string

const (
	// PhaseDescribing is entered on creation and after every elimination that does not end the game
	PhaseDescribing Phase = "describing"

	// PhaseVoting is entered once the voting phase has been run for the round
	PhaseVoting Phase = "voting"

	// PhaseFinished is terminal
	PhaseFinished Phase = "finished"
)

// Role is a seat's secret side. It is always derived from GameSession.SaboteurSeat.
type Role string

const (
	RoleCivilian Role = "civilian"
	RoleSaboteur Role = "saboteur"
)

// Seat is a stable slot occupied by one persona for the whole session
type Seat struct {
	// PersonaID references the external persona store
	PersonaID string

	// Name is the persona's display name at creation time
	Name string

	// Personality is the persona's declared traits, used to bias voting hints
	Personality string
}

// DescriptionEntry is one seat's utterance for one round
type DescriptionEntry struct {
	Round      int
	SeatIndex  int
	SeatName   string
	Text       string
	IsSaboteur bool

	// Fallback is set when the text came from the curated bank rather than the model
	Fallback bool
}

// Elimination records who left the game, when, and what they said
type Elimination struct {
	Round      int
	SeatIndex  int
	SeatName   string
	IsSaboteur bool
	Speech     string
}

// GameSession is the authoritative record of one Undercover game
type GameSession struct {
	// ID is the opaque session identifier
	ID string

	// Seats is fixed at creation; the index is the seat number
	Seats []*Seat

	PublicWord     string
	UndercoverWord string
	Difficulty     Difficulty

	// SaboteurSeat is chosen once at creation and never changes
	SaboteurSeat int

	CurrentRound int
	MaxRounds    int

	// Eliminated is append only and never holds a seat twice
	Eliminated []int

	Status SessionStatus
	Phase  Phase
	Winner Winner

	// DescriptionLog is indexed [round-1][seat]; nil entries are seats that have not spoken
	DescriptionLog [][]*DescriptionEntry

	Eliminations []*Elimination

	// Version increments on every committed write
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoleOf derives the role of a seat
func (g *GameSession) RoleOf(seat int) Role {
	if seat == g.SaboteurSeat {
		return RoleSaboteur
	}
	return RoleCivilian
}

// IsSaboteur reports whether seat holds the undercover word
func (g *GameSession) IsSaboteur(seat int) bool {
	return g.RoleOf(seat) == RoleSaboteur
}

// TargetWord returns the secret word the seat is describing
func (g *GameSession) TargetWord(seat int) string {
	if g.IsSaboteur(seat) {
		return g.UndercoverWord
	}
	return g.PublicWord
}

// ValidSeat reports whether seat addresses one of the session's seats
func (g *GameSession) ValidSeat(seat int) bool {
	return seat >= 0 && seat < len(g.Seats)
}

// IsEliminated reports whether seat has been voted out
func (g *GameSession) IsEliminated(seat int) bool {
	for _, idx := range g.Eliminated {
		if idx == seat {
			return true
		}
	}
	return false
}

// ActiveSeats returns the non-eliminated seat indices in seat order
func (g *GameSession) ActiveSeats() []int {
	active := make([]int, 0, len(g.Seats))
	for i := range g.Seats {
		if !g.IsEliminated(i) {
			active = append(active, i)
		}
	}
	return active
}

// IsFinished reports whether the session has reached a terminal state
func (g *GameSession) IsFinished() bool {
	return g.Status == SessionStatusFinished
}

// RoundDescriptions returns the sparse description list for a 1-based round,
// or nil if nothing has been recorded for it yet
func (g *GameSession) RoundDescriptions(round int) []*DescriptionEntry {
	if round < 1 || round > len(g.DescriptionLog) {
		return nil
	}
	return g.DescriptionLog[round-1]
}

// SetDescription stores entry at [round-1][seat], growing both dimensions as needed
func (g *GameSession) SetDescription(round, seat int, entry *DescriptionEntry) {
	for len(g.DescriptionLog) < round {
		g.DescriptionLog = append(g.DescriptionLog, []*DescriptionEntry{})
	}
	row := g.DescriptionLog[round-1]
	for len(row) <= seat {
		row = append(row, nil)
	}
	row[seat] = entry
	g.DescriptionLog[round-1] = row
}

// Clone returns a deep copy so callers can mutate a working buffer and commit it whole
func (g *GameSession) Clone() *GameSession {
	if g == nil {
		return nil
	}
	c := *g

	c.Seats = make([]*Seat, len(g.Seats))
	for i, s := range g.Seats {
		if s != nil {
			seat := *s
			c.Seats[i] = &seat
		}
	}

	c.Eliminated = append([]int(nil), g.Eliminated...)

	c.DescriptionLog = make([][]*DescriptionEntry, len(g.DescriptionLog))
	for r, row := range g.DescriptionLog {
		newRow := make([]*DescriptionEntry, len(row))
		for s, entry := range row {
			if entry != nil {
				e := *entry
				newRow[s] = &e
			}
		}
		c.DescriptionLog[r] = newRow
	}

	c.Eliminations = make([]*Elimination, len(g.Eliminations))
	for i, e := range g.Eliminations {
		if e != nil {
			el := *e
			c.Eliminations[i] = &el
		}
	}

	return &c
}
