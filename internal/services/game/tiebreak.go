package game

import (
	"sort"

	"github.com/KirkDiggler/undercover/internal/common/random"
	"github.com/KirkDiggler/undercover/internal/models"
)

// tallyVotes counts one vote per active voter for another active seat
func tallyVotes(session *models.GameSession, votes []*models.VoteEntry) map[int]int {
	tally := make(map[int]int)
	voted := make(map[int]bool, len(votes))
	for _, v := range votes {
		if !v.Valid() || !session.ValidSeat(v.TargetSeat) || session.IsEliminated(v.TargetSeat) {
			continue
		}
		if !session.ValidSeat(v.VoterSeat) || session.IsEliminated(v.VoterSeat) {
			continue
		}
		if v.VoterSeat == v.TargetSeat || voted[v.VoterSeat] {
			continue
		}
		voted[v.VoterSeat] = true
		tally[v.TargetSeat]++
	}
	return tally
}

// leadingSeats returns the seats with the most votes in ascending seat order
func leadingSeats(tally map[int]int) []int {
	best := 0
	for _, n := range tally {
		if n > best {
			best = n
		}
	}

	var leaders []int
	for seat, n := range tally {
		if n == best {
			leaders = append(leaders, seat)
		}
	}
	sort.Ints(leaders)
	return leaders
}

func (s *service) pickTieBreakPolicy() TieBreakPolicy {
	if s.tieBreakPolicy != "" {
		return s.tieBreakPolicy
	}
	return random.Pick(s.random, TieBreakPolicies)
}

// breakTie applies policy to the tied candidates
func (s *service) breakTie(session *models.GameSession, policy TieBreakPolicy, candidates []int) int {
	switch policy {
	case TieBreakSaboteurPriority:
		for _, seat := range candidates {
			if session.IsSaboteur(seat) {
				return seat
			}
		}

	case TieBreakCivilianPriority:
		civilians := make([]int, 0, len(candidates))
		for _, seat := range candidates {
			if !session.IsSaboteur(seat) {
				civilians = append(civilians, seat)
			}
		}
		if len(civilians) > 0 {
			return random.Pick(s.random, civilians)
		}

	case TieBreakWeightedRandom:
		weights := make([]float64, len(candidates))
		for i, seat := range candidates {
			weights[i] = 1.0
			if session.IsSaboteur(seat) {
				weights[i] *= 0.8
			}
			if session.CurrentRound > 1 {
				weights[i] *= random.Uniform(s.random, 0.7, 1.3)
			}
		}
		return candidates[random.Weighted(s.random, weights)]
	}

	return random.Pick(s.random, candidates)
}
