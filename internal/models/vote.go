package models

// NoTarget marks a vote whose target could not be resolved to a seat
const NoTarget = -1

// VoteEntry is one seat's vote in a voting phase. It is never persisted.
type VoteEntry struct {
	VoterSeat int
	VoterName string

	// TargetSeat is NoTarget when the response could not be resolved
	TargetSeat int
	TargetName string

	Justification string

	// Raw is the text the vote was parsed from
	Raw string

	// Fallback is set when the vote came from the curated bank
	Fallback bool
}

// Valid reports whether the vote resolved to a seat
func (v *VoteEntry) Valid() bool {
	return v != nil && v.TargetSeat != NoTarget
}
