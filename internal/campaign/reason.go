package campaign

import (
	"errors"

	"wargame/internal/journal"
	"wargame/internal/roster"
)

// Reason codes reported to callers alongside a failed command.
const (
	ReasonDuplicateUnit      = "duplicate_unit"
	ReasonDuplicateBattalion = "duplicate_battalion"
	ReasonDuplicateBattle    = "duplicate_battle"
	ReasonUnknownUnit        = "unknown_unit"
	ReasonUnknownBattalion   = "unknown_battalion"
	ReasonUnknownBattle      = "unknown_battle"
	ReasonEmptyName          = "empty_name"
	ReasonReservedName       = "reserved_name"
	ReasonInvalidUnit        = "invalid_unit"
	ReasonUnitParticipating  = "unit_participating"
	ReasonAlreadyAdded       = "already_participating"
	ReasonSideMismatch       = "side_mismatch"
	ReasonInvalidParty       = "invalid_party"
	ReasonInvalidFile        = "invalid_file"
	ReasonIO                 = "io_error"
	ReasonInternal           = "internal"
)

var reasons = []struct {
	err    error
	reason string
}{
	{roster.ErrDuplicateUnit, ReasonDuplicateUnit},
	{roster.ErrDuplicateBattalion, ReasonDuplicateBattalion},
	{journal.ErrDuplicateBattle, ReasonDuplicateBattle},
	{roster.ErrUnknownUnit, ReasonUnknownUnit},
	{roster.ErrUnknownBattalion, ReasonUnknownBattalion},
	{journal.ErrUnknownBattle, ReasonUnknownBattle},
	{roster.ErrEmptyName, ReasonEmptyName},
	{journal.ErrEmptyName, ReasonEmptyName},
	{journal.ErrReservedName, ReasonReservedName},
	{roster.ErrInvalidUnit, ReasonInvalidUnit},
	{ErrUnitParticipating, ReasonUnitParticipating},
	{ErrAlreadyParticipating, ReasonAlreadyAdded},
	{ErrSideMismatch, ReasonSideMismatch},
	{ErrInvalidParty, ReasonInvalidParty},
	{roster.ErrInvalidFile, ReasonInvalidFile},
	{journal.ErrInvalidFile, ReasonInvalidFile},
	{ErrIO, ReasonIO},
}

// ReasonOf maps an error returned by a Model command onto its reason code.
// Nil maps to "".
func ReasonOf(err error) string {
	if err == nil {
		return ""
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ReasonInternal
}
