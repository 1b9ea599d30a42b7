// Package casefile supplies the estate, the suspects and the clue -> suspect
// mapping an investigation runs on, either from the built-in mansion or from a
// YAML case file.
package casefile

import "errors"

// MaxDepth bounds how deep a loaded estate may be. Tree operations recurse
// once per level.
const MaxDepth = 64

// Estate errors
var (
	// ErrNoEstate indicates that a case file has no root room.
	ErrNoEstate = errors.New("case file has no estate")

	// ErrEmptyRoomName indicates a room without a name.
	ErrEmptyRoomName = errors.New("room name is empty")

	// ErrEstateTooDeep indicates an estate deeper than MaxDepth.
	ErrEstateTooDeep = errors.New("estate is too deep")
)

// Suspect errors
var (
	// ErrNoSuspects indicates that a case file lists no suspects.
	ErrNoSuspects = errors.New("case file has no suspects")

	// ErrDuplicateSuspect indicates a suspect listed more than once.
	ErrDuplicateSuspect = errors.New("duplicate suspect")
)
