package domain

import "errors"

// Domain errors
var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrGameAlreadyStarted = errors.New("game already started")
	ErrGameFull           = errors.New("game is full")
	ErrNotEnoughPlayers   = errors.New("not enough players to start")
	ErrInvalidPhase       = errors.New("invalid action for current phase")
	ErrActorDead          = errors.New("actor is not alive")
	ErrTargetDead         = errors.New("target is not alive")
	ErrSelfTarget         = errors.New("cannot target yourself")
	ErrNoNightAction      = errors.New("role has no night action")
	ErrWrongActionKind    = errors.New("action kind does not match role")
	ErrActionFailed       = errors.New("night action failed")
)

// ErrorKind buckets errors for the callers that report them back to users.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindTransport
)

// Classify maps a domain error onto its kind. Unknown errors are internal.
func Classify(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrPlayerNotFound):
		return KindNotFound
	case errors.Is(err, ErrGameAlreadyStarted),
		errors.Is(err, ErrGameFull),
		errors.Is(err, ErrNotEnoughPlayers),
		errors.Is(err, ErrInvalidPhase),
		errors.Is(err, ErrActorDead),
		errors.Is(err, ErrTargetDead),
		errors.Is(err, ErrSelfTarget),
		errors.Is(err, ErrNoNightAction),
		errors.Is(err, ErrWrongActionKind),
		errors.Is(err, ErrActionFailed):
		return KindValidation
	default:
		return KindInternal
	}
}
