package engine

import "fmt"

// Code identifies why an operation was refused. Codes are part of the
// wire contract: the API layer maps them to HTTP statuses and clients
// branch on them.
type Code string

const (
	// Validation: retryable by the caller with a corrected amount.
	CodeInvalidIncrement  Code = "INVALID_INCREMENT"
	CodeInsufficientPurse Code = "INSUFFICIENT_PURSE"
	CodeReserveViolation  Code = "RESERVE_VIOLATION"
	CodeNoOpenSlot        Code = "NO_OPEN_SLOT"

	// Conflict: the caller's view was stale; carries the fresh truth.
	CodeBidOutdated Code = "BID_OUTDATED"

	// State: terminal for this request.
	CodeAuctionNotLive     Code = "AUCTION_NOT_LIVE"
	CodeNoWinningBid       Code = "NO_WINNING_BID"
	CodeNoBidToUndo        Code = "NO_BID_TO_UNDO"
	CodeNothingToUndo      Code = "NOTHING_TO_UNDO"
	CodeCaptainNotUndoable Code = "CAPTAIN_NOT_UNDOABLE"
	CodeNoEligiblePlayer   Code = "NO_ELIGIBLE_PLAYER"
	CodeInvalidTransition  Code = "INVALID_TRANSITION"
	CodePlayerNotOpen      Code = "PLAYER_NOT_OPEN"

	// Contention: the per-player section could not be entered in time.
	// Safe to retry as-is.
	CodeLockTimeout Code = "LOCK_TIMEOUT"
)

// Error is a refusal from the engine. It is a structured result, not a
// fault: infrastructure failures travel as ordinary wrapped errors and
// never carry a Code.
type Error struct {
	Code    Code
	Message string

	// Suggested carries the nearest legal amount on INVALID_INCREMENT.
	Suggested int64
	// Current and NextRequired carry the authoritative winning amount
	// and the recomputed next legal bid on BID_OUTDATED.
	Current      int64
	NextRequired int64
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Retryable reports whether resubmitting the same request may succeed
// without the caller changing anything.
func (e *Error) Retryable() bool {
	return e.Code == CodeLockTimeout
}

func refusal(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsRefusal unwraps err into an engine refusal, or nil when err is an
// infrastructure fault.
func AsRefusal(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return nil
}
