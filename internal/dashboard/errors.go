package dashboard

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the aggregators.
var (
	// ErrInvalidTicker means the ticker could not be validated against the
	// market-data provider. A provider outage looks the same as an unknown
	// symbol; both leave the session unchanged.
	ErrInvalidTicker = errors.New("invalid ticker")

	// ErrPriceUnavailable means the provider reported no usable current
	// price, so a per-share quantity cannot be computed.
	ErrPriceUnavailable = errors.New("current price unavailable")

	// ErrBadAmount means the investment amount did not parse as a positive
	// number.
	ErrBadAmount = errors.New("amount must be a positive number")
)

// MissingRowError reports a required statement line item absent from a
// provider statement. Statement rows are structural: the whole page
// fails rather than rendering a partial table.
type MissingRowError struct {
	Statement string
	Label     string
}

func (e *MissingRowError) Error() string {
	return fmt.Sprintf("%s statement is missing required row %q", e.Statement, e.Label)
}
