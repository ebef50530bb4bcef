// Package deck maps playing cards to the numbers the trick package encodes, so
// that a hand of five cards from a standard deck can be performed and reversed
// by name.
package deck

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cardtrick'
func tracer() tracing.Trace {
	return tracing.Select("cardtrick")
}
