/*
Package trick implements the permutation encoding behind the five-card trick.

Given N distinct values drawn from [0, M), the encoder holds one of them back
and arranges the remaining N-1 so that their order identifies the held-back
value. Orderings are ranked and unranked with the factorial number system
(Lehmer code); ranks are 1-based.

A set size of N can address every value modulo M only if

	(N-1)! * 2 + (N-1) >= M

which for a 52-card deck means hands of five cards.
*/
package trick

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cardtrick'
func tracer() tracing.Trace {
	return tracing.Select("cardtrick")
}
