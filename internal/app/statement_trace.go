package app

import (
	"strings"
	"unicode/utf8"
)

const maxTracedStatementBytes = 512

// traceStatement collapses warehouse SQL to one line for the db.statement
// attribute. Gold rebuild statements run long, so the text is capped.
func traceStatement(query string) string {
	flat := strings.Join(strings.Fields(query), " ")
	if len(flat) <= maxTracedStatementBytes {
		return flat
	}
	cut := maxTracedStatementBytes
	for cut > 0 && !utf8.RuneStart(flat[cut]) {
		cut--
	}
	return flat[:cut] + "..."
}
