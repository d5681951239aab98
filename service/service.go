// Package service holds one façade per entity. Façades run validation,
// enforce cross-entity invariants (existence checks, deletion guards),
// own transactions, and assemble composite read results. They report
// failures through the apperr taxonomy; anything else that escapes is a
// store error.
package service

import (
	"strconv"
	"strings"
)

// parseID resolves a body-carried string id. Ids that do not parse cannot
// reference an existing row, so callers treat a false result like a lookup
// miss.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return id, err == nil && id > 0
}
