package transit

import "strings"

// MatchesStop reports whether the stop name contains the query, ignoring case.
// An empty query matches every stop.
func MatchesStop(stopName, query string) bool {
	return strings.Contains(strings.ToLower(stopName), strings.ToLower(query))
}
