package utils

import (
	"regexp"
	"strings"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern turns a user keyword into a substring pattern for ILIKE.
func LikePattern(keyword string) string {
	return "%" + likeEscaper.Replace(keyword) + "%"
}

// RegexPattern turns a user keyword into a literal, case-insensitive-ready regex.
func RegexPattern(keyword string) string {
	return regexp.QuoteMeta(keyword)
}

// PairKey is the direction-independent key of two user ids.
func PairKey(a, b string) string {
	if a < b {
		return a + ":" + b
	}
	return b + ":" + a
}
