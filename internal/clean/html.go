// Package clean strips HTML markup from dataset cells so downstream
// tokenizers see plain text.
package clean

import "regexp"

// tagPattern matches a single HTML tag non-greedily. This is deliberately
// the naive substitution, not an HTML parser: cells hold scraped fragments,
// and angle brackets inside attribute values are out of scope.
var tagPattern = regexp.MustCompile(`<.*?>`)

// StripTags removes every HTML tag from s, leaving the text between tags
// untouched.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}
