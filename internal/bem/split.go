package bem

import (
	"regexp"
	"strings"
)

// whitespaceClass matches the characters treated as whitespace by editors
// and by JavaScript's \s: ASCII whitespace plus the Unicode space
// separators, line/paragraph separators and the byte order mark.
const whitespaceClass = `\t\n\x{000B}\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

var (
	topLevelDelimiter = regexp.MustCompile(`\.|[` + whitespaceClass + `]+`)
	bemSeparator      = regexp.MustCompile(`__|--`)
)

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// splitKeep splits s around every match of re and keeps the matches: even
// indices hold the text between matches (possibly empty), odd indices hold
// the matches themselves. strings.Join(splitKeep(re, s), "") == s.
func splitKeep(re *regexp.Regexp, s string) []string {
	matches := re.FindAllStringIndex(s, -1)
	out := make([]string, 0, 2*len(matches)+1)
	prev := 0
	for _, m := range matches {
		out = append(out, s[prev:m[0]], s[m[0]:m[1]])
		prev = m[1]
	}
	return append(out, s[prev:])
}
