package awardsearch

import "strings"

// query is an ordered list of key/value pairs that encodes the way browsers
// serialize form data. Unlike url.Values it keeps insertion order, which the
// search tools' links depend on.
type query struct {
	pairs []pair
}

type pair struct {
	key, value string
}

// Set replaces the first value for key in place and drops any later ones, or
// appends the pair when key is new.
func (q *query) Set(key, value string) {
	idx := -1
	kept := q.pairs[:0]
	for _, p := range q.pairs {
		if p.key == key {
			if idx >= 0 {
				continue
			}
			idx = len(kept)
			p.value = value
		}
		kept = append(kept, p)
	}
	q.pairs = kept
	if idx < 0 {
		q.pairs = append(q.pairs, pair{key, value})
	}
}

// Add appends a pair even when key is already present.
func (q *query) Add(key, value string) {
	q.pairs = append(q.pairs, pair{key, value})
}

// Encode serializes the pairs as application/x-www-form-urlencoded.
func (q *query) Encode() string {
	var b strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(formEscape(p.key))
		b.WriteByte('=')
		b.WriteString(formEscape(p.value))
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

// formEscape keeps ASCII alphanumerics and *-._ as is, turns spaces into '+'
// and percent-encodes every other UTF-8 byte.
func formEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			c == '*', c == '-', c == '.', c == '_':
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		}
	}
	return b.String()
}
