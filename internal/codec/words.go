package codec

import "strings"

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlnum(c byte) bool { return isLower(c) || isUpper(c) || isDigit(c) }

// splitWords segments an ASCII string into lower-cased words.
func splitWords(s string) []string {
	var words []string
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, strings.ToLower(s[start:end]))
		}
		start = -1
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isAlnum(c) {
			flush(i)
			continue
		}
		if start >= 0 {
			prev := s[i-1]
			switch {
			case isDigit(c) != isDigit(prev):
				flush(i)
			case isUpper(c) && isLower(prev) && (i-start > 1 || (i+1 < len(s) && isLower(s[i+1]))):
				// A lone lower-case letter followed by a capital ("mY", "aA")
				// stays one word; anything longer is a camel hump.
				flush(i)
			case isUpper(c) && isUpper(prev) && i+1 < len(s) && isLower(s[i+1]):
				flush(i)
			}
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(s))

	return words
}

// glueSingleLetters merges runs of adjacent one-letter words ("m", "y" -> "my").
// Without a separator their capitals would read back as a single acronym,
// so a second pass would produce a different name.
func glueSingleLetters(words []string) []string {
	out := make([]string, 0, len(words))
	gluing := false
	for _, w := range words {
		single := len(w) == 1 && !isDigit(w[0])
		if single && gluing {
			out[len(out)-1] += w
			continue
		}
		out = append(out, w)
		gluing = single
	}
	return out
}
