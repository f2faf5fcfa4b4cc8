package codec

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/harrison/fsnamer/internal/models"
)

// Components is a filename split on its last dot.
type Components struct {
	Stem      string
	Extension string
}

// Split splits a bare filename on its last dot. A name without a dot has no
// extension; a leading-dot name such as ".txt" has an empty stem.
func Split(name string) Components {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return Components{Stem: name}
	}
	return Components{Stem: name[:idx], Extension: name[idx+1:]}
}

// Normalize returns the canonical form of a bare filename (no directory part)
// under the given convention.
//
// The stem is ASCII-folded and re-cased; the extension is ASCII-folded but
// keeps its case. An empty stem yields "."+extension. A name that folds to
// nothing at all is an EncodingError, as is a name that is not valid UTF-8.
func Normalize(name string, c Convention) (string, error) {
	if !utf8.ValidString(name) {
		return "", &models.EncodingError{Name: name}
	}

	parts := Split(name)
	stem := c.apply(splitWords(foldASCII(parts.Stem)))
	ext := foldASCII(parts.Extension)

	switch {
	case stem == "" && ext == "":
		return "", &models.EncodingError{Name: name, Reason: "no ASCII-representable characters left"}
	case stem == "":
		return "." + ext, nil
	case ext == "":
		return stem, nil
	}
	return stem + "." + ext, nil
}

// foldASCII decomposes s (NFD) and keeps only the 7-bit ASCII runes, so
// combining marks are dropped and their base letters survive.
func foldASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	return b.String()
}
