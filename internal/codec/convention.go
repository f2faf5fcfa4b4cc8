package codec

import (
	"fmt"
	"strings"
)

// Convention is a target case convention for filename stems.
type Convention int

const (
	KebabCase Convention = iota
	CamelCase
	PascalCase
	ScreamingSnakeCase
	SentenceCase
	SnakeCase
	TitleCase
	TrainCase
)

var conventionNames = map[Convention]string{
	KebabCase:          "kebab-case",
	CamelCase:          "camelCase",
	PascalCase:         "PascalCase",
	ScreamingSnakeCase: "SCREAMING_SNAKE_CASE",
	SentenceCase:       "Sentence_case",
	SnakeCase:          "snake_case",
	TitleCase:          "Title_Case",
	TrainCase:          "Train-Case",
}

// aliases are matched after lower-casing the input.
var conventionAliases = map[string]Convention{
	"kebab-case":           KebabCase,
	"kebab":                KebabCase,
	"camelcase":            CamelCase,
	"camel":                CamelCase,
	"pascalcase":           PascalCase,
	"pascal":               PascalCase,
	"screaming_snake_case": ScreamingSnakeCase,
	"screaming-snake-case": ScreamingSnakeCase,
	"screaming":            ScreamingSnakeCase,
	"sentence_case":        SentenceCase,
	"sentence-case":        SentenceCase,
	"sentence":             SentenceCase,
	"snake_case":           SnakeCase,
	"snake":                SnakeCase,
	"title_case":           TitleCase,
	"title-case":           TitleCase,
	"title":                TitleCase,
	"train-case":           TrainCase,
	"train":                TrainCase,
}

// Conventions returns the full catalog in declaration order.
func Conventions() []Convention {
	return []Convention{
		KebabCase,
		CamelCase,
		PascalCase,
		ScreamingSnakeCase,
		SentenceCase,
		SnakeCase,
		TitleCase,
		TrainCase,
	}
}

// ParseConvention accepts a canonical convention name or one of its short
// aliases, case-insensitively.
func ParseConvention(s string) (Convention, error) {
	c, ok := conventionAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return KebabCase, fmt.Errorf("unknown naming convention %q (see 'fsnamer conventions')", s)
	}
	return c, nil
}

func (c Convention) String() string {
	if name, ok := conventionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}

// Set implements the pflag.Value interface.
func (c *Convention) Set(s string) error {
	parsed, err := ParseConvention(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Type implements the pflag.Value interface.
func (c *Convention) Type() string {
	return "convention"
}

// separator returns the byte placed between words, or 0 for conventions that
// join words without one.
func (c Convention) separator() byte {
	switch c {
	case KebabCase, TrainCase:
		return '-'
	case ScreamingSnakeCase, SentenceCase, SnakeCase, TitleCase:
		return '_'
	default:
		return 0
	}
}

// apply joins lower-cased words according to the convention.
func (c Convention) apply(words []string) string {
	if len(words) == 0 {
		return ""
	}
	sep := c.separator()
	if sep == 0 {
		words = glueSingleLetters(words)
	}

	out := make([]string, len(words))
	for i, w := range words {
		switch c {
		case KebabCase, SnakeCase:
			out[i] = w
		case ScreamingSnakeCase:
			out[i] = strings.ToUpper(w)
		case PascalCase, TitleCase, TrainCase:
			out[i] = capitalize(w)
		case CamelCase:
			if i == 0 {
				out[i] = w
			} else {
				out[i] = capitalize(w)
			}
		case SentenceCase:
			if i == 0 {
				out[i] = capitalize(w)
			} else {
				out[i] = w
			}
		}
	}

	if sep == 0 {
		return strings.Join(out, "")
	}
	return strings.Join(out, string(sep))
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
