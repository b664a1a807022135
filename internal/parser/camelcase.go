package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type runeClass int

const (
	classNone runeClass = iota
	classLower
	classUpper
	classDigit
	classOther
)

func classOf(r rune) runeClass {
	switch {
	case unicode.IsLower(r):
		return classLower
	case unicode.IsUpper(r):
		return classUpper
	case unicode.IsDigit(r):
		return classDigit
	default:
		return classOther
	}
}

// splitCamel splits a CamelCase identifier into its words:
// "OutFilePath" gives "Out", "File", "Path" and "HTTPPort" gives "HTTP", "Port".
func splitCamel(src string) []string {
	if !utf8.ValidString(src) {
		return []string{src}
	}

	var runs [][]rune

	last := classNone

	for _, r := range src {
		class := classOf(r)
		if last != classNone && (class == last || class == classDigit) {
			runs[len(runs)-1] = append(runs[len(runs)-1], r)
		} else {
			runs = append(runs, []rune{r})
		}
		last = class
	}

	// An upper run followed by a lower one gives its last rune
	// to the lower run: "HTTPP"+"ort" becomes "HTTP"+"Port".
	for i := 0; i < len(runs)-1; i++ {
		if unicode.IsUpper(runs[i][0]) && unicode.IsLower(runs[i+1][0]) {
			tail := runs[i][len(runs[i])-1]
			runs[i+1] = append([]rune{tail}, runs[i+1]...)
			runs[i] = runs[i][:len(runs[i])-1]
		}
	}

	words := make([]string, 0, len(runs))
	for _, run := range runs {
		if len(run) > 0 {
			words = append(words, string(run))
		}
	}

	return words
}

// CamelToFlag transforms s from CamelCase to flag-case.
func CamelToFlag(s, flagDivider string) string {
	return strings.ToLower(strings.Join(splitCamel(s), flagDivider))
}
