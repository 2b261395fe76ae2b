package lexicon

import "strings"

// Hyphen suffixes whose removal yields a meaningful base form
// ("l-shaped" -> "l", "cushioned" stays: the suffix must be hyphenated).
var unsuffixable = []string{"-shaped", "-ed"}

// NormalizeForms returns the known singular and plural forms of one
// lowercase word, plus hyphenation variants for hyphenated inputs.
// Deterministic, no I/O; the result always contains the input word
// first. Invariant nouns are not pluralized.
func (l *Lexicon) NormalizeForms(word string) []string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil
	}

	forms := []string{word}
	seen := map[string]struct{}{word: {}}
	add := func(f string) {
		if f == "" || f == word {
			return
		}
		if _, dup := seen[f]; dup {
			return
		}
		seen[f] = struct{}{}
		forms = append(forms, f)
	}

	if strings.Contains(word, "-") {
		add(strings.ReplaceAll(word, "-", " "))
		for _, suf := range unsuffixable {
			if base := strings.TrimSuffix(word, suf); base != word {
				add(base)
			}
		}
	}

	if _, invariant := l.invariant[word]; !invariant {
		add(singularOf(word))
		add(pluralOf(word))
	}

	return forms
}

// singularOf derives the singular form, or "" when the word already is one.
func singularOf(word string) string {
	switch {
	case len(word) > 3 && strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case len(word) > 2 && strings.HasSuffix(word, "es") && hasSibilantStem(word[:len(word)-2]):
		return word[:len(word)-2]
	case len(word) > 1 && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss"):
		return word[:len(word)-1]
	}
	return ""
}

// pluralOf derives the plural form, or "" for words that look plural already.
func pluralOf(word string) string {
	switch {
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss"):
		return ""
	case len(word) > 1 && strings.HasSuffix(word, "y") && !isVowel(word[len(word)-2]):
		return word[:len(word)-1] + "ies"
	case hasSibilantStem(word):
		return word + "es"
	}
	return word + "s"
}

// hasSibilantStem reports whether the stem takes an "-es" plural.
func hasSibilantStem(stem string) bool {
	switch {
	case strings.HasSuffix(stem, "ch"), strings.HasSuffix(stem, "sh"):
		return true
	case strings.HasSuffix(stem, "s"), strings.HasSuffix(stem, "x"), strings.HasSuffix(stem, "z"):
		return true
	}
	return false
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
