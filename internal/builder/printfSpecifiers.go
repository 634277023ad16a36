package builder

import (
	"unicode"

	"golang.org/x/text/runes"
)

// specifierKind classifies one scanned printf specifier to the argument
// type it expects (§4.1.5).
type specifierKind int

const (
	specInt specifierKind = iota
	specChar
	specFloat
	specString
)

// asciiSpecifiers and cyrillicSpecifiers both map to the same specifier
// kinds; the Cyrillic aliases exist because this C-dialect's source
// programs are written with Cyrillic format letters as often as Latin
// ones.
var asciiSpecifiers = map[rune]specifierKind{
	'i': specInt, 'c': specChar, 'f': specFloat, 's': specString,
}

var cyrillicSpecifiers = map[rune]specifierKind{
	'ц': specInt, 'л': specChar, 'в': specFloat, 'с': specString,
}

// cyrillicLetters guards the Cyrillic specifier aliases against the
// Cyrillic Unicode block via x/text/runes' Set, so specifierFor only
// ever resolves a Cyrillic alias for a rune that is actually Cyrillic
// (§4.1.5: "no general-case Unicode letter handling is required" — this
// is the narrow membership test that boundary allows).
var cyrillicLetters = runes.In(unicode.Cyrillic)

// specifierFor resolves one scanned format-specifier rune to its kind,
// trying the ASCII aliases first and falling back to the Cyrillic ones.
func specifierFor(r rune) (specifierKind, bool) {
	if k, ok := asciiSpecifiers[r]; ok {
		return k, true
	}
	if !cyrillicLetters.Contains(r) {
		return 0, false
	}
	k, ok := cyrillicSpecifiers[r]
	return k, ok
}
