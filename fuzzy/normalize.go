package fuzzy

import "strings"

// normalized maps common latin accented runes to their base form. The table
// intentionally covers only single-rune foldings; anything absent passes
// through unchanged.
var normalized = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ä': 'a', 'ã': 'a', 'å': 'a', 'ā': 'a', 'ă': 'a', 'ą': 'a',
	'ç': 'c', 'ć': 'c', 'č': 'c',
	'ď': 'd', 'đ': 'd',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e', 'ē': 'e', 'ė': 'e', 'ę': 'e', 'ě': 'e',
	'ğ': 'g', 'ģ': 'g',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i', 'ī': 'i', 'į': 'i', 'ı': 'i',
	'ķ': 'k',
	'ł': 'l', 'ļ': 'l', 'ľ': 'l',
	'ñ': 'n', 'ń': 'n', 'ň': 'n', 'ņ': 'n',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'ö': 'o', 'õ': 'o', 'ø': 'o', 'ō': 'o', 'ő': 'o',
	'ř': 'r',
	'ś': 's', 'š': 's', 'ş': 's', 'ș': 's',
	'ť': 't', 'ț': 't',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u', 'ū': 'u', 'ů': 'u', 'ű': 'u', 'ų': 'u',
	'ý': 'y', 'ÿ': 'y',
	'ź': 'z', 'ż': 'z', 'ž': 'z',
	'Á': 'A', 'À': 'A', 'Â': 'A', 'Ä': 'A', 'Ã': 'A', 'Å': 'A', 'Ā': 'A',
	'Ç': 'C', 'Ć': 'C', 'Č': 'C',
	'É': 'E', 'È': 'E', 'Ê': 'E', 'Ë': 'E', 'Ē': 'E',
	'Í': 'I', 'Ì': 'I', 'Î': 'I', 'Ï': 'I', 'Ī': 'I',
	'Ñ': 'N', 'Ń': 'N', 'Ň': 'N',
	'Ó': 'O', 'Ò': 'O', 'Ô': 'O', 'Ö': 'O', 'Õ': 'O', 'Ø': 'O', 'Ō': 'O',
	'Š': 'S', 'Ś': 'S', 'Ş': 'S',
	'Ú': 'U', 'Ù': 'U', 'Û': 'U', 'Ü': 'U', 'Ū': 'U',
	'Ý': 'Y',
	'Ž': 'Z', 'Ź': 'Z', 'Ż': 'Z',
}

// normalizeString folds accented runes to their base form. Plain strings are
// returned as-is without allocating.
func normalizeString(s string) string {
	plain := true
	for _, r := range s {
		if _, ok := normalized[r]; ok {
			plain = false
			break
		}
	}
	if plain {
		return s
	}
	return strings.Map(func(r rune) rune {
		if n, ok := normalized[r]; ok {
			return n
		}
		return r
	}, s)
}
