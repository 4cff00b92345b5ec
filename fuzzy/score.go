package fuzzy

import "strings"

// Match score weights. A matched character is worth scoreMatch plus a
// positional bonus; gaps between matched characters are penalized once at
// the start of the gap and again per extension.
const (
	scoreMatch        = 16
	scoreGapStart     = -3
	scoreGapExtension = -1

	bonusBoundary    = scoreMatch / 2
	bonusNonWord     = scoreMatch / 2
	bonusCamelCase   = bonusBoundary + scoreGapExtension
	bonusConsecutive = -(scoreGapStart + scoreGapExtension)

	// The first matched character's bonus weighs double: matches anchored
	// at a word start should beat matches buried mid-word.
	bonusFirstCharMultiplier = 2
)

type charClass int

const (
	classNonWord charClass = iota
	classLower
	classUpper
	classDigit
)

func classOf(c byte) charClass {
	switch {
	case c >= 'a' && c <= 'z':
		return classLower
	case c >= 'A' && c <= 'Z':
		return classUpper
	case c >= '0' && c <= '9':
		return classDigit
	default:
		return classNonWord
	}
}

func bonusFor(prev, curr charClass) int {
	switch {
	case prev == classNonWord && curr != classNonWord:
		return bonusBoundary
	case prev == classLower && curr == classUpper:
		return bonusCamelCase
	case curr == classDigit && prev != classDigit:
		return bonusCamelCase
	case curr == classNonWord:
		return bonusNonWord
	default:
		return 0
	}
}

// Score evaluates every term of p against text and returns the summed term
// scores. All non-inverse terms must match and no inverse term may match;
// otherwise the result is 0. A result > 0 means the candidate matches.
func Score(text string, p *Pattern, s *Slab) int {
	if p == nil || len(p.terms) == 0 {
		return 0
	}

	total := 0
	for i := range p.terms {
		t := &p.terms[i]
		score := scoreTerm(text, t, s)
		if t.inverse {
			if score > 0 {
				return 0
			}
			continue
		}
		if score <= 0 {
			return 0
		}
		total += score
	}
	if total == 0 {
		// Only inverse terms, all satisfied: still a match.
		return 1
	}
	return total
}

func scoreTerm(text string, t *term, s *Slab) int {
	hay := text
	if t.ignoreCase {
		hay = strings.ToLower(hay)
	}
	if t.normalize {
		hay = normalizeString(hay)
	}

	switch t.kind {
	case termEqual:
		if hay == t.text {
			return windowScore(hay, t.text, 0, len(hay), s)
		}
	case termPrefix:
		if strings.HasPrefix(hay, t.text) {
			return windowScore(hay, t.text, 0, len(t.text), s)
		}
	case termSuffix:
		if strings.HasSuffix(hay, t.text) {
			return windowScore(hay, t.text, len(hay)-len(t.text), len(hay), s)
		}
	case termSubstring:
		if idx := strings.Index(hay, t.text); idx >= 0 {
			return windowScore(hay, t.text, idx, idx+len(t.text), s)
		}
	default:
		return fuzzyScore(hay, t.text, s)
	}
	return 0
}

// fuzzyScore matches pattern as a subsequence of text. A forward scan finds
// the first full occurrence, a backward scan tightens the window to its
// minimal extent, and the window is then scored character by character.
func fuzzyScore(text, pattern string, s *Slab) int {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return 0
	}

	pidx := 0
	sidx, eidx := -1, -1
	for i := 0; i < len(text); i++ {
		if text[i] == pattern[pidx] {
			if sidx < 0 {
				sidx = i
			}
			pidx++
			if pidx == len(pattern) {
				eidx = i + 1
				break
			}
		}
	}
	if eidx < 0 {
		return 0
	}

	pidx--
	for i := eidx - 1; i >= sidx; i-- {
		if text[i] == pattern[pidx] {
			pidx--
			if pidx < 0 {
				sidx = i
				break
			}
		}
	}

	return windowScore(text, pattern, sidx, eidx, s)
}

// windowScore scores pattern greedily within text[sidx:eidx). Per-character
// bonuses for the window are staged in the slab so repeated calls on the
// same goroutine reuse one buffer.
func windowScore(text, pattern string, sidx, eidx int, s *Slab) int {
	bonus := s.alloc16(eidx - sidx)
	prev := classNonWord
	if sidx > 0 {
		prev = classOf(text[sidx-1])
	}
	for i := sidx; i < eidx; i++ {
		curr := classOf(text[i])
		bonus[i-sidx] = int16(bonusFor(prev, curr))
		prev = curr
	}

	score := 0
	pidx := 0
	consecutive := 0
	inGap := false
	for i := sidx; i < eidx; i++ {
		if pidx < len(pattern) && text[i] == pattern[pidx] {
			b := int(bonus[i-sidx])
			if consecutive > 0 && bonusConsecutive > b {
				b = bonusConsecutive
			}
			if pidx == 0 {
				b *= bonusFirstCharMultiplier
			}
			score += scoreMatch + b
			pidx++
			consecutive++
			inGap = false
			continue
		}
		if inGap {
			score += scoreGapExtension
		} else {
			score += scoreGapStart
			inGap = true
		}
		consecutive = 0
	}
	return score
}
