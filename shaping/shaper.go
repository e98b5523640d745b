package shaping

// allahSequence is the generic shaping result for the word "الله" (in logical
// order), which is replaced by a dedicated ligature.
//
// TODO: spellings with tashkil (e.g. "اللّه") do not match and are shaped
// letter by letter.
var allahSequence = [...]rune{0xfe8d, 0xfedf, 0xfee0, 0xfeea}

// ShapeWord shapes a single word and returns its presentation forms in visual
// order. A word containing code-points which are neither Arabic nor special
// (e.g. Latin letters or digits) is returned unchanged.
//
// ShapeWord is a pure function of its input and safe for concurrent use.
func ShapeWord(word []rune) []rune {
	return shapeWord(word, true)
}

// ShapeWordLogical is like ShapeWord, but leaves the presentation forms in
// logical order, for clients which run a bidi reordering of their own.
func ShapeWordLogical(word []rune) []rune {
	return shapeWord(word, false)
}

func shapeWord(word []rune, visual bool) []rune {
	if len(word) == 0 {
		return []rune{}
	}
	ws := borrowShaper(word)
	defer ws.releaseIntoPool()
	if !ws.shape() {
		return append([]rune(nil), word...)
	}
	out := make([]rune, len(ws.out))
	if !visual {
		copy(out, ws.out)
		return out
	}
	for i, r := range ws.out { // logical -> visual order
		out[len(out)-1-i] = r
	}
	return out
}

// ShapeString is a convenience variant of ShapeWord for strings.
func ShapeString(word string) string {
	return string(ShapeWord([]rune(word)))
}

// wordShaper holds the state for shaping a single word.
type wordShaper struct {
	word []rune // input word, in logical order
	out  []rune // presentation forms, in logical order
}

// shape resolves the presentation forms for ws.word into ws.out.
// It returns false if the word must not be shaped at all.
func (ws *wordShaper) shape() bool {
	last := len(ws.word) - 1
	for i := 0; i < len(ws.word); {
		cur := NewLetter(ws.word[i])
		if !cur.Class.Arabic && !cur.Class.Special {
			tracer().Debugf("%#U prevents shaping of word %q", cur.Rune, string(ws.word))
			return false
		}
		prevLetter, _ := ws.prevLetter(i)
		nextLetter, nextInx := ws.nextLetter(i)
		if cur.Class.Lam && nextLetter != nil && nextLetter.Class.Alef {
			if i == 0 || !cur.ConnectsTo(prevLetter) {
				nextLetter.Shape = Initial
			} else {
				nextLetter.Shape = Medial
			}
			if lig, ok := nextLetter.LamAlefGlyph(); ok {
				ws.out = append(ws.out, lig)
				i = nextInx + 1
				continue
			}
		}
		if next := ws.nextChar(i); isShaddaPair(cur, next) {
			tashkil := cur
			if cur.Class.Shadda {
				tashkil = *next
			}
			if prev := ws.prevChar(i); prev != nil && cur.ConnectsTo(prev) && i+1 < last {
				tashkil.Shape = Medial
			}
			ws.out = append(ws.out, tashkil.ShaddaGlyph())
			i += 2
			continue
		}
		if cur.Class.Tashkil {
			if cur.ConnectsTo(ws.prevChar(i)) && i != last {
				cur.Shape = Medial
			}
		} else {
			cur.Shape = resolveShape(cur, i, last, prevLetter, nextLetter)
		}
		tracer().Debugf("%d: %s", i, cur)
		ws.out = append(ws.out, cur.Glyph())
		i++
	}
	if string(ws.out) == string(allahSequence[:]) {
		ws.out = append(ws.out[:0], Allah)
	}
	return true
}

// resolveShape determines the contextual shape of a letter (not a tashkil mark)
// at position i of a word, where last is the last position of the word.
// A following HAMZA breaks the connection to the next letter.
func resolveShape(cur Letter, i, last int, prev, next *Letter) Shape {
	switch {
	case i == 0:
		if next != nil {
			return Initial
		}
	case i < last:
		if next == nil || next.Class.Hamza {
			if cur.ConnectsTo(prev) {
				return Final
			}
		} else if cur.ConnectsTo(prev) {
			return Medial
		} else {
			return Initial
		}
	default:
		if cur.ConnectsTo(prev) {
			return Final
		}
	}
	return Isolated
}

// isShaddaPair is true for SHADDA followed by a tashkil mark or a tashkil mark
// followed by SHADDA.
func isShaddaPair(cur Letter, next *Letter) bool {
	if next == nil {
		return false
	}
	return cur.Class.Shadda && next.Class.Tashkil || cur.Class.Tashkil && next.Class.Shadda
}

// --- Neighbours ------------------------------------------------------------

// Characters are the immediate neighbours of a position, letters are the
// nearest neighbours which are not tashkil marks.

func (ws *wordShaper) letterAt(i int) *Letter {
	if i < 0 || i >= len(ws.word) {
		return nil
	}
	l := NewLetter(ws.word[i])
	return &l
}

func (ws *wordShaper) prevChar(i int) *Letter {
	return ws.letterAt(i - 1)
}

func (ws *wordShaper) nextChar(i int) *Letter {
	return ws.letterAt(i + 1)
}

func (ws *wordShaper) prevLetter(i int) (*Letter, int) {
	for j := i - 1; j >= 0; j-- {
		if l := ws.letterAt(j); !l.Class.Tashkil {
			return l, j
		}
	}
	return nil, -1
}

func (ws *wordShaper) nextLetter(i int) (*Letter, int) {
	for j := i + 1; j < len(ws.word); j++ {
		if l := ws.letterAt(j); !l.Class.Tashkil {
			return l, j
		}
	}
	return nil, -1
}
