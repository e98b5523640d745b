package shaping

import (
	"fmt"
	"unicode"
)

// Classification holds the shaping properties of a code-point.
// Offset and Joining are meaningful for Arabic code-points only.
type Classification struct {
	Offset  int         // position within the supported block, -1 outside
	Joining JoiningType // joining behaviour
	Arabic  bool        // letter or tashkil of the supported block
	Tashkil bool        // diacritic mark FATHATAN…SUKUN
	Shadda  bool        // SHADDA
	Hamza   bool        // HAMZA
	Lam     bool        // LAM
	Alef    bool        // one of the alef variants forming a ligature with LAM
	Special bool        // neither alphanumeric nor tashkil
}

// classes holds the classification of every code-point of the supported block.
var classes = func() (c [BlockSize]Classification) {
	for i := range c {
		c[i] = classifyArabic(Hamza + rune(i))
	}
	return
}()

func classifyArabic(r rune) Classification {
	offset := int(r - Hamza)
	cl := Classification{
		Offset:  offset,
		Joining: joiningTypes[offset],
		Arabic:  true,
		Tashkil: r >= Fathatan,
		Shadda:  r == Shadda,
		Hamza:   r == Hamza,
		Lam:     r == Lam,
	}
	for _, a := range alefs {
		if r == a {
			cl.Alef = true
		}
	}
	return cl
}

// Classify returns the shaping properties of a code-point. Code-points outside
// the supported block are non-joining and carry no offset.
func Classify(r rune) Classification {
	if r >= Hamza && r <= Sukun {
		return classes[r-Hamza]
	}
	return Classification{
		Offset:  -1,
		Joining: NonJoining,
		Special: IsSpecial(r),
	}
}

// IsSpecial is true for code-points which are neither letters nor numbers nor
// tashkil marks, e.g. white space and punctuation. Special code-points split
// text into words.
func IsSpecial(r rune) bool {
	if r >= Fathatan && r <= Sukun {
		return false
	}
	return !(unicode.IsLetter(r) || unicode.IsNumber(r))
}

// Mirror returns the counterpart of r for right-to-left text, or r itself if it
// has none.
func Mirror(r rune) rune {
	if m, ok := mirrored[r]; ok {
		return m
	}
	return r
}

// Letter is a code-point together with its classification and the contextual
// shape it has been resolved to. Letters are created while scanning a word and
// discarded once they contributed to the output.
type Letter struct {
	Rune  rune
	Class Classification
	Shape Shape // resolved shape, Isolated until resolved
}

// NewLetter creates a letter for a code-point, with shape Isolated.
func NewLetter(r rune) Letter {
	return Letter{Rune: r, Class: Classify(r)}
}

func (l Letter) String() string {
	if l.Class.Arabic {
		return fmt.Sprintf("%#U[%s|%s]", l.Rune, l.Class.Joining, l.Shape)
	}
	return fmt.Sprintf("%#U", l.Rune)
}

// ConnectsTo is true if l may visually join the letter before it.
// A nil predecessor is never connected to.
func (l Letter) ConnectsTo(prev *Letter) bool {
	if prev == nil || l.Class.Joining == NonJoining {
		return false
	}
	return prev.Class.Joining == DualJoining || prev.Class.Joining == Transparent
}

// Glyph returns the presentation form of l for its resolved shape.
// Special code-points are mirrored, other code-points outside the supported
// block are returned unchanged.
func (l Letter) Glyph() rune {
	if l.Class.Special {
		return Mirror(l.Rune)
	}
	if !l.Class.Arabic {
		return l.Rune
	}
	base := formsB[l.Class.Offset]
	switch l.Class.Joining {
	case NonJoining:
		return base
	case RightJoining:
		return base + rune(l.Shape%2)
	case DualJoining:
		return base + rune(l.Shape)
	}
	return l.Rune // TATWEEL
}

// LamAlefGlyph returns the LAM-ALEF ligature for l, which has to be an alef
// variant. Only Initial and Medial shapes are meaningful, resulting in the
// isolated or the final form of the ligature. If no ligature exists for l,
// false is returned.
func (l Letter) LamAlefGlyph() (rune, bool) {
	if !l.Class.Arabic || l.Class.Offset >= len(lamAlefs) {
		return 0, false
	}
	lig := lamAlefs[l.Class.Offset]
	if lig == 0 {
		return 0, false
	}
	return lig + rune(l.Shape%2), true
}

// ShaddaGlyph returns the fusion of SHADDA with tashkil mark l.
func (l Letter) ShaddaGlyph() rune {
	inx := l.Class.Offset%tashkilOffset + 3*int(l.Shape%2)
	if inx >= 0 && inx < len(shaddaForms) {
		return shaddaForms[inx]
	}
	return shaddaDefault + rune(l.Shape%2)
}
