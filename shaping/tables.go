package shaping

// Code-points with special meaning for shaping.
const (
	Hamza    rune = 0x0621 // ARABIC LETTER HAMZA, first supported code-point
	Lam      rune = 0x0644 // ARABIC LETTER LAM
	Fathatan rune = 0x064b // ARABIC FATHATAN, first tashkil mark
	Shadda   rune = 0x0651 // ARABIC SHADDA
	Sukun    rune = 0x0652 // ARABIC SUKUN, last supported code-point
)

// Allah is the ligature ARABIC LIGATURE ALLAH ISOLATED FORM.
const Allah rune = 0xfdf2

// BlockSize is the number of supported Arabic code-points.
const BlockSize = int(Sukun-Hamza) + 1

// tashkilOffset is the offset of the first tashkil mark within the block.
const tashkilOffset = int(Fathatan - Hamza)

// JoiningType tells whether a letter joins its neighbours.
type JoiningType uint8

// Joining types for the supported block.
const (
	NonJoining   JoiningType = iota // never joins, e.g. HAMZA
	RightJoining                    // joins the preceding letter only, e.g. DAL
	DualJoining                     // joins on both sides, e.g. BEH
	Transparent                     // filler which joins on both sides, i.e. TATWEEL
)

func (jt JoiningType) String() string {
	switch jt {
	case NonJoining:
		return "U"
	case RightJoining:
		return "R"
	case DualJoining:
		return "D"
	case Transparent:
		return "C"
	}
	return "?"
}

// Shape is the contextual form of a letter.
//
// Numeric values are chosen so that they may be added to the isolated
// presentation form of a dual-joining letter to get the presentation form
// for the shape. Right-joining letters have only two forms, Shape%2.
type Shape uint8

// Contextual forms of letters.
const (
	Isolated Shape = 0
	Final    Shape = 1
	Initial  Shape = 2
	Medial   Shape = 3
)

func (sh Shape) String() string {
	switch sh {
	case Isolated:
		return "isol"
	case Final:
		return "fina"
	case Initial:
		return "init"
	case Medial:
		return "medi"
	}
	return "?"
}

// joiningTypes holds the joining type for every code-point of the block,
// indexed by offset from HAMZA.
var joiningTypes = [BlockSize]JoiningType{
	NonJoining,   // 0621 HAMZA
	RightJoining, // 0622 ALEF WITH MADDA ABOVE
	RightJoining, // 0623 ALEF WITH HAMZA ABOVE
	RightJoining, // 0624 WAW WITH HAMZA ABOVE
	RightJoining, // 0625 ALEF WITH HAMZA BELOW
	DualJoining,  // 0626 YEH WITH HAMZA ABOVE
	RightJoining, // 0627 ALEF
	DualJoining,  // 0628 BEH
	RightJoining, // 0629 TEH MARBUTA
	DualJoining,  // 062A TEH
	DualJoining,  // 062B THEH
	DualJoining,  // 062C JEEM
	DualJoining,  // 062D HAH
	DualJoining,  // 062E KHAH
	RightJoining, // 062F DAL
	RightJoining, // 0630 THAL
	RightJoining, // 0631 REH
	RightJoining, // 0632 ZAIN
	DualJoining,  // 0633 SEEN
	DualJoining,  // 0634 SHEEN
	DualJoining,  // 0635 SAD
	DualJoining,  // 0636 DAD
	DualJoining,  // 0637 TAH
	DualJoining,  // 0638 ZAH
	DualJoining,  // 0639 AIN
	DualJoining,  // 063A GHAIN
	NonJoining,   // 063B KEHEH WITH TWO DOTS ABOVE
	NonJoining,   // 063C KEHEH WITH THREE DOTS BELOW
	NonJoining,   // 063D FARSI YEH WITH INVERTED V
	NonJoining,   // 063E FARSI YEH WITH TWO DOTS ABOVE
	NonJoining,   // 063F FARSI YEH WITH THREE DOTS ABOVE
	Transparent,  // 0640 TATWEEL
	DualJoining,  // 0641 FEH
	DualJoining,  // 0642 QAF
	DualJoining,  // 0643 KAF
	DualJoining,  // 0644 LAM
	DualJoining,  // 0645 MEEM
	DualJoining,  // 0646 NOON
	DualJoining,  // 0647 HEH
	RightJoining, // 0648 WAW
	DualJoining,  // 0649 ALEF MAKSURA
	DualJoining,  // 064A YEH
	RightJoining, // 064B FATHATAN
	RightJoining, // 064C DAMMATAN
	RightJoining, // 064D KASRATAN
	RightJoining, // 064E FATHA
	RightJoining, // 064F DAMMA
	RightJoining, // 0650 KASRA
	RightJoining, // 0651 SHADDA
	RightJoining, // 0652 SUKUN
}

// formsB holds the isolated presentation form for every code-point of the
// block. Letters without presentation forms map to themselves.
var formsB = [BlockSize]rune{
	0xfe80, 0xfe81, 0xfe83, 0xfe85, 0xfe87, 0xfe89, 0xfe8d, 0xfe8f, 0xfe93, 0xfe95,
	0xfe99, 0xfe9d, 0xfea1, 0xfea5, 0xfea9, 0xfeab, 0xfead, 0xfeaf, 0xfeb1, 0xfeb5,
	0xfeb9, 0xfebd, 0xfec1, 0xfec5, 0xfec9, 0xfecd, 0x063b, 0x063c, 0x063d, 0x063e,
	0x063f, 0x0640, 0xfed1, 0xfed5, 0xfed9, 0xfedd, 0xfee1, 0xfee5, 0xfee9, 0xfeed,
	0xfeef, 0xfef1, 0xfe70, 0xfe72, 0xfe74, 0xfe76, 0xfe78, 0xfe7a, 0xfe7c, 0xfe7e,
}

// alefs are the alef variants which form a ligature with a preceding LAM.
var alefs = [...]rune{0x0622, 0x0623, 0x0625, 0x0627}

// lamAlefs holds the isolated LAM-ALEF ligature, indexed by the offset of the
// alef. Zero entries have no ligature. The final form follows the isolated one.
var lamAlefs = [...]rune{
	0,      // HAMZA
	0xfef5, // ALEF WITH MADDA ABOVE
	0xfef7, // ALEF WITH HAMZA ABOVE
	0,      // WAW WITH HAMZA ABOVE
	0xfef9, // ALEF WITH HAMZA BELOW
	0,      // YEH WITH HAMZA ABOVE
	0xfefb, // ALEF
}

// shaddaForms holds the fusion of SHADDA with another tashkil mark, indexed by
// (offset mod 42) + 3*(shape mod 2).
var shaddaForms = [...]rune{
	0xfc60, 0xfc5e, 0xfc5f, 0xfc60, 0xfc61, 0xfc62, 0xfcf2, 0xfcf3, 0xfcf4,
}

// shaddaDefault is the isolated form of SHADDA, used for combinations
// without an entry in shaddaForms. The medial form follows it.
const shaddaDefault rune = 0xfe7c

// mirrored maps punctuation to its counterpart in right-to-left text.
var mirrored = map[rune]rune{
	'(': ')',
	')': '(',
	'{': '}',
	'}': '{',
	'[': ']',
	']': '[',
	'<': '>',
	'>': '<',
	'«': '»',
	'»': '«',
	',': 0x060c, // ARABIC COMMA
	';': 0x061b, // ARABIC SEMICOLON
	'?': 0x061f, // ARABIC QUESTION MARK
}
