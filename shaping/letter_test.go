package shaping

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestClassifyNonArabic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.shaping")
	defer teardown()
	//
	l := NewLetter('A')
	if l.Class.Arabic {
		t.Errorf("expected 'A' to be classified as non-Arabic")
	}
	if l.Class.Offset != -1 {
		t.Errorf("expected offset of 'A' to be -1, is %d", l.Class.Offset)
	}
	if l.Shape != Isolated {
		t.Errorf("expected default shape to be isolated, is %s", l.Shape)
	}
	if l.Class.Joining != NonJoining {
		t.Errorf("expected 'A' to be non-joining, is %s", l.Class.Joining)
	}
}

func TestClassifyArabic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.shaping")
	defer teardown()
	//
	l := NewLetter('م')
	assert.Equal(t, rune(1605), l.Rune)
	assert.True(t, l.Class.Arabic)
	assert.Equal(t, Isolated, l.Shape)
	assert.Equal(t, DualJoining, l.Class.Joining)
	assert.Equal(t, 36, l.Class.Offset)
}

func TestClassifyBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.shaping")
	defer teardown()
	//
	for r := Hamza; r <= Sukun; r++ {
		c := Classify(r)
		if !c.Arabic || c.Offset < 0 || c.Offset >= BlockSize {
			t.Errorf("expected %#U to be Arabic with valid offset, is %v/%d", r, c.Arabic, c.Offset)
		}
	}
	for _, r := range []rune{Hamza - 1, Sukun + 1, 'a', '1', ' ', 0xfe8d, 0x06f0} {
		if c := Classify(r); c.Arabic {
			t.Errorf("expected %#U to be outside the supported block", r)
		}
	}
}

func TestIsSpecial(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.shaping")
	defer teardown()
	//
	for _, r := range "?@<>%*=&#¨ ^/|\\~`_-«»[]{}" {
		assert.True(t, IsSpecial(r), "expected %#U to be special", r)
	}
	for _, r := range "ءآأؤإئابةتثجحخدذرزسشصضطعظغػؼؽؾؿـفكقكلمنهوىي" {
		assert.False(t, IsSpecial(r), "expected %#U not to be special", r)
	}
	for _, r := range "ًٌٍَُِّْ" {
		assert.False(t, IsSpecial(r), "expected tashkil %#U not to be special", r)
	}
}

func TestClassifyFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.shaping")
	defer teardown()
	//
	for _, r := range "آأإا" {
		assert.True(t, Classify(r).Alef, "expected %#U to be an alef", r)
	}
	for _, r := range "ةتثجحخدذرزسشصضطعظغػؼؽؾؿـفكقكلمنهوىي" {
		assert.False(t, Classify(r).Alef, "expected %#U not to be an alef", r)
	}
	assert.True(t, Classify('ل').Lam)
	assert.True(t, Classify('ء').Hamza)
	assert.True(t, Classify(Shadda).Shadda)
	for _, r := range "ًٌٍَُِّْ" {
		assert.True(t, Classify(r).Tashkil, "expected %#U to be tashkil", r)
	}
	assert.False(t, Classify('ي').Tashkil)
}

func TestConnectsTo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.shaping")
	defer teardown()
	//
	connecting := []rune("ئبتثجحخسشصضطظعغـفقكلمني")
	for i := 1; i < len(connecting); i++ {
		c, p := NewLetter(connecting[i]), NewLetter(connecting[i-1])
		if !c.ConnectsTo(&p) {
			t.Errorf("expected %s to connect to %s", c, p)
		}
	}
	separate := []rune("ءآأؤإاةدذرزوx123#")
	for i := 1; i < len(separate); i++ {
		c, p := NewLetter(separate[i]), NewLetter(separate[i-1])
		if c.ConnectsTo(&p) {
			t.Errorf("expected %s not to connect to %s", c, p)
		}
	}
	if l := NewLetter('ب'); l.ConnectsTo(nil) {
		t.Errorf("expected letter not to connect to missing predecessor")
	}
}

func TestGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.shaping")
	defer teardown()
	//
	lam := NewLetter('ل')
	for shape, glyph := range map[Shape]rune{
		Isolated: 0xfedd,
		Initial:  0xfedf,
		Medial:   0xfee0,
		Final:    0xfede,
	} {
		lam.Shape = shape
		assert.Equal(t, glyph, lam.Glyph(), "LAM %s", shape)
	}
	waw := NewLetter('و')
	waw.Shape = Final
	assert.Equal(t, rune(0xfeee), waw.Glyph())
	waw.Shape = Medial // right-joining letters only have two forms
	assert.Equal(t, rune(0xfeee), waw.Glyph())
	assert.Equal(t, rune(0xfe80), NewLetter('ء').Glyph())
	assert.Equal(t, 'ـ', NewLetter('ـ').Glyph())
	assert.Equal(t, 'z', NewLetter('z').Glyph())
	assert.Equal(t, rune(0xfe76), NewLetter('َ').Glyph())
	assert.Equal(t, '@', NewLetter('@').Glyph())
	var mirrored []rune
	for _, r := range "(){}<>[]?" {
		mirrored = append(mirrored, NewLetter(r).Glyph())
	}
	assert.Equal(t, ")(}{><][\u061f", string(mirrored))
}

func TestMirror(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.shaping")
	defer teardown()
	//
	pairs := map[rune]rune{
		'(': ')', '<': '>', '[': ']', '{': '}',
		',': 0x060c, ';': 0x061b, '?': 0x061f,
		'«': '»', '»': '«', '!': '!', ' ': ' ',
	}
	for r, m := range pairs {
		if Mirror(r) != m {
			t.Errorf("expected mirror of %#U to be %#U, is %#U", r, m, Mirror(r))
		}
	}
}

func TestLamAlefGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.shaping")
	defer teardown()
	//
	alef := NewLetter('ا')
	lig, ok := alef.LamAlefGlyph()
	assert.True(t, ok)
	assert.Equal(t, rune(0xfefb), lig)
	alef.Shape = Medial
	lig, _ = alef.LamAlefGlyph()
	assert.Equal(t, rune(0xfefc), lig)
	_, ok = NewLetter('ؤ').LamAlefGlyph()
	assert.False(t, ok, "expected no LAM-ALEF ligature for WAW WITH HAMZA ABOVE")
	_, ok = NewLetter('ب').LamAlefGlyph()
	assert.False(t, ok, "expected no LAM-ALEF ligature for BEH")
}

func TestShaddaGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.shaping")
	defer teardown()
	//
	fatha := NewLetter('َ')
	assert.Equal(t, rune(0xfc60), fatha.ShaddaGlyph())
	kasra := NewLetter('ِ')
	kasra.Shape = Medial
	assert.Equal(t, rune(0xfcf4), kasra.ShaddaGlyph())
	sukun := NewLetter(Sukun)
	assert.Equal(t, rune(0xfcf3), sukun.ShaddaGlyph())
	sukun.Shape = Medial // no medial fusion with SUKUN, falls back to plain SHADDA
	assert.Equal(t, rune(0xfe7d), sukun.ShaddaGlyph())
}
