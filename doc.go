/*
Package arabshape converts logically ordered Arabic text into its visual
presentation form.

Description

Arabic letters are written in one of up to four contextual forms (isolated,
initial, medial, final), depending on whether they join their neighbours.
Renderers without an OpenType shaping engine, e.g. most terminals or simple
label renderers, expect text to arrive already shaped: every letter replaced
by the matching code-point from the Arabic Presentation Forms blocks, and the
whole line in right-to-left visual order.

Package arabshape does this in three steps:

(1) Text is split into words and single-character boundary tokens
(white space, punctuation), see package segment.

(2) The order of tokens is reversed.

(3) Every token is shaped, see package shaping: letters get their contextual
forms, LAM-ALEF and SHADDA-tashkil pairs are fused into ligatures, paired
punctuation is mirrored and the glyphs of the word are reversed. Words
containing Latin letters or digits are left untouched.

  s := arabshape.Transform("ذهب الولد")

Clients which run a bidi reordering of their own may ask for logical order
instead, see Options.

Preconditions

Input is expected to be in a single canonical form, preferably NFC.
No normalization takes place. Transforming text twice is undefined.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arabshape

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arabshape'.
func tracer() tracing.Trace {
	return tracing.Select("arabshape")
}
