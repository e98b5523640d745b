/*
Package shaping provides contextual shaping for Arabic text.

Each Arabic letter of a word is replaced by one of its presentation forms
(isolated, initial, medial or final), depending on whether it joins its
neighbours. Lam followed by one of the alef variants is fused into a single
ligature, shadda followed or preceded by another tashkil mark is fused into
a single mark, and paired punctuation is mirrored. The result of shaping a
word is in visual order, i.e. reversed.

Supported code-points are the contiguous range U+0621 (HAMZA) to U+0652
(SUKUN). Presentation forms are taken from the Arabic Presentation Forms-A
and -B blocks. Code-points outside the supported range are passed through.

	s := shaping.ShapeString("ذهب")   // => "ﺐﻫﺫ"

Input is expected to be in a single canonical form; no normalization takes
place. Shaping already shaped text is undefined.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shaping

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arabshape.shaping'.
func tracer() tracing.Trace {
	return tracing.Select("arabshape.shaping")
}
