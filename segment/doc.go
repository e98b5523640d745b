/*
Package segment splits text into words and boundary tokens.

Typical Usage

Segmenter provides an interface similar to bufio.Scanner for reading data
such as a file of Unicode text.
Similar to Scanner's Scan() function, successive calls to a segmenter's
Next() method will step through the segments of the input.
Clients are able to get the runes of a segment by calling Bytes() or Text().

A segment is either a word, i.e. a maximal run of code-points which are not
boundaries, or a single boundary code-point (white space, punctuation).
Tashkil marks never break a word.

  segmenter := segment.NewSegmenter()
  segmenter.Init(strings.NewReader("ذهب الولد"))
  for segmenter.Next() {
    // do something with segmenter.Text() or segmenter.Bytes()
  }

Concatenating all segments in order reproduces the input exactly.

Clients may provide their own Breaker to decide which code-points are
boundaries. If more than one Breaker is given, a code-point is a boundary
as soon as one of them flags it.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package segment

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arabshape.segment'.
func tracer() tracing.Trace {
	return tracing.Select("arabshape.segment")
}
