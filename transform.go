package arabshape

import (
	"runtime"
	"strings"
	"sync"

	"github.com/npillmayer/arabshape/segment"
	"github.com/npillmayer/arabshape/shaping"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// Options control a Transformer.
type Options struct {
	// Direction is the order of the output. bidi.RightToLeft produces visual
	// order: tokens and the glyphs of every word are reversed.
	// bidi.LeftToRight keeps logical order and shapes only.
	Direction bidi.Direction
	// Parallel lets words be shaped concurrently.
	Parallel bool
}

// DefaultOptions returns options for visual right-to-left output, shaping
// sequentially.
func DefaultOptions() Options {
	return Options{Direction: bidi.RightToLeft}
}

// Transformer converts text into shaped presentation forms.
// A Transformer holds no state between calls and is safe for concurrent use.
type Transformer struct {
	opts Options
}

// New creates a Transformer. Directions other than bidi.LeftToRight are
// treated as bidi.RightToLeft.
func New(opts Options) *Transformer {
	if opts.Direction != bidi.LeftToRight && opts.Direction != bidi.RightToLeft {
		tracer().Infof("direction %v not supported, using right-to-left", opts.Direction)
		opts.Direction = bidi.RightToLeft
	}
	return &Transformer{opts: opts}
}

var defaultTransformer = New(DefaultOptions())

// Transform converts text into its visual presentation form, using
// DefaultOptions. text has to be valid UTF-8; invalid bytes are replaced
// by U+FFFD.
func Transform(text string) string {
	return defaultTransformer.Transform(text)
}

// TransformRunes is Transform for a sequence of code-points.
func TransformRunes(text []rune) []rune {
	return defaultTransformer.TransformRunes(text)
}

// Options returns the options of t.
func (t *Transformer) Options() Options {
	return t.opts
}

// Transform converts text into shaped presentation forms.
// text has to be valid UTF-8; invalid bytes are replaced by U+FFFD.
func (t *Transformer) Transform(text string) string {
	if text == "" {
		return ""
	}
	if !norm.NFC.IsNormalString(text) {
		tracer().Infof("input is not in NFC, shaping may be incomplete")
	}
	tokens := segment.Words(text)
	visual := t.opts.Direction == bidi.RightToLeft
	if visual {
		for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
			tokens[i], tokens[j] = tokens[j], tokens[i]
		}
	}
	shaped := make([]string, len(tokens))
	shapeToken := func(i int) {
		word := []rune(tokens[i])
		if visual {
			shaped[i] = string(shaping.ShapeWord(word))
		} else {
			shaped[i] = string(shaping.ShapeWordLogical(word))
		}
	}
	if t.opts.Parallel {
		workers := runtime.GOMAXPROCS(0)
		if workers > len(tokens) {
			workers = len(tokens)
		}
		next := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range next {
					shapeToken(i)
				}
			}()
		}
		for i := range tokens {
			next <- i
		}
		close(next)
		wg.Wait()
	} else {
		for i := range tokens {
			shapeToken(i)
		}
	}
	tracer().Debugf("transformed %d tokens", len(tokens))
	return strings.Join(shaped, "")
}

// TransformRunes is Transform for a sequence of code-points.
func (t *Transformer) TransformRunes(text []rune) []rune {
	if len(text) == 0 {
		return []rune{}
	}
	return []rune(t.Transform(string(text)))
}
