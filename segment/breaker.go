package segment

import "github.com/npillmayer/arabshape/shaping"

// A Breaker decides which code-points split text into words.
// Boundary code-points form segments of their own.
type Breaker interface {
	IsBoundary(r rune) bool
}

// WordBreaker is the default Breaker. It flags every code-point which is
// neither a letter nor a number nor a tashkil mark.
type WordBreaker struct{}

// NewWordBreaker creates a breaker for words of Arabic (or other) letters.
func NewWordBreaker() *WordBreaker {
	return &WordBreaker{}
}

// IsBoundary is part of interface Breaker.
func (wb *WordBreaker) IsBoundary(r rune) bool {
	return shaping.IsSpecial(r)
}

// BreakerFunc adapts a function to interface Breaker.
type BreakerFunc func(rune) bool

// IsBoundary is part of interface Breaker.
func (f BreakerFunc) IsBoundary(r rune) bool {
	return f(r)
}
