package segment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// A Segmenter receives a sequence of code-points from an io.RuneReader and
// segments it into words and boundary tokens.
//
// Boundaries are decided by one or more breakers of type Breaker; the
// default Breaker is a WordBreaker.
type Segmenter struct {
	reader         io.RuneReader          // where we get the next runes from
	breakers       []Breaker              // our work horses
	pending        *doublylinkedlist.List // segments complete but not yet delivered
	word           *bytes.Buffer          // the word under construction
	activeSegment  []byte                 // the most recent segment delivered
	activeBoundary bool                   // is activeSegment a boundary token?
	maxSegmentLen  int                    // maximum length allowed for words
	pos            int64                  // current byte position in text
	err            error
	atEOF          bool
	inUse          bool // Next() has been called; buffer is in use.
}

// segment is an entry of the pending queue.
type segment struct {
	text     []byte
	boundary bool
}

// MaxSegmentSize is the maximum size used to buffer a word
// unless the user provides an explicit buffer with Segmenter.Buffer().
const MaxSegmentSize = 64 * 1024
const startBufSize = 256 // Size of initial allocation for buffer.

// ErrTooLong flags a buffer overflow.
// ErrNotInitialized is returned if a segmenters Next-function is called without
// first setting an input source.
var (
	ErrTooLong        = errors.New("arabshape segmenter: word too long for buffer")
	ErrNotInitialized = errors.New("arabshape segmenter not initialized; must call Init(...) first")
)

// NewSegmenter creates a new Segmenter by providing breaking logic (Breaker).
// Clients may provide more than one Breaker. Specifying no Breaker results in
// getting a WordBreaker.
//
// Before using newly created segmenters, clients will have to call Init(...)
// on them, i.e. initialize them for a rune reader.
func NewSegmenter(breakers ...Breaker) *Segmenter {
	if len(breakers) == 0 {
		breakers = []Breaker{NewWordBreaker()}
	}
	return &Segmenter{breakers: breakers}
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// s is either a newly created segmenter to be initialized, or we may
// re-initialize a segmenter already in use.
func (s *Segmenter) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reader = reader
	if s.pending == nil {
		s.pending = doublylinkedlist.New()
		s.word = bytes.NewBuffer(make([]byte, 0, startBufSize))
		s.maxSegmentLen = MaxSegmentSize
	} else {
		s.pending.Clear()
		s.word.Reset()
	}
	s.activeSegment = nil
	s.activeBoundary = false
	s.pos = 0
	s.err = nil
	s.atEOF = false
	s.inUse = false
}

// Buffer sets the initial buffer to use for collecting words and the maximum
// size of buffer that may be allocated during segmenting.
// The maximum word size is the larger of max and cap(buf).
//
// By default, Segmenter uses an internal buffer and sets the maximum word size
// to MaxSegmentSize.
//
// Buffer panics if it is called after segmenting has started. Clients will have
// to call Init(...) again to permit re-setting the buffer.
func (s *Segmenter) Buffer(buf []byte, max int) {
	if s.inUse {
		panic("segment.Buffer: buffer already in use; cannot be re-set")
	}
	s.word = bytes.NewBuffer(buf[:0])
	if cap(buf) > max {
		max = cap(buf)
	}
	s.maxSegmentLen = max
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (s *Segmenter) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// setErr() records the first error encountered.
func (s *Segmenter) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}

// Next advances the Segmenter to the next segment, which will then be available
// through the Bytes() or Text() method. It returns false when the segmenting
// stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error
// that occurred during segmenting, except for io.EOF.
// For the latter case Err() will return nil.
func (s *Segmenter) Next() bool {
	if s.reader == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	s.inUse = true
	for s.pending.Empty() && !s.atEOF {
		if err := s.readRune(); err != nil {
			s.setErr(err)
			s.activeSegment = nil
			return false
		}
	}
	if s.pending.Empty() {
		s.activeSegment = nil
		return false
	}
	front, _ := s.pending.Get(0)
	s.pending.Remove(0)
	seg := front.(segment)
	s.activeSegment, s.activeBoundary = seg.text, seg.boundary
	tracer().P("boundary", fmt.Sprintf("%v", seg.boundary)).Debugf("Next() = %q", string(seg.text))
	return true
}

// Bytes returns the most recent segment generated by a call to Next().
func (s *Segmenter) Bytes() []byte {
	return s.activeSegment
}

// Text returns the most recent segment generated by a call to Next()
// as a newly allocated string holding its bytes.
func (s *Segmenter) Text() string {
	return string(s.activeSegment)
}

// IsBoundary is true if the most recent segment generated by a call to Next()
// is a single boundary code-point, false if it is a word.
func (s *Segmenter) IsBoundary() bool {
	return s.activeBoundary
}

// readRune reads the next code-point and either appends it to the current
// word or queues it as a boundary segment, preceded by the current word.
func (s *Segmenter) readRune() error {
	r, sz, err := s.reader.ReadRune()
	if err == io.EOF {
		s.atEOF = true
		s.flushWord()
		return nil
	} else if err != nil {
		tracer().P("pos", s.pos).Errorf("ReadRune() error: %s", err)
		s.atEOF = true
		return err
	}
	s.pos += int64(sz)
	if s.isBoundary(r) {
		s.flushWord()
		s.pending.Add(segment{text: []byte(string(r)), boundary: true})
		return nil
	}
	if s.word.Len()+utf8.RuneLen(r) > s.maxSegmentLen {
		tracer().P("pos", s.pos).Errorf("word exceeds %d bytes", s.maxSegmentLen)
		s.atEOF = true
		return ErrTooLong
	}
	s.word.WriteRune(r)
	return nil
}

func (s *Segmenter) isBoundary(r rune) bool {
	for _, b := range s.breakers {
		if b.IsBoundary(r) {
			return true
		}
	}
	return false
}

// flushWord queues the current word, if any.
func (s *Segmenter) flushWord() {
	if s.word.Len() == 0 {
		return
	}
	text := make([]byte, s.word.Len())
	copy(text, s.word.Bytes())
	s.pending.Add(segment{text: text})
	s.word.Reset()
}

// Words splits text into words and boundary tokens, using a WordBreaker.
// Words are not limited in size. Concatenating the result reproduces text,
// provided text is valid UTF-8; invalid bytes come back as U+FFFD.
func Words(text string) []string {
	seg := NewSegmenter()
	seg.Init(strings.NewReader(text))
	seg.Buffer(nil, len(text))
	var words []string
	for seg.Next() {
		words = append(words, seg.Text())
	}
	return words
}
