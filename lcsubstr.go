package lcsubstr

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrNilSequence   = errors.New("lcsubstr: nil input sequence")
	ErrNoSequences   = errors.New("lcsubstr: at least one input sequence is required")
	ErrInvalidUTF8   = errors.New("lcsubstr: invalid UTF-8 encoding in input")
	ErrInputTooLarge = errors.New("lcsubstr: combined input is too large")
)

// Match describes a common contiguous run.
// Offsets[i] is where the run starts in the i-th input. A zero-length Match has no offsets.
type Match struct {
	Offsets []int
	Length  int
}

// Substring is a Match over text inputs, along with the run itself.
type Substring struct {
	Text string
	Match
}

type MatcherBuilder struct {
	ignoreCase     bool
	normalize      bool
	useSuffixArray bool
}

// NewBuilder returns a builder for a case sensitive matcher that compares code points as given,
// using the dynamic programming table.
func NewBuilder() *MatcherBuilder {
	return &MatcherBuilder{}
}

// Compares text after full Unicode case folding.
// Folding may change the number of code points ("ß" folds to "ss"), offsets refer to the folded text.
func (b *MatcherBuilder) IgnoreCase() *MatcherBuilder {
	b.ignoreCase = true
	return b
}

// Normalizes text with NFC before comparing, so canonically equivalent text matches.
func (b *MatcherBuilder) Normalize() *MatcherBuilder {
	b.normalize = true
	return b
}

// Uses the suffix array instead of the table.
// Runs in O((|A|+|B|) * log(|A|+|B|)) instead of O(|A| * |B|), at the cost of a few O(|A|+|B|) arrays.
// Trade-off: worth it for long inputs, slower than the table for short ones.
func (b *MatcherBuilder) UseSuffixArray() *MatcherBuilder {
	b.useSuffixArray = true
	return b
}

func (b *MatcherBuilder) Build() *Matcher {
	return &Matcher{
		ignoreCase:     b.ignoreCase,
		normalize:      b.normalize,
		useSuffixArray: b.useSuffixArray,
	}
}

// Matcher finds common substrings of strings, character by character, where a character is a code point.
// A Matcher holds no state between calls and is safe for concurrent use.
type Matcher struct {
	ignoreCase     bool
	normalize      bool
	useSuffixArray bool
}

var defaultMatcher = NewBuilder().Build()

// LengthString returns the length, in code points, of the longest common substring of a and b.
func LengthString(a, b string) (int, error) {
	return defaultMatcher.Length(a, b)
}

func (m *Matcher) Length(a, b string) (int, error) {
	seqs, err := m.prepare(a, b)
	if err != nil {
		return 0, err
	}
	if m.useSuffixArray {
		match, err := FindCommon(seqs...)
		return match.Length, err
	}
	return Length(seqs[0], seqs[1])
}

// Find returns the longest common substring of a and b.
// Offsets and length count code points of the transformed inputs.
func (m *Matcher) Find(a, b string) (Substring, error) {
	seqs, err := m.prepare(a, b)
	if err != nil {
		return Substring{}, err
	}

	var match Match
	if m.useSuffixArray {
		match, err = FindCommon(seqs...)
	} else {
		match, err = Find(seqs[0], seqs[1])
	}
	if err != nil {
		return Substring{}, err
	}
	return substring(seqs, match), nil
}

// FindCommon returns the longest substring that occurs in every one of texts.
// It always uses the suffix array.
func (m *Matcher) FindCommon(texts ...string) (Substring, error) {
	if len(texts) == 0 {
		return Substring{}, ErrNoSequences
	}
	seqs, err := m.prepare(texts...)
	if err != nil {
		return Substring{}, err
	}
	match, err := FindCommon(seqs...)
	if err != nil {
		return Substring{}, err
	}
	return substring(seqs, match), nil
}

func (m *Matcher) prepare(texts ...string) ([][]rune, error) {
	seqs := make([][]rune, len(texts))
	for i, text := range texts {
		if !utf8.ValidString(text) {
			return nil, ErrInvalidUTF8
		}
		seqs[i] = m.applyTransforms(text)
	}
	return seqs, nil
}

func (m *Matcher) applyTransforms(text string) []rune {
	if m.ignoreCase {
		// Casers keep state, so one per call.
		text = cases.Fold().String(text)
	}
	if m.normalize {
		text = norm.NFC.String(text)
	}
	r := []rune(text)
	if r == nil {
		// An empty text is not an absent one.
		r = []rune{}
	}
	return r
}

func substring(seqs [][]rune, match Match) Substring {
	if match.Length == 0 {
		return Substring{}
	}
	start := match.Offsets[0]
	return Substring{
		Text:  string(seqs[0][start : start+match.Length]),
		Match: match,
	}
}
