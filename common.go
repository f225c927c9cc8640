package lcsubstr

import (
	"cmp"
	"math"
	"slices"

	"github.com/viniciusth/rmq"
)

// FindCommon returns the longest contiguous run that occurs in every one of seqs.
//
// The inputs are joined, each followed by its own separator, and suffix sorted.
// A run common to all inputs is a common prefix of a block of consecutive suffixes
// that has at least one suffix from every input, and the common prefix of a block is
// the minimum of the LCP array over it. A sliding window over the suffix array finds the
// best block in O(N * log(N)) overall, N being the total length.
//
// A single input is its own longest common substring. An empty input gives an empty Match.
func FindCommon[T cmp.Ordered](seqs ...[]T) (Match, error) {
	if len(seqs) == 0 {
		return Match{}, ErrNoSequences
	}
	total := len(seqs)
	for _, s := range seqs {
		if s == nil {
			return Match{}, ErrNilSequence
		}
		total += len(s)
	}
	for _, s := range seqs {
		if len(s) == 0 {
			return Match{}, nil
		}
	}
	if len(seqs) == 1 {
		return Match{Offsets: []int{0}, Length: len(seqs[0])}, nil
	}
	if total > math.MaxInt32 {
		return Match{}, ErrInputTooLarge
	}

	text, owner, start := joinRanked(seqs, total)
	suffixArray := BuildSuffixArray(text)
	lcp := BuildLCPArray(suffixArray, text)
	lcpRMQ := rmq.NewRMQHybridNaive(lcp)

	l, r, best := bestCoveringWindow(suffixArray, owner, lcp, lcpRMQ, len(seqs))
	if best == 0 {
		return Match{}, nil
	}

	// Every suffix in [l, r] starts with the run, pick the first one of each input.
	offsets := make([]int, len(seqs))
	for i := range offsets {
		offsets[i] = -1
	}
	for i := l; i <= r; i++ {
		p := suffixArray[i]
		if o := owner[p]; o >= 0 && offsets[o] == -1 {
			offsets[o] = p - start[o]
		}
	}
	return Match{Offsets: offsets, Length: best}, nil
}

// joinRanked replaces every element by its rank among the distinct elements of seqs and joins
// the sequences, sequence i followed by separator i.
// Ranks start after the separators, so separators are unique and sort before any element,
// which keeps every LCP from running over a separator.
// owner[p] is the sequence that text[p] comes from, -1 for separators, start[i] is where sequence i begins.
func joinRanked[T cmp.Ordered](seqs [][]T, total int) (text []int32, owner []int, start []int) {
	values := make([]T, 0, total-len(seqs))
	for _, s := range seqs {
		values = append(values, s...)
	}
	slices.Sort(values)
	values = slices.Compact(values)

	text = make([]int32, 0, total)
	owner = make([]int, 0, total)
	start = make([]int, len(seqs))
	for i, s := range seqs {
		start[i] = len(text)
		for _, v := range s {
			r, _ := slices.BinarySearch(values, v)
			text = append(text, int32(len(seqs)+r))
			owner = append(owner, i)
		}
		text = append(text, int32(i))
		owner = append(owner, -1)
	}
	return text, owner, start
}

// bestCoveringWindow slides [l, r] over the suffix array, keeping it as short as possible while it
// holds a suffix of each of the k inputs, and scores it by its common prefix.
// Needs k >= 2, so a covering window always spans at least two suffixes.
func bestCoveringWindow(suffixArray, owner, lcp []int, lcpRMQ *rmq.RMQHybridNaive[int], k int) (bestL, bestR, best int) {
	count := make([]int, k)
	covered := 0
	l := 0
	for r := range suffixArray {
		if o := owner[suffixArray[r]]; o >= 0 {
			if count[o] == 0 {
				covered++
			}
			count[o]++
		}

		for covered == k {
			if m := lcp[lcpRMQ.Query(l, r-1)]; m > best {
				bestL, bestR, best = l, r, m
			}
			if o := owner[suffixArray[l]]; o >= 0 {
				count[o]--
				if count[o] == 0 {
					covered--
				}
			}
			l++
		}
	}
	return bestL, bestR, best
}
