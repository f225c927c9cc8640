package lcsubstr

import (
	"cmp"
	"slices"
)

// BuildSuffixArray returns the start of every suffix of text, in lexicographic order.
// Prefix doubling: after the round with step k, suffixes are ranked by their first 2k symbols.
// Every round is a counting sort, O(n * log(n)) overall.
func BuildSuffixArray(text []int32) []int {
	n := len(text)
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	if n < 2 {
		return sa
	}

	slices.SortFunc(sa, func(x, y int) int {
		return cmp.Compare(text[x], text[y])
	})
	rank := make([]int, n)
	classes := 1
	for i := 1; i < n; i++ {
		if text[sa[i]] != text[sa[i-1]] {
			classes++
		}
		rank[sa[i]] = classes - 1
	}

	next := make([]int, n)
	bySecond := make([]int, n)
	count := make([]int, n)
	for k := 1; classes < n; k <<= 1 {
		// Order by the second half: suffixes without one go first, the rest keep the order of sa.
		p := 0
		for i := max(n-k, 0); i < n; i++ {
			bySecond[p] = i
			p++
		}
		for _, s := range sa {
			if s >= k {
				bySecond[p] = s - k
				p++
			}
		}

		// Stable counting sort by the first half.
		clear(count[:classes])
		for _, r := range rank {
			count[r]++
		}
		sum := 0
		for c := range classes {
			count[c], sum = sum, sum+count[c]
		}
		for _, s := range bySecond {
			sa[count[rank[s]]] = s
			count[rank[s]]++
		}

		next[sa[0]] = 0
		classes = 1
		for i := 1; i < n; i++ {
			cur, prev := sa[i], sa[i-1]
			if rank[cur] != rank[prev] || rankAt(rank, cur+k) != rankAt(rank, prev+k) {
				classes++
			}
			next[cur] = classes - 1
		}
		rank, next = next, rank
	}

	return sa
}

// rankAt is the rank of the suffix at i, -1 past the end of the text.
func rankAt(rank []int, i int) int {
	if i < len(rank) {
		return rank[i]
	}
	return -1
}
