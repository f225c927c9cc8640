package lcsubstr

import (
	"math/rand"
	"slices"
	"testing"
)

func toSymbols(s string) []int32 {
	text := make([]int32, len(s))
	for i := range s {
		text[i] = int32(s[i])
	}
	return text
}

func naiveSuffixArray(text []int32) []int {
	sa := make([]int, len(text))
	for i := range sa {
		sa[i] = i
	}
	slices.SortFunc(sa, func(x, y int) int {
		return slices.Compare(text[x:], text[y:])
	})
	return sa
}

func TestBuildSuffixArrayBanana(t *testing.T) {
	text := toSymbols("banana")
	sa := BuildSuffixArray(text)
	if want := []int{5, 3, 1, 0, 4, 2}; !slices.Equal(sa, want) {
		t.Fatalf("suffix array = %v, want %v", sa, want)
	}
	lcp := BuildLCPArray(sa, text)
	if want := []int{1, 3, 0, 0, 2}; !slices.Equal(lcp, want) {
		t.Fatalf("lcp = %v, want %v", lcp, want)
	}
}

func TestBuildSuffixArrayEdgeCases(t *testing.T) {
	if sa := BuildSuffixArray(nil); len(sa) != 0 {
		t.Errorf("empty text: got %v", sa)
	}
	if sa := BuildSuffixArray([]int32{7}); !slices.Equal(sa, []int{0}) {
		t.Errorf("single symbol: got %v", sa)
	}
	if lcp := BuildLCPArray([]int{0}, []int32{7}); lcp != nil {
		t.Errorf("single symbol lcp: got %v", lcp)
	}
	// Every suffix of a run is a prefix of the longer ones.
	if sa := BuildSuffixArray(toSymbols("aaaaa")); !slices.Equal(sa, []int{4, 3, 2, 1, 0}) {
		t.Errorf("run: got %v", sa)
	}
}

func TestBuildSuffixArrayRandom(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for iter := 0; iter < 200; iter++ {
		n := r.Intn(60)
		sigma := 1 + r.Intn(5)
		text := make([]int32, n)
		for i := range text {
			text[i] = int32(r.Intn(sigma))
		}

		sa := BuildSuffixArray(text)
		if want := naiveSuffixArray(text); !slices.Equal(sa, want) {
			t.Fatalf("text %v: suffix array = %v, want %v", text, sa, want)
		}

		lcp := BuildLCPArray(sa, text)
		for i := range lcp {
			a, b := text[sa[i]:], text[sa[i+1]:]
			want := 0
			for want < len(a) && want < len(b) && a[want] == b[want] {
				want++
			}
			if lcp[i] != want {
				t.Fatalf("text %v: lcp[%d] = %d, want %d", text, i, lcp[i], want)
			}
		}
	}
}
