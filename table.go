package lcsubstr

// Length returns the length of the longest contiguous run that appears in both a and b.
// Runs in O(|a| * |b|) time and O(min(|a|, |b|)) memory.
// An empty input gives 0, a nil one fails with ErrNilSequence.
func Length[T comparable](a, b []T) (int, error) {
	if a == nil || b == nil {
		return 0, ErrNilSequence
	}
	if len(b) > len(a) {
		a, b = b, a
	}
	best, _, _ := scan(a, b)
	return best, nil
}

// Find is Length, but also reports where the run is.
// On ties, the run ending first in a wins, then the one ending first in b.
// Uses O(|b|) memory.
func Find[T comparable](a, b []T) (Match, error) {
	if a == nil || b == nil {
		return Match{}, ErrNilSequence
	}
	best, endA, endB := scan(a, b)
	if best == 0 {
		return Match{}, nil
	}
	return Match{
		Offsets: []int{endA - best, endB - best},
		Length:  best,
	}, nil
}

// scan fills the table row by row, keeping a single row.
// row[j] is the length of the common run ending at a[i-1] and b[j-1], row[0] stays 0.
// Returns the best length and where that run ends (exclusive) in a and b.
func scan[T comparable](a, b []T) (best, endA, endB int) {
	row := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		diag := 0 // row[j-1] of the previous row
		for j := 1; j <= len(b); j++ {
			up := row[j]
			if a[i-1] == b[j-1] {
				row[j] = diag + 1
				if row[j] > best {
					best, endA, endB = row[j], i, j
				}
			} else {
				row[j] = 0
			}
			diag = up
		}
	}
	return best, endA, endB
}
