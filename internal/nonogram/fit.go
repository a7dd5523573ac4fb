package nonogram

import "fmt"

// Fit returns the cells shared by every placement of clues that agrees with
// the known cells of line. A cell equal in all placements is fixed; the others
// are Unknown. Fit returns ErrContradiction when no placement exists.
func Fit(line Line, clues Clues) (Line, error) {
	for _, n := range clues {
		if n <= 0 {
			return nil, fmt.Errorf("invalid clue %d in %v", n, clues)
		}
	}
	f := &fitter{
		line:  line,
		clues: clues,
		memo:  make(map[int]Line),
	}
	out := f.fit(0, 0)
	if out == nil {
		return nil, ErrContradiction
	}
	return out, nil
}

type fitter struct {
	line  Line
	clues Clues
	// memo holds the fit of line[start:] with clues[k:], keyed by
	// start*(len(clues)+1)+k. A nil value records that no placement exists.
	memo map[int]Line
}

func (f *fitter) fit(start, k int) Line {
	key := start*(len(f.clues)+1) + k
	if out, ok := f.memo[key]; ok {
		return out
	}
	out := f.place(start, k)
	f.memo[key] = out
	return out
}

// place places clue k at every offset from start and merges the results.
func (f *fitter) place(start, k int) Line {
	n := len(f.line)
	if k == len(f.clues) {
		for _, c := range f.line[start:] {
			if c == Filled {
				return nil
			}
		}
		return NewLine(n-start, Empty)
	}

	num := f.clues[k]
	last := k == len(f.clues)-1
	var merged Line

	for i := start; i+num <= n; i++ {
		if i > start && f.line[i-1] == Filled {
			// Every later offset would leave this filled cell empty.
			break
		}
		if !f.canFill(i, i+num) {
			continue
		}

		next := i + num
		if !last {
			if next >= n || f.line[next] == Filled {
				continue
			}
			next++
		}
		rest := f.fit(next, k+1)
		if rest == nil {
			continue
		}

		candidate := make(Line, 0, n-start)
		candidate = append(candidate, NewLine(i-start, Empty)...)
		candidate = append(candidate, NewLine(num, Filled)...)
		if !last {
			candidate = append(candidate, Empty)
		}
		candidate = append(candidate, rest...)

		if merged == nil {
			merged = candidate
			continue
		}
		for j := range merged {
			if merged[j] != candidate[j] {
				merged[j] = Unknown
			}
		}
	}
	return merged
}

func (f *fitter) canFill(from, to int) bool {
	for _, c := range f.line[from:to] {
		if c == Empty {
			return false
		}
	}
	return true
}
