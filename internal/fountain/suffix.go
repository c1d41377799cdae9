package fountain

import "fmt"

// maxSuffixed is the number of distinct letter suffixes available:
// 26 one-letter + 676 two-letter + 17576 three-letter.
const maxSuffixed = 26 + 26*26 + 26*26*26

// SuffixKey identifies a (scene number, setup letter) pair whose repeated
// occurrences need disambiguation.
type SuffixKey struct {
	SceneNumber int
	Letter      string
}

// SuffixSpaceError reports exhaustion of the three-letter suffix space for
// one (scene, setup) key. It aborts the whole formatting pass; partial
// output is not meaningful.
type SuffixSpaceError struct {
	SceneNumber int
	Letter      string
}

func (e *SuffixSpaceError) Error() string {
	return fmt.Sprintf("suffix space exhausted for scene %d setup %s", e.SceneNumber, e.Letter)
}

// NextSuffix returns the disambiguation suffix for the next occurrence of
// key and records the occurrence in counts. The first occurrence gets the
// empty suffix; later ones get A, B, ... Z, AA, AB, ... ZZZ in bijective
// base-26. counts is caller-owned and must be freshly reset at the start of
// each formatting pass.
func NextSuffix(counts map[SuffixKey]int, key SuffixKey) (string, error) {
	n := counts[key]
	counts[key]++
	if n == 0 {
		return "", nil
	}
	if n > maxSuffixed {
		return "", &SuffixSpaceError{SceneNumber: key.SceneNumber, Letter: key.Letter}
	}
	return bijective26(n), nil
}

// bijective26 renders n >= 1 in bijective base-26 with digits A-Z
// (1 is A, 26 is Z, 27 is AA).
func bijective26(n int) string {
	var buf [3]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf[i:])
}
