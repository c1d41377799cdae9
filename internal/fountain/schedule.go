package fountain

import (
	"fmt"
	"sort"
	"strings"
)

// FormatSchedule serializes setup groups into shooting order: all content
// for setup A, then B, and so on. counts carries the disambiguation state
// for this pass and must be freshly reset by the caller.
func FormatSchedule(groups map[string][]Block, counts map[SuffixKey]int) (string, error) {
	letters := make([]string, 0, len(groups))
	for letter := range groups {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	var out []string
	for i, letter := range letters {
		if i > 0 {
			out = append(out, "===", "")
		}
		out = append(out, ".SETUP "+letter, "")
		for _, b := range groups[letter] {
			suffix, err := NextSuffix(counts, SuffixKey{SceneNumber: b.SceneNumber, Letter: letter})
			if err != nil {
				return "", err
			}
			out = append(out, sceneLabel(b, suffix), "")
			out = append(out, trimBlankEdges(filterScheduleLines(b.ContentLines))...)
			out = append(out, "")
		}
	}
	return strings.Join(out, "\n"), nil
}

// sceneLabel builds the forced heading for a block with the unique marker
// token at the end. The token reuses the explicit scene number shape, so a
// re-scan of the output would pick it up as a scene number.
func sceneLabel(b Block, suffix string) string {
	return fmt.Sprintf(".SCENE %d - SETUP %s: %s #%d%s%s#",
		b.SceneNumber, b.Setup.Letter, b.Setup.Description,
		b.SceneNumber, b.Setup.Letter, suffix)
}

// filterScheduleLines drops transition lines (trimmed text ending in "TO:")
// and prior synopsis annotations (trimmed text starting with "=").
func filterScheduleLines(lines []string) []string {
	var kept []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasSuffix(trimmed, "TO:") || strings.HasPrefix(trimmed, "=") {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

// trimBlankEdges removes leading and trailing blank lines, keeping interior
// blanks.
func trimBlankEdges(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
