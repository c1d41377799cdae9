package fountain

import (
	"fmt"
	"strings"
)

// FormatScreenplay serializes blocks in their original scan order, injecting
// setup headings with marker tokens. The scene-number label is emitted only
// when the scene number changes from the previous block; consecutive setups
// within one scene get the shorter setup-only heading. Content lines keep
// transitions and synopses, unlike the schedule output. counts carries the
// disambiguation state for this pass and must be freshly reset by the caller.
func FormatScreenplay(blocks []Block, counts map[SuffixKey]int) (string, error) {
	var out []string
	prevScene := -1
	for i, b := range blocks {
		suffix, err := NextSuffix(counts, SuffixKey{SceneNumber: b.SceneNumber, Letter: b.Setup.Letter})
		if err != nil {
			return "", err
		}
		if i > 0 {
			out = append(out, "")
		}
		if b.SceneNumber != prevScene {
			out = append(out, sceneLabel(b, suffix), "")
		} else {
			out = append(out, setupLabel(b, suffix), "")
		}
		prevScene = b.SceneNumber
		out = append(out, trimBlankEdges(b.ContentLines)...)
	}
	if len(out) > 0 {
		out = append(out, "")
	}
	return strings.Join(out, "\n"), nil
}

// setupLabel is the scene-number-free heading used when a block continues
// the previous block's scene. The marker token still embeds the number.
func setupLabel(b Block, suffix string) string {
	return fmt.Sprintf(".SETUP %s: %s #%d%s%s#",
		b.Setup.Letter, b.Setup.Description,
		b.SceneNumber, b.Setup.Letter, suffix)
}
