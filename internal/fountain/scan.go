package fountain

import (
	"regexp"
	"strconv"
	"strings"
)

// Default recognition patterns. The setup marker must sit at the start of
// the line; the scene number marker is searched anywhere in a heading.
const (
	defaultSetupPattern       = `^\[\[SETUP\s+([A-Z]):\s*(.+?)\]\]`
	defaultSceneNumberPattern = `#(\d+)#`
)

// Scanner segments a Fountain document into setup-tagged content blocks.
// Its only configuration is the two recognition patterns.
type Scanner struct {
	setupRe       *regexp.Regexp
	sceneNumberRe *regexp.Regexp
}

// NewScanner returns a Scanner with the default recognition patterns.
func NewScanner() *Scanner {
	return &Scanner{
		setupRe:       regexp.MustCompile(defaultSetupPattern),
		sceneNumberRe: regexp.MustCompile(defaultSceneNumberPattern),
	}
}

// scanState is the accumulator threaded through the line scan.
type scanState struct {
	setup       *Setup
	sceneNumber int
	heading     string
	buffer      []string
	blocks      []Block
}

// flush emits the accumulated block if a setup is active and at least one
// content line was collected. Empty runs never become a block.
func (st *scanState) flush() {
	if st.setup != nil && len(st.buffer) > 0 {
		st.blocks = append(st.blocks, Block{
			Setup:        *st.setup,
			SceneNumber:  st.sceneNumber,
			SceneHeading: st.heading,
			ContentLines: st.buffer,
		})
	}
	st.buffer = nil
}

// Scan processes text line by line and returns the blocks in document order.
func (sc *Scanner) Scan(text string) []Block {
	var st scanState
	for _, line := range strings.Split(text, "\n") {
		sc.scanLine(&st, line)
	}
	st.flush()
	return st.blocks
}

// scanLine classifies one line and advances the state. Classification
// precedence: scene heading, setup marker, content.
func (sc *Scanner) scanLine(st *scanState, line string) {
	if isSceneHeading(line) {
		st.flush()
		// A setup's scope never crosses a scene boundary.
		st.setup = nil
		st.heading = line
		if m := sc.sceneNumberRe.FindStringSubmatch(line); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				st.sceneNumber = n
				return
			}
		}
		st.sceneNumber++
		return
	}
	if m := sc.setupRe.FindStringSubmatch(line); m != nil {
		st.flush()
		st.setup = &Setup{Letter: m[1], Description: strings.TrimSpace(m[2])}
		return
	}
	if st.setup != nil {
		st.buffer = append(st.buffer, line)
	}
}

var headingPrefixes = []string{"INT.", "EXT.", "INT ", "EXT ", "I/E."}

// isSceneHeading reports whether a line opens a new scene: an INT./EXT.
// style heading (case-insensitive) or a forced heading starting with ".".
func isSceneHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, ".") {
		return true
	}
	upper := strings.ToUpper(trimmed)
	for _, p := range headingPrefixes {
		if strings.HasPrefix(upper, p) {
			return true
		}
	}
	return false
}
