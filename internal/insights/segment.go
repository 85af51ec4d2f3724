package insights

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resumesense/internal/keywords"
)

const maxHeadingWords = 8

var headingChars = regexp.MustCompile(`^[A-Za-z0-9 &/+-]+$`)

// Block is the text found under a heading. Heading is lowercase.
type Block struct {
	Heading string
	Body    string
}

// LooksLikeHeading reports whether a trimmed line reads as a section
// heading: at least three characters, at most eight words, and either ending
// in a colon, fully upper-case or title-cased plain text.
func LooksLikeHeading(line string) bool {
	if utf8.RuneCountInString(line) < 3 || len(strings.Fields(line)) > maxHeadingWords {
		return false
	}
	if strings.HasSuffix(line, ":") {
		return true
	}
	if keywords.IsUpperText(line) {
		return true
	}
	return headingChars.MatchString(line) && keywords.IsTitleText(line)
}

type segmentState int

const (
	outsideSection segmentState = iota
	inSection
)

// segmenter groups lines under the most recent heading. Text before the
// first heading is discarded.
type segmenter struct {
	state   segmentState
	heading string
	lines   []string
	blocks  []Block
}

func (s *segmenter) feed(line string) {
	stripped := strings.TrimSpace(line)

	switch {
	case stripped == "":
		// Runs of blank lines collapse to one separator inside a block.
		if n := len(s.lines); n > 0 && s.lines[n-1] != "" {
			s.lines = append(s.lines, "")
		}
	case LooksLikeHeading(stripped):
		s.closeBlock()
		s.state = inSection
		s.heading = stripped
		s.lines = nil
	case s.state == inSection:
		s.lines = append(s.lines, stripped)
	}
}

func (s *segmenter) closeBlock() {
	if s.state != inSection || len(s.lines) == 0 {
		return
	}
	s.blocks = append(s.blocks, Block{
		Heading: strings.ToLower(s.heading),
		Body:    strings.TrimSpace(strings.Join(s.lines, "\n")),
	})
}

func (s *segmenter) finish() []Block {
	s.closeBlock()
	return s.blocks
}

// SegmentBlocks splits text into headed blocks in document order.
func SegmentBlocks(text string) []Block {
	var s segmenter
	for _, line := range splitLines(text) {
		s.feed(line)
	}
	return s.finish()
}

// blocksMatching returns the bodies of blocks whose heading contains any of
// the given header terms.
func blocksMatching(blocks []Block, headers []string) []string {
	var bodies []string
	for _, b := range blocks {
		for _, h := range headers {
			if strings.Contains(b.Heading, h) {
				bodies = append(bodies, b.Body)
				break
			}
		}
	}
	return bodies
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
