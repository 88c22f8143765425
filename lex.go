package dentaku

import (
	"sort"
	"strings"
	"unicode"
)

// cursor is a read position over a single line from which all whitespace has
// been removed.
type cursor struct {
	line string
	pos  int
	// gaps holds the offsets in line at which whitespace was removed, in
	// increasing order. Number literals end at a gap.
	gaps []int
}

// sanitize removes every whitespace rune from a line. It also returns the
// offsets in the result where whitespace used to separate two characters.
func sanitize(line string) (string, []int) {
	var (
		b     strings.Builder
		gaps  []int
		space bool
	)
	b.Grow(len(line))
	for _, r := range line {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			gaps = append(gaps, b.Len())
		}
		space = false
		b.WriteRune(r)
	}
	return b.String(), gaps
}

// reset points the cursor at the start of a new line.
func (c *cursor) reset(line string) {
	c.line, c.gaps = sanitize(line)
	c.pos = 0
}

// gap reports whether whitespace separated the byte at the cursor from the
// one before it.
func (c *cursor) gap() bool {
	k := sort.SearchInts(c.gaps, c.pos)
	return k < len(c.gaps) && c.gaps[k] == c.pos
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.line)
}

// peek returns the byte at the cursor without consuming it. At the end of the
// line the result is 0, which nothing in the grammar accepts.
func (c *cursor) peek() byte {
	if c.atEnd() {
		return 0
	}
	return c.line[c.pos]
}

// read consumes and returns one byte. Like peek, it returns 0 at the end of
// the line, but it does not move past the end.
func (c *cursor) read() byte {
	if c.atEnd() {
		return 0
	}
	b := c.line[c.pos]
	c.pos++
	return b
}

// consume advances past tok if the line continues with it and reports
// whether it did.
func (c *cursor) consume(tok string) bool {
	if strings.HasPrefix(c.line[c.pos:], tok) {
		c.pos += len(tok)
		return true
	}
	return false
}

// col is the 1-based column of the cursor in the sanitized line.
func (c *cursor) col() int {
	return c.pos + 1
}

// skipGroup moves the cursor to the first close bracket that has no matching
// open bracket after the cursor, or to the end of the line.
func (c *cursor) skipGroup() {
	depth := 0
	for ; !c.atEnd(); c.pos++ {
		switch c.line[c.pos] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return
			}
			depth--
		}
	}
}

func isLower(b byte) bool {
	return 'a' <= b && b <= 'z'
}

func isNumByte(b byte) bool {
	return '0' <= b && b <= '9' || b == '.'
}
