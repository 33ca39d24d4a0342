// Package parser implements the source line grammar of the assembler:
// comment stripping, label and directive classification and the literal
// token rules shared by all ISA generations.
package parser

// commentState is the state of the comment stripper between characters.
type commentState int

const (
	stateCode commentState = iota
	stateBlockComment
)

// CommentStripper removes comments from source lines. Block comments can
// span lines, so the stripper carries state from call to call and must be
// fed the lines of one file in order. Comment markers inside character
// literals are not protected.
type CommentStripper struct {
	state commentState
}

// NewCommentStripper returns a stripper in the initial in-code state.
func NewCommentStripper() *CommentStripper {
	return &CommentStripper{state: stateCode}
}

// Reset returns the stripper to the in-code state. Each pass over a file
// starts with a fresh state.
func (c *CommentStripper) Reset() {
	c.state = stateCode
}

// Strip returns the line with all comment text removed. A // marker
// truncates the rest of the line, a /* marker discards text until the
// matching */ which may be on a later line.
func (c *CommentStripper) Strip(line string) string {
	var out []byte

	for i := 0; i < len(line); {
		switch c.state {
		case stateBlockComment:
			if i+1 < len(line) && line[i] == '*' && line[i+1] == '/' {
				c.state = stateCode
				i += 2
				continue
			}
			i++

		default:
			if i+1 < len(line) && line[i] == '/' && line[i+1] == '*' {
				c.state = stateBlockComment
				i += 2
				continue
			}
			if i+1 < len(line) && line[i] == '/' && line[i+1] == '/' {
				return string(out)
			}
			out = append(out, line[i])
			i++
		}
	}
	return string(out)
}
