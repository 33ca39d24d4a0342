package parser

import (
	"strings"
)

// AliasDirective is the directive keyword that declares a register alias.
const AliasDirective = "#ALIAS"

// IsComment returns whether a trimmed line is a whole-line comment.
// Directive lines also start with '#' and have to be checked first.
func IsComment(line string) bool {
	return len(line) > 0 && (line[0] == ';' || line[0] == '#')
}

// IsDirective returns whether a trimmed line is an alias directive.
func IsDirective(line string) bool {
	return len(line) > len(AliasDirective) && strings.HasPrefix(line, AliasDirective)
}

// IsLabel returns whether a line declares a label. A label is a non-empty
// name up to the first colon, starting with a letter or underscore.
func IsLabel(line string) bool {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return false
	}
	name := strings.TrimSpace(line[:colon])
	if name == "" {
		return false
	}
	first := name[0]
	return first == '_' || (first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')
}

// LabelName returns the declared label name of a label line.
func LabelName(line string) string {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return ""
	}
	return strings.TrimSpace(line[:colon])
}

// IsValidName returns whether a name consists of letters, digits and
// underscores only, with a letter or underscore first. Label and alias
// names follow the same shape.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Tokenize splits an operand string on commas and whitespace.
func Tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// Split breaks a trimmed instruction line into its upper-cased mnemonic and
// the operand tokens.
func Split(line string) (string, []string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}
	cut := strings.IndexAny(line, " \t")
	if cut < 0 {
		return strings.ToUpper(line), nil
	}
	return strings.ToUpper(line[:cut]), Tokenize(line[cut+1:])
}

// SplitDirective breaks a trimmed alias directive line into its argument
// tokens, the register token and the alias name.
func SplitDirective(line string) []string {
	return Tokenize(line[len(AliasDirective):])
}
