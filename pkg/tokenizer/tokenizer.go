// Package tokenizer produces a code-only projection of Rust source text.
//
// The projection has the same length and the same newline positions as the
// input: comment text and string/char-literal interiors are replaced with
// spaces, everything else is copied through verbatim. Pattern matches on the
// projection therefore report the same line numbers as the original file.
package tokenizer

type state int

const (
	stateCode state = iota
	stateLineComment
	stateBlockComment
	stateString
	stateChar
	stateRawString
)

const blank = ' '

// Blank returns the code-only projection of src.
func Blank(src string) string {
	in := []byte(src)
	out := make([]byte, len(in))

	st := stateCode
	depth := 0 // block comment nesting
	fence := 0 // raw string fence length

	for i := 0; i < len(in); i++ {
		c := in[i]

		// Newlines survive every state so line positions stay stable.
		if c == '\n' {
			out[i] = '\n'
			if st == stateLineComment {
				st = stateCode
			}
			continue
		}

		switch st {
		case stateCode:
			switch {
			case c == '/' && i+1 < len(in) && in[i+1] == '/':
				st = stateLineComment
				out[i] = blank
			case c == '/' && i+1 < len(in) && in[i+1] == '*':
				st = stateBlockComment
				depth = 1
				out[i] = blank
				out[i+1] = blank
				i++
			case c == '"':
				st = stateString
				out[i] = c
			case c == '\'' && charLiteralFollows(in, i):
				st = stateChar
				out[i] = c
			case isRawStringOpen(in, i):
				j := i
				if in[j] == 'b' {
					out[j] = in[j]
					j++
				}
				out[j] = in[j] // 'r'
				j++
				fence = 0
				for j < len(in) && in[j] == '#' {
					out[j] = '#'
					fence++
					j++
				}
				out[j] = '"'
				st = stateRawString
				i = j
			default:
				out[i] = c
			}

		case stateLineComment:
			out[i] = blank

		case stateBlockComment:
			switch {
			case c == '/' && i+1 < len(in) && in[i+1] == '*':
				depth++
				out[i] = blank
				out[i+1] = blank
				i++
			case c == '*' && i+1 < len(in) && in[i+1] == '/':
				depth--
				out[i] = blank
				out[i+1] = blank
				i++
				if depth == 0 {
					st = stateCode
				}
			default:
				out[i] = blank
			}

		case stateString:
			switch c {
			case '\\':
				// Escape consumes the next character so an escaped quote
				// cannot terminate the literal.
				out[i] = blank
				if i+1 < len(in) {
					if in[i+1] == '\n' {
						out[i+1] = '\n'
					} else {
						out[i+1] = blank
					}
					i++
				}
			case '"':
				out[i] = c
				st = stateCode
			default:
				out[i] = blank
			}

		case stateChar:
			switch c {
			case '\\':
				out[i] = blank
				if i+1 < len(in) {
					out[i+1] = blank
					i++
				}
			case '\'':
				out[i] = c
				st = stateCode
			default:
				out[i] = blank
			}

		case stateRawString:
			if c == '"' && fenceFollows(in, i+1, fence) {
				out[i] = c
				for k := 1; k <= fence; k++ {
					out[i+k] = '#'
				}
				i += fence
				st = stateCode
			} else {
				out[i] = blank
			}
		}
	}

	return string(out)
}

// Line returns the 1-based line number of the byte at offset in text.
func Line(text string, offset int) int {
	line := 1
	for i := 0; i < offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
		}
	}
	return line
}

// charLiteralFollows reports whether the quote at in[i] opens a char literal
// rather than a lifetime or loop label. A literal either escapes its payload
// ('\n') or holds exactly one character before the closing quote ('x').
func charLiteralFollows(in []byte, i int) bool {
	if i+1 >= len(in) {
		return false
	}
	if in[i+1] == '\\' {
		return true
	}
	return i+2 < len(in) && in[i+2] == '\'' && in[i+1] != '\''
}

// isRawStringOpen reports whether in[i] starts a raw string literal: an
// optional 'b', then 'r', a run of '#' fence characters and an opening quote,
// not preceded by an identifier character (so plain identifiers ending in r
// do not trigger).
func isRawStringOpen(in []byte, i int) bool {
	if i > 0 && isIdentChar(in[i-1]) {
		return false
	}
	j := i
	if j < len(in) && in[j] == 'b' {
		j++
	}
	if j >= len(in) || in[j] != 'r' {
		return false
	}
	j++
	for j < len(in) && in[j] == '#' {
		j++
	}
	return j < len(in) && in[j] == '"'
}

func fenceFollows(in []byte, i int, fence int) bool {
	if i+fence > len(in) {
		return false
	}
	for k := 0; k < fence; k++ {
		if in[i+k] != '#' {
			return false
		}
	}
	return true
}

func isIdentChar(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
