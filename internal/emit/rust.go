package emit

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	rustHeaderRe = regexp.MustCompile(`^pub const ([A-Za-z_][A-Za-z0-9_]*): \[&str; (\d+)\] = \[$`)
	rustItemRe   = regexp.MustCompile(`^    "(.*)",$`)
)

const rustFooter = "];"

func writeRust(w io.Writer, name string, syllables []string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "pub const %s: [&str; %d] = [\n", name, len(syllables))
	for _, s := range syllables {
		fmt.Fprintf(bw, "    \"%s\",\n", rustEscape(s))
	}
	bw.WriteString(rustFooter + "\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("emit: write rust literal: %w", err)
	}
	return nil
}

// rustEscape escapes s for a Rust string literal body.
func rustEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if unicode.IsControl(r) || r == utf8.RuneError {
				fmt.Fprintf(&b, `\u{%x}`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// rustUnescape reverses rustEscape.
func rustUnescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		if strings.ContainsRune(s, '"') {
			return "", fmt.Errorf("unescaped quote")
		}
		return s, nil
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			return "", fmt.Errorf("unescaped quote at offset %d", i)
		}
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("trailing backslash")
		}
		switch s[i] {
		case '"', '\\':
			b.WriteByte(s[i])
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '0':
			b.WriteByte(0)
		case 'u':
			end := strings.IndexByte(s[i:], '}')
			if end < 0 || i+1 >= len(s) || s[i+1] != '{' {
				return "", fmt.Errorf("bad unicode escape at offset %d", i-1)
			}
			n, err := strconv.ParseUint(s[i+2:i+end], 16, 32)
			if err != nil {
				return "", fmt.Errorf("bad unicode escape at offset %d: %w", i-1, err)
			}
			b.WriteRune(rune(n))
			i += end
		default:
			return "", fmt.Errorf("unknown escape \\%c", s[i])
		}
	}
	return b.String(), nil
}

func parseRust(r io.Reader) (Literal, error) {
	var lit Literal
	scanner := bufio.NewScanner(r)
	lineNo := 0
	headerSeen, closed := false, false

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		switch {
		case closed:
			if strings.TrimSpace(line) != "" {
				return Literal{}, malformed(lineNo, "content after closing bracket")
			}
		case !headerSeen:
			if strings.TrimSpace(line) == "" {
				continue
			}
			m := rustHeaderRe.FindStringSubmatch(line)
			if m == nil {
				return Literal{}, malformed(lineNo, "expected declaration, got %q", line)
			}
			n, err := strconv.Atoi(m[2])
			if err != nil {
				return Literal{}, malformed(lineNo, "bad length %q", m[2])
			}
			lit.Name, lit.Declared = m[1], n
			headerSeen = true
		case line == rustFooter:
			closed = true
		default:
			m := rustItemRe.FindStringSubmatch(line)
			if m == nil {
				return Literal{}, malformed(lineNo, "expected string element, got %q", line)
			}
			s, err := rustUnescape(m[1])
			if err != nil {
				return Literal{}, malformed(lineNo, "%v", err)
			}
			lit.Syllables = append(lit.Syllables, s)
		}
	}
	if err := scanner.Err(); err != nil {
		return Literal{}, fmt.Errorf("emit: read rust literal: %w", err)
	}

	if !headerSeen {
		return Literal{}, malformed(lineNo, "missing declaration")
	}
	if !closed {
		return Literal{}, malformed(lineNo, "missing %q", rustFooter)
	}
	if lit.Declared != len(lit.Syllables) {
		return Literal{}, malformed(lineNo, "declared length %d, found %d elements", lit.Declared, len(lit.Syllables))
	}
	return lit, nil
}
