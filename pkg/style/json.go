package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// PrintJSON writes v to w as indented JSON with lightweight syntax
// highlighting. Strings and []byte are treated as raw JSON text; any other
// value is marshaled first.
func PrintJSON(w io.Writer, v any) error {
	pretty, err := FormatJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, colorizeJSON(pretty))
	return err
}

// FormatJSON returns the indented JSON representation of v.
func FormatJSON(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "null\n", nil
	case string:
		return indentJSON([]byte(x))
	case []byte:
		return indentJSON(x)
	default:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		if len(b) == 0 || b[len(b)-1] != '\n' {
			b = append(b, '\n')
		}
		return string(b), nil
	}
}

func indentJSON(src []byte) (string, error) {
	src = bytes.TrimSpace(src)
	if len(src) == 0 {
		return "null\n", nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, src, "", "  "); err != nil {
		return "", err
	}
	if out.Len() == 0 || out.Bytes()[out.Len()-1] != '\n' {
		_ = out.WriteByte('\n')
	}
	return out.String(), nil
}

// colorizeJSON highlights JSON tokens in already-indented text. Only
// semantic tokens are colored; indentation and whitespace pass through.
func colorizeJSON(s string) string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorJSONKey).Bold(true)
	strStyle := lipgloss.NewStyle().Foreground(ColorText)
	numStyle := lipgloss.NewStyle().Foreground(ColorJSONNumber)
	boolStyle := lipgloss.NewStyle().Foreground(ColorJSONBool)
	nullStyle := lipgloss.NewStyle().Foreground(ColorJSONNull)
	punctStyle := lipgloss.NewStyle().Foreground(ColorJSONPunct)

	var b bytes.Buffer
	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == '"':
			end := stringTokenEnd(s, i)
			token := s[i:end]
			// A string followed by ':' (after optional whitespace) is a key.
			j := end
			for j < len(s) && unicode.IsSpace(rune(s[j])) {
				j++
			}
			if j < len(s) && s[j] == ':' {
				b.WriteString(keyStyle.Render(token))
			} else {
				b.WriteString(strStyle.Render(token))
			}
			i = end
		case ch == '{' || ch == '}' || ch == '[' || ch == ']' || ch == ':' || ch == ',':
			b.WriteString(punctStyle.Render(string(ch)))
			i++
		case ch == '-' || (ch >= '0' && ch <= '9'):
			end := numberTokenEnd(s, i)
			b.WriteString(numStyle.Render(s[i:end]))
			i = end
		case hasPrefixAt(s, i, "true"):
			b.WriteString(boolStyle.Render("true"))
			i += 4
		case hasPrefixAt(s, i, "false"):
			b.WriteString(boolStyle.Render("false"))
			i += 5
		case hasPrefixAt(s, i, "null"):
			b.WriteString(nullStyle.Render("null"))
			i += 4
		default:
			b.WriteByte(ch)
			i++
		}
	}
	return b.String()
}

// stringTokenEnd returns the offset just past the string token starting at
// the opening quote, honoring backslash escapes.
func stringTokenEnd(s string, start int) int {
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(s)
}

func numberTokenEnd(s string, start int) int {
	i := start
	if i < len(s) && s[i] == '-' {
		i++
	}
	for i < len(s) {
		ch := s[i]
		if (ch >= '0' && ch <= '9') || ch == '.' || ch == 'e' || ch == 'E' || ch == '+' || ch == '-' {
			i++
			continue
		}
		break
	}
	return i
}

func hasPrefixAt(s string, i int, prefix string) bool {
	return i+len(prefix) <= len(s) && s[i:i+len(prefix)] == prefix
}
