package visatest

import (
	"fmt"
	"regexp"
	"strings"
)

// compileMatchExpression translates a VISA resource match expression into an
// anchored, case-insensitive regular expression.
//
// The grammar: ? matches any one character; \ makes the following special
// character ordinary; [list] matches any one character in the set and [^list]
// any character not in it, both supporting - ranges; * and + match zero-or-more
// and one-or-more occurrences of the preceding atom; exp|exp matches either
// full expression; (exp) groups.
func compileMatchExpression(expr string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString("(?i)^(?:")

	runes := []rune(expr)
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch c {
		case '?':
			sb.WriteByte('.')

		case '\\':
			if i+1 >= len(runes) {
				return nil, fmt.Errorf("visatest: trailing backslash in match expression %q", expr)
			}
			i++
			sb.WriteString(regexp.QuoteMeta(string(runes[i])))

		case '[':
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == ']' {
					end = j
					break
				}
			}
			if end < 0 {
				return nil, fmt.Errorf("visatest: unterminated character set in match expression %q", expr)
			}
			// Character set syntax matches regexp directly.
			sb.WriteString(string(runes[i : end+1]))
			i = end

		case '*', '+', '|', '(', ')':
			sb.WriteRune(c)

		default:
			sb.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	sb.WriteString(")$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("visatest: invalid match expression %q: %w", expr, err)
	}

	return re, nil
}
