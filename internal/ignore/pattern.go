package ignore

import (
	"regexp"
	"strings"
)

// Characters that must match literally when they appear in a rule line.
const regexMeta = `+()^$.{}[]|\`

// compileLine turns one raw rule line into a Rule.
//
// Returns (nil, nil) for blank lines and comments, and (nil, warning) for
// lines that cannot be compiled. The steps mirror gitignore semantics:
//
//  1. Trim surrounding whitespace; skip blanks and '#' comments.
//  2. A leading '!' marks negation and is stripped.
//  3. Separators are normalized to '/'.
//  4. A trailing '/' makes the rule cover the whole subtree, so "build/"
//     becomes "build/**". The bare directory name itself is matched by the
//     directory predicate, not by the rule (see check.go).
//  5. A leading '/' anchors the rule to the traversal root. Anything else
//     gets a "**/" prefix so it matches at any depth.
//  6. The glob is translated into a fully-anchored regular expression.
func compileLine(line string, lineNum int) (*Rule, *ParseWarning) {
	original := strings.TrimSpace(line)
	if original == "" || strings.HasPrefix(original, "#") {
		return nil, nil
	}

	pat := original
	negate := false
	if strings.HasPrefix(pat, "!") {
		negate = true
		pat = pat[1:]
	}
	if pat == "" {
		return nil, &ParseWarning{Pattern: original, Line: lineNum, Message: "empty pattern"}
	}

	pat = strings.ReplaceAll(pat, "\\", "/")

	if strings.HasSuffix(pat, "/") {
		pat += "**"
	}

	if strings.HasPrefix(pat, "/") {
		pat = pat[1:]
	} else if !strings.HasPrefix(pat, "**/") {
		pat = "**/" + pat
	}
	if pat == "" {
		return nil, &ParseWarning{Pattern: original, Line: lineNum, Message: "empty pattern after removing leading slash"}
	}

	re, err := regexp.Compile(translateGlob(pat))
	if err != nil {
		return nil, &ParseWarning{Pattern: original, Line: lineNum, Message: err.Error()}
	}

	return &Rule{pattern: original, re: re, negate: negate}, nil
}

// translateGlob converts a normalized glob into anchored regexp source.
//
//	**/  zero or more whole path segments, including none
//	**   any characters, '/' included
//	*    any characters except '/'
//	?    one character except '/'
//
// Regexp metacharacters in the glob are escaped so they match literally;
// character classes and brace expansion are not supported.
func translateGlob(glob string) string {
	var sb strings.Builder
	sb.WriteByte('^')
	for i := 0; i < len(glob); {
		switch {
		case strings.HasPrefix(glob[i:], "**/"):
			sb.WriteString(`(?:[^/]+/)*`)
			i += 3
		case strings.HasPrefix(glob[i:], "**"):
			sb.WriteString(`.*`)
			i += 2
		case glob[i] == '*':
			sb.WriteString(`[^/]*`)
			i++
		case glob[i] == '?':
			sb.WriteString(`[^/]`)
			i++
		case strings.IndexByte(regexMeta, glob[i]) >= 0:
			sb.WriteByte('\\')
			sb.WriteByte(glob[i])
			i++
		default:
			sb.WriteByte(glob[i])
			i++
		}
	}
	sb.WriteByte('$')
	return sb.String()
}
