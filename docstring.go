// Copyright 2021 Jonathan Amsterdam.

package cmdline

// Heuristics for mining documentation text. A documentation block has
// leading paragraphs that describe a program or command in general,
// optionally followed by parameter descriptions in any of three
// conventions:
//
//	name -- description
//	:param name: description
//	@param name: description
//
// The mining is best-effort and never fails: malformed text just yields
// an empty usage message or fewer descriptions.

import (
	"regexp"
	"strings"
)

// Matches a "name -- description" parameter line.
var paramDashRE = regexp.MustCompile(`^(\w+) --`)

// paramStart reports whether s opens a parameter description, in any of
// the three conventions.
func paramStart(s string) bool {
	return strings.HasPrefix(s, ":param") ||
		strings.HasPrefix(s, "@param") ||
		paramDashRE.MatchString(s)
}

// usageMessage returns the part of doc that describes a program or
// command in general: the paragraphs before the first parameter
// description or ">>>" example block.
func usageMessage(doc string) string {
	if doc == "" {
		return ""
	}
	var paras []string
	for _, para := range strings.Split(doc, "\n\n") {
		if strings.HasPrefix(para, ">>>") || paramStart(para) {
			break
		}
		paras = append(paras, para)
	}
	return strings.TrimSpace(strings.Join(paras, "\n\n"))
}

// paramSummaries returns a map from parameter name to description mined
// from doc. A description continues across indented lines and
// blank-line-separated paragraphs until a new description begins, a
// non-indented line that is not a description appears, or the text ends.
// Runs of blank lines inside a description collapse to one paragraph
// break; continuation lines are joined with single spaces.
func paramSummaries(doc string) map[string]string {
	summaries := map[string]string{}
	if doc == "" {
		return summaries
	}

	name := ""    // parameter whose description is being collected, if any
	blank := false // a blank line was seen; it may be a paragraph break
	for _, line := range strings.Split(doc, "\n") {
		rest := ""
		started := false
		if m := paramDashRE.FindStringSubmatch(line); m != nil {
			name = m[1]
			rest = strings.TrimSpace(line[len(m[0]):])
			started = true
		} else if strings.HasPrefix(line, ":param ") || strings.HasPrefix(line, "@param ") {
			if i := strings.Index(line[7:], ":"); i >= 0 {
				name = line[7 : 7+i]
				rest = strings.TrimSpace(line[7+i+1:])
				started = true
			}
		} else if line != "" && strings.TrimLeft(line, " \t") == line {
			// Not blank, not indented, and not a description start:
			// whatever description was being collected is finished.
			name = ""
			continue
		}

		if name == "" {
			continue
		}
		switch {
		case started:
			summaries[name] = rest
			blank = false
		case line == "":
			blank = true
		case blank:
			summaries[name] += "\n\n" + strings.TrimSpace(line)
			blank = false
		default:
			summaries[name] += " " + strings.TrimSpace(line)
		}
	}
	return summaries
}

// firstSentence returns s through its first period, for one-line command
// listings.
func firstSentence(s string) string {
	if i := strings.Index(s, "."); i > 0 {
		return s[:i+1]
	}
	return s
}
