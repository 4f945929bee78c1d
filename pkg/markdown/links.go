package markdown

import (
	"bytes"
	"regexp"
)

// linkDefPattern matches a reference-link definition line: "[label]: target".
var linkDefPattern = regexp.MustCompile(`^\[([^\]]+)\]:[ \t]+(\S+)[ \t]*$`)

// ExtractLinkDefs strips trailing "[label]: target" lines (and the blank
// lines around them) from source and returns the remaining body plus the
// collected definitions. Only a trailing run of definition lines is
// recognized; bracketed text earlier in the document is left alone.
func ExtractLinkDefs(source []byte) ([]byte, Links) {
	links := Links{}
	end := len(source)

	for end > 0 {
		lineStart := bytes.LastIndexByte(source[:end-trailingNewline(source[:end])], '\n') + 1
		line := bytes.TrimRight(source[lineStart:end], "\n")

		if len(bytes.TrimSpace(line)) == 0 {
			end = lineStart
			continue
		}
		m := linkDefPattern.FindSubmatch(line)
		if m == nil {
			break
		}
		links[string(m[1])] = string(m[2])
		end = lineStart
	}

	return source[:end], links
}

func trailingNewline(b []byte) int {
	if len(b) > 0 && b[len(b)-1] == '\n' {
		return 1
	}
	return 0
}
