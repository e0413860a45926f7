package markdown

import "strings"

// ToUnorderedList prefixes every non-empty line of text with "- ". Blank
// lines, including a trailing one, are kept without a bullet.
func ToUnorderedList(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "- " + line
		}
	}
	return strings.Join(lines, "\n")
}
