package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUnorderedList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"multi-line", "one\ntwo\nthree", "- one\n- two\n- three"},
		{"single line", "one", "- one"},
		{"trailing newline", "one\n", "- one\n"},
		{"blank line in the middle", "one\n\ntwo", "- one\n\n- two"},
		{"empty", "", ""},
		{"whitespace is kept", "  indented", "-   indented"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToUnorderedList(tc.input))
		})
	}
}
