package wsadmin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"empty brackets", "[]", []string{}},
		{"bracketed", "[a b c]", []string{"a", "b", "c"}},
		{"unix lines", "a\nb\nc", []string{"a", "b", "c"}},
		{"windows lines", "a\r\nb\r\nc\r\n", []string{"a", "b", "c"}},
		{"blank lines", "a\n\nb", []string{"a", "b"}},
		{"double space", "[a  b]", []string{"a", "b"}},
		{"whitespace only", " \r\n\t\n  ", []string{}},
		{"single token", "server1", []string{"server1"}},
		{"duplicates kept", "[a a b a]", []string{"a", "a", "b", "a"}},
		{"leading space kept", "  a\n b", []string{"  a", " b"}},
		{"trailing tabs trimmed", "a\t\t\nb ", []string{"a", "b"}},
		{"vertical tab and form feed", "a\v\f\nb", []string{"a", "b"}},
		{"non-ascii space kept", "a\u00a0\nb\u0085", []string{"a\u00a0", "b\u0085"}},
		{"lone open bracket", "[", []string{"["}},
		{"lone close bracket", "]", []string{"]"}},
		{"unterminated bracket", "[a b", []string{"[a b"}},
		{"brackets across lines", "[a\nb]", []string{"a\nb"}},
		{"brackets inside lines", "x\n[a b]", []string{"x", "[a b]"}},
		{
			"config ids",
			"(cells/c1/nodes/n1/servers/server1|server.xml#Server_1)\r\n(cells/c1/nodes/n1/servers/dmgr|server.xml#Server_2)\r\n",
			[]string{
				"(cells/c1/nodes/n1/servers/server1|server.xml#Server_1)",
				"(cells/c1/nodes/n1/servers/dmgr|server.xml#Server_2)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToList(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToListTokensNonEmpty(t *testing.T) {
	inputs := []string{"", "[]", "[ ]", "[  ]", "\n\n", "\r\n", "[a  b   c]", "a\r\n\r\n\tb", "[\r]"}
	for _, input := range inputs {
		for _, token := range ToList(input) {
			assert.NotEmpty(t, token, "input %q", input)
			assert.Equal(t, strings.TrimRight(token, " \t\r\n"), token, "input %q", input)
		}
	}
}

func TestToListRoundTrip(t *testing.T) {
	inputs := []string{
		"[a b c]",
		"[a  b]",
		"a\r\nb\r\nc\r\n",
		"a\n\nb",
		"(cells/c1|cell.xml#Cell_1)\n(cells/c1/nodes/n1|node.xml#Node_1)",
	}

	for _, input := range inputs {
		tokens := ToList(input)
		assert.Equal(t, tokens, ToList(FormatList(tokens)), "bracketed %q", input)
		assert.Equal(t, tokens, ToList(FormatLines(tokens)), "lines %q", input)
	}
}

func TestFormatList(t *testing.T) {
	assert.Equal(t, "[]", FormatList(nil))
	assert.Equal(t, "[a b c]", FormatList([]string{"a", "b", "c"}))
	assert.Equal(t, "", FormatLines(nil))
	assert.Equal(t, "a\nb", FormatLines([]string{"a", "b"}))
}

func TestToListConcurrent(t *testing.T) {
	done := make(chan []string)
	for i := 0; i < 8; i++ {
		go func() {
			done <- ToList("[a b c]")
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, []string{"a", "b", "c"}, <-done)
	}
}
