package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "acme", want: "%acme%"},
		{name: "empty input matches everything", input: "", want: "%%"},
		{name: "whitespace trimmed", input: "  acme  ", want: "%acme%"},
		{name: "percent escaped", input: "50%", want: `%50\%%`},
		{name: "underscore escaped", input: "user_name", want: `%user\_name%`},
		{name: "backslash escaped first", input: `a\b`, want: `%a\\b%`},
		{name: "all metacharacters", input: `100%_done`, want: `%100\%\_done%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsPattern(tt.input))
		})
	}
}

func TestEscapeLeavesNoUnescapedMetacharacters(t *testing.T) {
	inputs := []string{"%", "_", "%%__", "a%b_c", `\%`, "pre%post", "__", "%_%"}

	for _, input := range inputs {
		escaped := Escape(input)

		// Strip every escaped pair; nothing pattern-significant may remain.
		stripped := strings.NewReplacer(`\\`, "", `\%`, "", `\_`, "").Replace(escaped)
		assert.NotContains(t, stripped, "%", "input %q left an unescaped %%", input)
		assert.NotContains(t, stripped, "_", "input %q left an unescaped _", input)
		assert.NotContains(t, stripped, `\`, "input %q left a dangling escape", input)
	}
}
