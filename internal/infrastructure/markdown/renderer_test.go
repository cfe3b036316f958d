package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name     string
		input    string
		contains []string
		absent   []string
	}{
		{
			name:     "heading and table",
			input:    "# Fault E42\n\n| code | meaning |\n|---|---|\n| E42 | belt slip |\n",
			contains: []string{"<h1 id=\"fault-e42\">Fault E42</h1>", "<table>", "<td>belt slip</td>"},
		},
		{
			name:     "script is stripped",
			input:    "Check the arm <script>alert(1)</script>",
			contains: []string{"Check the arm"},
			absent:   []string{"<script>"},
		},
		{
			name:   "javascript links are dropped",
			input:  "[click](javascript:alert(1))",
			absent: []string{"javascript:"},
		},
		{
			name:  "empty",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(tt.input)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}
