package llm

import "testing"

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "Apple reported strong results.",
			want:  "Apple reported strong results.",
		},
		{
			name:  "strips text fenced block",
			input: "```text\nApple reported strong results.\n```",
			want:  "Apple reported strong results.",
		},
		{
			name:  "strips plain fenced block",
			input: "```\nApple reported strong results.\n```",
			want:  "Apple reported strong results.",
		},
		{
			name:  "strips wrapping quotes",
			input: `"Apple reported strong results."`,
			want:  "Apple reported strong results.",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  Apple reported strong results.  ",
			want:  "Apple reported strong results.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
