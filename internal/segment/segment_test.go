package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristic_Segment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: " \n\t ",
			want:  nil,
		},
		{
			name:  "basic",
			input: "Basic chunking one. Chunking two? Chunking three!",
			want:  []string{"Basic chunking one.", "Chunking two?", "Chunking three!"},
		},
		{
			name:  "lowercase continuation is not a boundary",
			input: "Call e.g. this one. Then stop.",
			want:  []string{"Call e.g. this one.", "Then stop."},
		},
		{
			name:  "decimal numbers stay together",
			input: "Pi is 3.14 roughly. Next.",
			want:  []string{"Pi is 3.14 roughly.", "Next."},
		},
		{
			name:  "punctuation without whitespace",
			input: "Wait...Then go.",
			want:  []string{"Wait...Then go."},
		},
		{
			name:  "ellipsis before new sentence",
			input: "Wait... Then go.",
			want:  []string{"Wait...", "Then go."},
		},
		{
			name:  "abbreviation before capital is split",
			input: "Ask Dr. Smith now.",
			want:  []string{"Ask Dr.", "Smith now."},
		},
		{
			name:  "newlines and trailing whitespace",
			input: "  First line.\n\nSecond line.  \n",
			want:  []string{"First line.", "Second line."},
		},
		{
			name:  "no terminal punctuation",
			input: "a heading without a period",
			want:  []string{"a heading without a period"},
		},
		{
			name:  "unicode uppercase",
			input: "Fin. Élan suit.",
			want:  []string{"Fin.", "Élan suit."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Heuristic{}.Segment(tt.input))
		})
	}
}

func TestUAX29_Segment(t *testing.T) {
	got := UAX29{}.Segment("Basic chunking one. Chunking two? Chunking three!")
	assert.Equal(t, []string{"Basic chunking one.", "Chunking two?", "Chunking three!"}, got)

	assert.Empty(t, UAX29{}.Segment(""))
	assert.Empty(t, UAX29{}.Segment("   "))
}

func TestByName(t *testing.T) {
	s, err := ByName("")
	require.NoError(t, err)
	assert.IsType(t, Heuristic{}, s)

	s, err = ByName("Heuristic")
	require.NoError(t, err)
	assert.IsType(t, Heuristic{}, s)

	s, err = ByName("uax29")
	require.NoError(t, err)
	assert.IsType(t, UAX29{}, s)

	_, err = ByName("nltk")
	assert.Error(t, err)
}
