package crisis

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/teatime-labs/moodgate/pkg/config"
)

func TestKeywordDetector_Match(t *testing.T) {
	req := require.New(t)
	d, err := NewKeywordDetector(config.DefaultCrisisKeywords)
	req.NoError(err)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "exact phrase", input: "I want to die", want: true},
		{name: "uppercase", input: "I WANT TO KILL MYSELF", want: true},
		{name: "embedded in sentence", input: "some days I think about suicide and then I sleep", want: true},
		{name: "substring of longer word", input: "suicidesquad is a movie", want: true},
		{name: "typographic apostrophe", input: "I don’t want to live anymore", want: true},
		{name: "no reason", input: "There is no reason to live like this", want: true},
		{name: "benign", input: "Had a great day at the park", want: false},
		{name: "near miss", input: "I want to dine out", want: false},
		{name: "split phrase is not matched", input: "kill. myself", want: false},
		{name: "empty", input: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, d.Match(tt.input))
		})
	}
}

func TestKeywordDetector_Matches(t *testing.T) {
	req := require.New(t)
	d, err := NewKeywordDetector([]string{"Hurt Myself", "want to die", "want to die"})
	req.NoError(err)

	req.ElementsMatch(
		[]string{"hurt myself", "want to die"},
		d.Matches("I want to die. I want to die. I might hurt myself"),
	)
	req.Empty(d.Matches("fine"))
}

func TestNewKeywordDetector_RequiresKeywords(t *testing.T) {
	_, err := NewKeywordDetector([]string{"  ", ""})
	require.ErrorIs(t, err, ErrNoKeywords)
}
