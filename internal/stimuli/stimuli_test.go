package stimuli

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoads(t *testing.T) {
	set, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"5-8-2", "6-9-4", "7-2-8-6", "9-1-4-7-3"}, set.Attention.Forward)
	assert.Equal(t, []string{"3-6-9", "4-7-1", "8-5-2-9", "1-5-9-2-6"}, set.Attention.Backward)
	assert.Len(t, set.Attention.Symbols, 4)
	assert.Contains(t, set.Attention.Symbols, set.Attention.Target)

	require.Len(t, set.Language.Objects, 5)
	assert.Equal(t, "clock", set.Language.Objects[0].Word)
	require.Len(t, set.Language.Sentences, 3)
	assert.Equal(t, []string{"blue", "cloudy", "dark", "clear"}, set.Language.Sentences[0].Answers)
	assert.Equal(t, "s", set.Language.FluencyLetter)

	assert.Equal(t, [][]int{{1, 3, 5, 7}, {2, 4, 8, 16}, {1, 1, 2, 3, 5}}, set.ProblemSolving.Patterns)
	require.Len(t, set.ProblemSolving.Sequences, 3)
	assert.Equal(t, 15, set.ProblemSolving.Sequences[2].Next)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	valid := `{
		"attention": {"forward": ["1-2"], "backward": ["2-1"], "symbols": ["x", "y"], "target": "x", "neutral": "o"},
		"language": {"objects": [{"word": "cup", "picture": "cup"}], "sentences": [{"prompt": "p", "answers": ["a"]}], "fluency_letter": "s"},
		"problem_solving": {"patterns": [[1, 2]], "sequences": [{"sequence": [1], "next": 2}]}
	}`

	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr bool
	}{
		{"valid", func(s string) string { return s }, false},
		{"malformed json", func(s string) string { return s[:len(s)-2] }, true},
		{"bad digit span", func(s string) string { return strings.Replace(s, `["1-2"]`, `["12"]`, 1) }, true},
		{"target outside alphabet", func(s string) string { return strings.Replace(s, `"target": "x"`, `"target": "z"`, 1) }, true},
		{"neutral equals target", func(s string) string { return strings.Replace(s, `"neutral": "o"`, `"neutral": "x"`, 1) }, true},
		{"uppercase fluency letter", func(s string) string { return strings.Replace(s, `"fluency_letter": "s"`, `"fluency_letter": "S"`, 1) }, true},
		{"fractional next", func(s string) string { return strings.Replace(s, `"next": 2`, `"next": 2.5`, 1) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mutate(valid)))
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr), "want *ValidationError, got %T", err)
		})
	}
}

func TestEmbeddedPictures(t *testing.T) {
	set := MustDefault()
	pics := EmbeddedPictures{}
	for _, obj := range set.Language.Objects {
		art, err := pics.Picture(obj.Picture)
		require.NoError(t, err, obj.Picture)
		assert.NotEmpty(t, art)
	}

	_, err := pics.Picture("unicorn")
	assert.ErrorIs(t, err, ErrPictureNotFound)

	_, err = pics.Picture("../stimuli")
	assert.ErrorIs(t, err, ErrPictureNotFound)
}
