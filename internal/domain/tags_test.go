package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagNormalizer_Normalize(t *testing.T) {
	normalizer := TagNormalizer{
		"inspirational": "inspiration",
		"motivational":  "inspiration",
		"humour":        "humor",
	}

	cases := []struct {
		name string
		tags []string
		want []string
	}{
		{
			name: "synonyms_collapse",
			tags: []string{"inspirational", "motivational", "life"},
			want: []string{"inspiration", "life"},
		},
		{
			name: "unknown_tags_pass_through",
			tags: []string{"wisdom", "humour"},
			want: []string{"wisdom", "humor"},
		},
		{
			name: "duplicates_dropped_first_seen_order",
			tags: []string{"life", "inspiration", "life", "inspirational"},
			want: []string{"life", "inspiration"},
		},
		{
			name: "empty_input",
			tags: nil,
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizer.Normalize(tc.tags))
		})
	}
}

func TestLoadTagNormalizer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tag_mappings.json")
	require.NoError(t, writeFile(path, `{"inspirational": "inspiration"}`))

	normalizer, err := LoadTagNormalizer(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"inspiration"}, normalizer.Normalize([]string{"inspirational"}))
}

func TestLoadTagNormalizer_EmptyPath(t *testing.T) {
	normalizer, err := LoadTagNormalizer("")
	require.NoError(t, err)
	assert.Empty(t, normalizer)
}

func TestLoadTagNormalizer_MissingFile(t *testing.T) {
	_, err := LoadTagNormalizer(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadTagNormalizer_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tag_mappings.json")
	require.NoError(t, writeFile(path, `not json`))

	_, err := LoadTagNormalizer(path)
	assert.Error(t, err)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
