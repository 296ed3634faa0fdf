package topic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"catalog.yaml":     FormatYAML,
		"dir/catalog.YML":  FormatYAML,
		"/tmp/export.json": FormatJSON,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("catalog.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	topics := []*Topic{
		{
			Title:       "Bit Manipulation",
			CPP:         "int num = 5;\n// Set 3rd bit\nnum |= (1 << 2);",
			Java:        "int num = 5;\nnum ^= (1 << 1);",
			Differences: []string{"C++ has bitset container", `quotes " and backslash \ survive`},
		},
		validTopic("Graphs"),
	}

	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(topics, format)
			require.NoError(t, err)

			got, err := Decode(data, format)
			require.NoError(t, err)
			if diff := cmp.Diff(topics, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte(""), FormatYAML)
	assert.ErrorContains(t, err, "empty")

	_, err = Decode([]byte("topics:\n  - title: x\n    color: red\n"), FormatYAML)
	assert.Error(t, err, "unknown fields are rejected")

	_, err = Decode([]byte(`{"topics":[{"title":"x","extra":1}]}`), FormatJSON)
	assert.Error(t, err)

	_, err = Decode([]byte("{}"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Encode(nil, Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
