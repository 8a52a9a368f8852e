package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title string            `json:"title" yaml:"title" cbor:"title"`
	Tags  []string          `json:"tags" yaml:"tags" cbor:"tags"`
	Meta  map[string]string `json:"meta" yaml:"meta" cbor:"meta"`
	Count int               `json:"count" yaml:"count" cbor:"count"`
}

func newSample() sample {
	return sample{
		Title: "Test Title",
		Tags:  []string{"a", "b"},
		Meta:  map[string]string{"foo": "bar"},
		Count: 42,
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	cborCodec, err := CBOR()
	require.NoError(t, err)

	codecs := map[string]Codec{
		".json":  JSON(),
		".yaml":  YAML(),
		".jsonc": JSONC(),
		".cbor":  cborCodec,
	}

	for ext, c := range codecs {
		t.Run(ext, func(t *testing.T) {
			data, err := c.Encode(newSample())
			require.NoError(t, err)

			var parsed sample
			require.NoError(t, c.Decode(Document{Path: "doc" + ext, Data: data}, &parsed))
			assert.Equal(t, newSample(), parsed)
		})
	}
}

func TestCodecs_EmptyDocument(t *testing.T) {
	cborCodec, err := CBOR()
	require.NoError(t, err)

	tests := []struct {
		name  string
		codec Codec
		data  string
	}{
		{"json blank", JSON(), "  \n"},
		{"json null", JSON(), "null"},
		{"yaml blank", YAML(), ""},
		{"yaml null", YAML(), "null\n"},
		{"yaml tilde", YAML(), "~"},
		{"yaml comment only", YAML(), "# nothing here\n"},
		{"jsonc comment only", JSONC(), "// nothing\n"},
		{"cbor null", cborCodec, "\xf6"},
		{"markdown blank", Markdown(), "\n\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var v sample
			err := tc.codec.Decode(Document{Path: "x", Data: []byte(tc.data)}, &v)
			assert.ErrorIs(t, err, ErrEmptyDocument)
		})
	}
}

func TestJSONCodec_Strict(t *testing.T) {
	doc := Document{Path: "big.json", Data: []byte(`{"big_id": 9223372036854775807}`)}

	var strict map[string]any
	require.NoError(t, (&JSONCodec{Strict: true}).Decode(doc, &strict))
	_, ok := strict["big_id"].(json.Number)
	assert.True(t, ok, "strict mode: expected json.Number, got %T", strict["big_id"])

	var loose map[string]any
	require.NoError(t, JSON().Decode(doc, &loose))
	_, ok = loose["big_id"].(float64)
	assert.True(t, ok, "loose mode: expected float64, got %T", loose["big_id"])
}

func TestJSONCodec_Invalid(t *testing.T) {
	var v sample
	err := JSON().Decode(Document{Path: "bad.json", Data: []byte(`{"title": `)}, &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid json")
}

func TestYAMLCodec_KnownFields(t *testing.T) {
	doc := Document{Path: "x.yaml", Data: []byte("title: t\nunknown: 1\n")}

	var lenient sample
	require.NoError(t, YAML().Decode(doc, &lenient))
	assert.Equal(t, "t", lenient.Title)

	var strict sample
	assert.Error(t, (&YAMLCodec{KnownFields: true}).Decode(doc, &strict))
}

func TestJSONCCodec_CommentsAndTrailingCommas(t *testing.T) {
	data := `{
		// the title
		"title": "Hello", /* inline */
		"tags": ["x", "y",],
	}`

	var v sample
	require.NoError(t, JSONC().Decode(Document{Path: "c.jsonc", Data: []byte(data)}, &v))
	assert.Equal(t, "Hello", v.Title)
	assert.Equal(t, []string{"x", "y"}, v.Tags)
}

func TestCBORCodec_DefaultMapType(t *testing.T) {
	c, err := CBOR()
	require.NoError(t, err)

	data, err := c.Encode(map[string]any{"nested": map[string]any{"k": "v"}})
	require.NoError(t, err)

	var out any
	require.NoError(t, c.Decode(Document{Path: "m.cbor", Data: data}, &out))

	m, ok := out.(map[string]any)
	require.True(t, ok, "expected map[string]any, got %T", out)
	_, ok = m["nested"].(map[string]any)
	assert.True(t, ok, "expected nested map[string]any, got %T", m["nested"])
}

type note struct {
	Title string `yaml:"title"`
	body  string
}

func (n *note) SetBody(body string) { n.body = body }
func (n *note) Body() string        { return n.body }

func TestMarkdownCodec(t *testing.T) {
	t.Run("Front Matter And Body", func(t *testing.T) {
		var n note
		data := "---\ntitle: Hello\n---\n# Heading\ntext\n"
		require.NoError(t, Markdown().Decode(Document{Path: "n.md", Data: []byte(data)}, &n))
		assert.Equal(t, "Hello", n.Title)
		assert.Equal(t, "# Heading\ntext\n", n.body)
	})

	t.Run("Body Only", func(t *testing.T) {
		var n note
		require.NoError(t, Markdown().Decode(Document{Path: "n.md", Data: []byte("just text")}, &n))
		assert.Equal(t, "", n.Title)
		assert.Equal(t, "just text", n.body)
	})

	t.Run("Unclosed Front Matter", func(t *testing.T) {
		var n note
		err := Markdown().Decode(Document{Path: "n.md", Data: []byte("---\ntitle: x\n")}, &n)
		assert.Error(t, err)
	})

	t.Run("Round Trip", func(t *testing.T) {
		in := &note{Title: "T", body: "content\n"}
		data, err := Markdown().Encode(in)
		require.NoError(t, err)

		var out note
		require.NoError(t, Markdown().Decode(Document{Path: "n.md", Data: data}, &out))
		assert.Equal(t, "T", out.Title)
		assert.Equal(t, "content\n", out.body)
	})
}
