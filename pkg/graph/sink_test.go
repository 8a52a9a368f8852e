package graph

import (
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/aretw0/compose/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceList []Service

func TestNewSink(t *testing.T) {
	t.Run("seeded", func(t *testing.T) {
		seed := []Service{{Name: "a"}}
		sink, err := NewSink(reflect.TypeFor[[]Service](), reflect.ValueOf(seed))
		require.NoError(t, err)

		require.NoError(t, sink.Append(reflect.ValueOf(Service{Name: "b"})))
		got := sink.Finalize().Interface().([]Service)
		assert.Equal(t, []Service{{Name: "a"}, {Name: "b"}}, got)
		assert.Len(t, seed, 1, "the seed is not modified")
	})

	t.Run("named slice type", func(t *testing.T) {
		sink, err := NewSink(reflect.TypeFor[serviceList](), reflect.ValueOf([]Service{{Name: "a"}}))
		require.NoError(t, err)
		assert.Equal(t, serviceList{{Name: "a"}}, sink.Finalize().Interface())
	})

	t.Run("empty is not nil", func(t *testing.T) {
		sink, err := NewSink(reflect.TypeFor[[]string](), reflect.Value{})
		require.NoError(t, err)
		got := sink.Finalize().Interface().([]string)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("rejects non-slice containers", func(t *testing.T) {
		_, err := NewSink(reflect.TypeFor[map[string]Service](), reflect.Value{})
		assert.ErrorIs(t, err, core.ErrCollectionIncompatible)
	})

	t.Run("rejects mismatched elements", func(t *testing.T) {
		sink, err := NewSink(reflect.TypeFor[[]Service](), reflect.Value{})
		require.NoError(t, err)
		assert.ErrorIs(t, sink.Append(reflect.ValueOf(42)), core.ErrCollectionIncompatible)
	})
}

func TestSliceSink(t *testing.T) {
	sink := NewSliceSink([]string{"seed"})
	require.NoError(t, sink.Append(reflect.ValueOf("x")))
	assert.ErrorIs(t, sink.Append(reflect.ValueOf(1)), core.ErrCollectionIncompatible)
	assert.Equal(t, []string{"seed", "x"}, sink.Items())
	assert.Equal(t, []string{"seed", "x"}, sink.Finalize().Interface())
}

func TestAssemble_IntoTypedSink(t *testing.T) {
	b, rec := newBuilder(t, fstest.MapFS{
		"list/object.yaml": file("name: skipped\n"),
		"list/a.yaml":      file("name: a\n"),
		"list/b.json":      file(`{"name": "b"}`),
	})

	sink := NewSliceSink[Service](nil)
	require.NoError(t, b.Assemble(reflect.TypeFor[Service](), "list", "object", sink))
	assert.Equal(t, []Service{{Name: "a"}, {Name: "b"}}, sink.Items())
	assert.NotContains(t, rec.Reads(), "list/object.yaml")

	missing := NewSliceSink([]Service{{Name: "kept"}})
	require.NoError(t, b.Assemble(reflect.TypeFor[Service](), "absent", "object", missing))
	assert.Equal(t, []Service{{Name: "kept"}}, missing.Items())
}

func TestSerialize(t *testing.T) {
	v := Service{Name: "api", Port: 80}

	out, err := Serialize(v, Options{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "api", "port": 80}`, out)

	opts := DefaultOptions()
	opts.OutputFormat = core.FormatYAML
	out, err = Serialize(v, opts)
	require.NoError(t, err)
	assert.YAMLEq(t, "name: api\nport: 80\n", out)

	opts.OutputFormat = "toml"
	_, err = Serialize(v, opts)
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)
}
