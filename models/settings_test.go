package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMapScanSupportedTypes(t *testing.T) {
	var m JSONMap
	require.NoError(t, m.Scan(`{"hero":true,"blog":false}`))
	assert.Equal(t, true, m["hero"])
	assert.Equal(t, false, m["blog"])

	var fromBytes JSONMap
	require.NoError(t, fromBytes.Scan([]byte(`{"linkedin":"https://linkedin.com/x"}`)))
	assert.Equal(t, "https://linkedin.com/x", fromBytes["linkedin"])

	var fromNil JSONMap
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)

	var bad JSONMap
	assert.Error(t, bad.Scan(42))
}

func TestJSONMapValue(t *testing.T) {
	v, err := JSONMap{"hero": true}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"hero":true}`, v.(string))

	v, err = JSONMap(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestStringListRoundTrip(t *testing.T) {
	v, err := StringList{"Dürüstlük", "Gizlilik"}.Value()
	require.NoError(t, err)

	var out StringList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, StringList{"Dürüstlük", "Gizlilik"}, out)
}
