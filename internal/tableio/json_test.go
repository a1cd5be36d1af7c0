package tableio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSON(t *testing.T) {
	in := `{"columns":["a","b"],"rows":[[1,"x"],[2,"y"]]}`
	f, err := ReadJSON(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, f.Names())
	assert.Equal(t, 2, f.NumRows())

	a, ok := f.Column("a")
	require.True(t, ok)
	// encoding/json yields float64 for numbers.
	assert.Equal(t, []any{1.0, 2.0}, a)
}

func TestReadJSONErrors(t *testing.T) {
	_, err := ReadJSON(strings.NewReader("not json"))
	assert.ErrorContains(t, err, "failed to decode table json")

	// Ragged rows fail frame validation.
	_, err = ReadJSON(strings.NewReader(`{"columns":["a","b"],"rows":[[1]]}`))
	assert.Error(t, err)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	in := `{"columns":["a","b"],"rows":[[1,"x"],[null,"y"]]}`
	f, err := ReadJSON(strings.NewReader(in))
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, WriteJSON(&out, f))
	assert.JSONEq(t, in, out.String())
}

func TestJSONAcceptsColumnarInput(t *testing.T) {
	// WriteJSON works for the columnar representation too; the CLI uses
	// this to bridge CSV input to the HTTP envelope.
	f, err := ReadCSV(strings.NewReader("a,b\n1,x\n"))
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, WriteJSON(&out, f))
	assert.JSONEq(t, `{"columns":["a","b"],"rows":[[1,"x"]]}`, out.String())
}
