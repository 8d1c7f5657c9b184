package pkg

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/polyterm/pkg/mino"
)

func TestMessagePieceSet_EncodeDecode(t *testing.T) {
	pieces, _, err := mino.Enumerate(3, false)
	require.NoError(t, err)

	b, err := Encode(NewMessagePieceSet(3, false, pieces))
	require.NoError(t, err)

	m, err := Decode(b)
	require.NoError(t, err)
	require.Equal(t, TypeMessagePieceSet, m.Type())

	set := m.(MessagePieceSet)
	assert.Equal(t, 3, set.Order)
	assert.Equal(t, 2, set.Count)
	require.Len(t, set.Pieces, 2)

	assert.Equal(t, "I", set.Pieces[0].Name)
	assert.Equal(t, "L", set.Pieces[1].Name)
	assert.Equal(t, 1, set.Pieces[1].Index)
	for i, p := range set.Pieces {
		assert.True(t, p.Piece().Equal(pieces[i]), "piece %d", i)
	}
}

func TestEncode_Layout(t *testing.T) {
	b, err := Encode(MessagePiece{Index: 0, Name: "Domino", Cells: []mino.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}})
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.JSONEq(t, `1`, string(raw["type"]))
	assert.JSONEq(t, `{"index":0,"name":"Domino","cells":[{"X":0,"Y":0},{"X":1,"Y":0}]}`, string(raw["data"]))
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"type": 2, "data": {}}`))
	assert.EqualError(t, err, "decode: unexpected message type TypeMessageTransport")

	_, err = Decode([]byte(`{"type": 1, "data": {"index": "x"}}`))
	assert.Error(t, err)
}

func TestMessageType_String(t *testing.T) {
	assert.Equal(t, "TypeMessagePiece", TypeMessagePiece.String())
	assert.Equal(t, "Unknown MessageType", MessageType(42).String())
}
