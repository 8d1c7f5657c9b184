package pkg

import (
	"encoding/json"
	"fmt"

	"github.com/qnkhuat/polyterm/pkg/mino"
)

type MessageType int

const (
	TypeMessagePieceSet MessageType = iota
	TypeMessagePiece
	TypeMessageTransport
)

func (m MessageType) String() string {
	switch m {
	case TypeMessagePieceSet:
		return "TypeMessagePieceSet"
	case TypeMessagePiece:
		return "TypeMessagePiece"
	case TypeMessageTransport:
		return "TypeMessageTransport"
	default:
		return "Unknown MessageType"
	}
}

type MessageInterface interface {
	Type() MessageType
}

// MessageTransport wraps an encoded message with its type.
type MessageTransport struct {
	MsgType MessageType     `json:"type"`
	Data    json.RawMessage `json:"data"`
}

func (m MessageTransport) Type() MessageType {
	return TypeMessageTransport
}

// MessagePiece is one piece of a set, as cell coordinates.
type MessagePiece struct {
	Index int         `json:"index"`
	Name  string      `json:"name,omitempty"`
	Cells []mino.Cell `json:"cells"`
}

func (m MessagePiece) Type() MessageType {
	return TypeMessagePiece
}

func (m MessagePiece) Piece() mino.Piece {
	return mino.NewPiece(m.Cells...)
}

// MessagePieceSet is a whole generation pass.
type MessagePieceSet struct {
	Order       int            `json:"order"`
	Reflections bool           `json:"reflections"`
	Count       int            `json:"count"`
	Pieces      []MessagePiece `json:"pieces"`
}

func (m MessagePieceSet) Type() MessageType {
	return TypeMessagePieceSet
}

func NewMessagePieceSet(order int, reflections bool, pieces []mino.Piece) MessagePieceSet {
	m := MessagePieceSet{
		Order:       order,
		Reflections: reflections,
		Count:       len(pieces),
		Pieces:      make([]MessagePiece, len(pieces)),
	}
	for i, p := range pieces {
		m.Pieces[i] = MessagePiece{Index: i, Name: mino.Name(p), Cells: p.Clone().Cells}
	}

	return m
}

// Encode wraps m in a MessageTransport and marshals it.
func Encode(m MessageInterface) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", m.Type(), err)
	}

	return json.Marshal(MessageTransport{MsgType: m.Type(), Data: data})
}

// Decode reads a MessageTransport and returns the message inside it.
func Decode(b []byte) (MessageInterface, error) {
	var t MessageTransport
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("decode transport: %w", err)
	}

	var m MessageInterface
	switch t.MsgType {
	case TypeMessagePieceSet:
		var ps MessagePieceSet
		if err := json.Unmarshal(t.Data, &ps); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t.MsgType, err)
		}
		m = ps
	case TypeMessagePiece:
		var p MessagePiece
		if err := json.Unmarshal(t.Data, &p); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t.MsgType, err)
		}
		m = p
	default:
		return nil, fmt.Errorf("decode: unexpected message type %s", t.MsgType)
	}

	return m, nil
}
