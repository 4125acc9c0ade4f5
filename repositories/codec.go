package repositories

import (
	"encoding/json"
	"fmt"
	"supachat/domain"
	"supachat/errors"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	CodecJSON  = "json"
	CodecProto = "proto"
)

// Codec turns a ChatState into the bytes a backend stores, and back.
// Every codec carries the same record: sessionId, user, currentRoom,
// messages, unreadCount, inputLocked.
type Codec interface {
	Name() string
	Marshal(state domain.ChatState) ([]byte, error)
	Unmarshal(data []byte) (domain.ChatState, error)
}

func CodecByName(name string) (Codec, error) {
	switch name {
	case "", CodecJSON:
		return JSONCodec{}, nil
	case CodecProto:
		return ProtoCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownCodec, name)
	}
}

type JSONCodec struct{}

func (JSONCodec) Name() string { return CodecJSON }

func (JSONCodec) Marshal(state domain.ChatState) ([]byte, error) {
	return json.Marshal(state.Normalize())
}

func (JSONCodec) Unmarshal(data []byte) (domain.ChatState, error) {
	var state domain.ChatState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.ChatState{}, err
	}
	return state, nil
}

// ProtoCodec stores the record as a binary google.protobuf.Struct. The
// struct is built from the JSON layout so both codecs agree field for field.
type ProtoCodec struct{}

func (ProtoCodec) Name() string { return CodecProto }

func (ProtoCodec) Marshal(state domain.ChatState) ([]byte, error) {
	raw, err := json.Marshal(state.Normalize())
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("build struct: %w", err)
	}
	return proto.Marshal(st)
}

func (ProtoCodec) Unmarshal(data []byte) (domain.ChatState, error) {
	var st structpb.Struct
	if err := proto.Unmarshal(data, &st); err != nil {
		return domain.ChatState{}, err
	}
	raw, err := protojson.Marshal(&st)
	if err != nil {
		return domain.ChatState{}, err
	}
	return JSONCodec{}.Unmarshal(raw)
}
