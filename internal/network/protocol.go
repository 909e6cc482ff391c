package network

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"go-keyhunt/internal/component"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

type MessageType string

// client -> server
const (
	MsgIntent  MessageType = "intent"
	MsgStart   MessageType = "start"
	MsgPause   MessageType = "pause"
	MsgResume  MessageType = "resume"
	MsgRestart MessageType = "restart"
	MsgMenu    MessageType = "menu"
	MsgRespawn MessageType = "respawn"
	MsgCamera  MessageType = "camera"
)

// server -> client
const (
	MsgWelcome  MessageType = "welcome"
	MsgSnapshot MessageType = "snapshot"
	MsgError    MessageType = "error"
)

var ErrUnknownMessage = errors.New("unknown message type")

// Envelope — общий вид любого сообщения.
type Envelope struct {
	Type    MessageType `json:"type"`
	Payload any         `json:"payload,omitempty"`
}

type WelcomePayload struct {
	ClientID string   `json:"client_id"`
	Driver   bool     `json:"driver"` // только ведущий клиент управляет игрой
	Stages   []string `json:"stages"`
}

type StartPayload struct {
	Stage string `json:"stage"`
	Level int    `json:"level"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// Command — разобранное входящее сообщение.
type Command struct {
	Type   MessageType
	Intent component.Intent
	Start  StartPayload
}

// Codec кодирует сообщения для одного соединения.
type Codec interface {
	Name() string
	FrameType() int
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	// Split отделяет тип сообщения от ещё не разобранного payload.
	Split(data []byte) (MessageType, []byte, error)
}

// CodecByName возвращает кодек по значению параметра ?codec=. Пустое имя — JSON.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSONCodec{}, nil
	case "msgpack":
		return MsgpackCodec{}, nil
	}
	return nil, fmt.Errorf("unknown codec %q", name)
}

type JSONCodec struct{}

func (JSONCodec) Name() string   { return "json" }
func (JSONCodec) FrameType() int { return websocket.TextMessage }

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSONCodec) Split(data []byte) (MessageType, []byte, error) {
	var env struct {
		Type    MessageType     `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return "", nil, err
	}
	return env.Type, env.Payload, nil
}

// MsgpackCodec шлёт бинарные кадры; имена полей берутся из json-тегов,
// так что оба кодека дают одну и ту же схему.
type MsgpackCodec struct{}

func (MsgpackCodec) Name() string   { return "msgpack" }
func (MsgpackCodec) FrameType() int { return websocket.BinaryMessage }

func (MsgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (MsgpackCodec) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

func (c MsgpackCodec) Split(data []byte) (MessageType, []byte, error) {
	var env struct {
		Type    MessageType        `json:"type"`
		Payload msgpack.RawMessage `json:"payload"`
	}
	if err := c.Unmarshal(data, &env); err != nil {
		return "", nil, err
	}
	return env.Type, env.Payload, nil
}

// ParseCommand разбирает входящий кадр.
func ParseCommand(codec Codec, data []byte) (Command, error) {
	typ, raw, err := codec.Split(data)
	if err != nil {
		return Command{}, fmt.Errorf("failed to decode message: %w", err)
	}
	cmd := Command{Type: typ}

	switch typ {
	case MsgIntent:
		if len(raw) > 0 {
			if err := codec.Unmarshal(raw, &cmd.Intent); err != nil {
				return cmd, fmt.Errorf("failed to decode intent: %w", err)
			}
		}
	case MsgStart:
		if len(raw) > 0 {
			if err := codec.Unmarshal(raw, &cmd.Start); err != nil {
				return cmd, fmt.Errorf("failed to decode start: %w", err)
			}
		}
	case MsgPause, MsgResume, MsgRestart, MsgMenu, MsgRespawn, MsgCamera:
	default:
		return cmd, fmt.Errorf("%w: %q", ErrUnknownMessage, typ)
	}
	return cmd, nil
}
