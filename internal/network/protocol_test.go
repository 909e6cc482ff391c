package network

import (
	"errors"
	"testing"

	"go-keyhunt/internal/component"

	"github.com/gorilla/websocket"
)

func TestParseCommandJSON(t *testing.T) {
	codec := JSONCodec{}
	tests := []struct {
		name string
		in   string
		want Command
	}{
		{
			name: "intent",
			in:   `{"type":"intent","payload":{"forward":true,"shoot":true,"camera_yaw":1.5}}`,
			want: Command{Type: MsgIntent, Intent: component.Intent{Forward: true, Shoot: true, CameraYaw: 1.5}},
		},
		{
			name: "start",
			in:   `{"type":"start","payload":{"stage":"stage1","level":3}}`,
			want: Command{Type: MsgStart, Start: StartPayload{Stage: "stage1", Level: 3}},
		},
		{name: "pause without payload", in: `{"type":"pause"}`, want: Command{Type: MsgPause}},
		{name: "null payload", in: `{"type":"intent","payload":null}`, want: Command{Type: MsgIntent}},
		{name: "camera", in: `{"type":"camera"}`, want: Command{Type: MsgCamera}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(codec, []byte(tt.in))
			if err != nil {
				t.Fatalf("ParseCommand: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	codec := JSONCodec{}
	if _, err := ParseCommand(codec, []byte(`{"type":"fly"}`)); !errors.Is(err, ErrUnknownMessage) {
		t.Fatalf("unknown type: err = %v", err)
	}
	if _, err := ParseCommand(codec, []byte(`not json`)); err == nil {
		t.Fatalf("expected error for malformed frame")
	}
	if _, err := ParseCommand(codec, []byte(`{"type":"start","payload":{"level":"high"}}`)); err == nil {
		t.Fatalf("expected error for bad start payload")
	}
}

func TestMsgpackCodecRoundTrip(t *testing.T) {
	codec := MsgpackCodec{}
	if codec.FrameType() != websocket.BinaryMessage {
		t.Fatalf("msgpack must use binary frames")
	}

	in := component.Intent{Backward: true, Jump: true, CameraYaw: -0.5, CameraPitch: 0.25}
	data, err := codec.Marshal(Envelope{Type: MsgIntent, Payload: in})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	cmd, err := ParseCommand(codec, data)
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd.Type != MsgIntent || cmd.Intent != in {
		t.Fatalf("got %+v, want intent %+v", cmd, in)
	}

	data, err = codec.Marshal(Envelope{Type: MsgStart, Payload: StartPayload{Stage: "stageL", Level: 4}})
	if err != nil {
		t.Fatal(err)
	}
	cmd, err = ParseCommand(codec, data)
	if err != nil || cmd.Start != (StartPayload{Stage: "stageL", Level: 4}) {
		t.Fatalf("start: %+v, %v", cmd, err)
	}

	// поля называются так же, как в JSON
	var raw map[string]any
	if err := codec.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["type"] != "start" {
		t.Fatalf("type key = %v", raw["type"])
	}
	payload, ok := raw["payload"].(map[string]any)
	if !ok || payload["stage"] != "stageL" {
		t.Fatalf("payload = %#v", raw["payload"])
	}
}

func TestCodecByName(t *testing.T) {
	for name, want := range map[string]string{"": "json", "json": "json", "msgpack": "msgpack"} {
		c, err := CodecByName(name)
		if err != nil || c.Name() != want {
			t.Errorf("CodecByName(%q) = %v, %v", name, c, err)
		}
	}
	if _, err := CodecByName("xml"); err == nil {
		t.Errorf("expected error for unknown codec")
	}
}
