package network

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-keyhunt/internal/app"
	"go-keyhunt/internal/defs"

	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	lib := defs.Default()
	room := NewRoom(app.NewGame(lib, 1), 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	go room.Run(ctx)

	srv := httptest.NewServer(NewRouter(room, lib))
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func sendJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	if err := conn.WriteJSON(v); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
}

// await читает кадры, пока не придёт сообщение typ, для которого accept
// вернёт true.
func await(t *testing.T, conn *websocket.Conn, codec Codec, typ MessageType, v any, accept func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	conn.SetReadDeadline(deadline)
	for time.Now().Before(deadline) {
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("waiting for %s: %v", typ, err)
		}
		got, raw, err := codec.Split(data)
		if err != nil {
			t.Fatalf("Split: %v", err)
		}
		if got != typ {
			continue
		}
		if err := codec.Unmarshal(raw, v); err != nil {
			t.Fatalf("Unmarshal %s: %v", typ, err)
		}
		if accept == nil || accept() {
			return
		}
	}
	t.Fatalf("no %s message before deadline", typ)
}

type snapshotSession struct {
	Session struct {
		Phase   string `json:"phase"`
		StageID string `json:"stage_id"`
		Enemies []struct {
			ID string `json:"id"`
		} `json:"enemies"`
	} `json:"session"`
}

func TestRoomDriverStartsGame(t *testing.T) {
	srv := newTestServer(t)
	conn := dial(t, srv, "")

	var welcome WelcomePayload
	await(t, conn, JSONCodec{}, MsgWelcome, &welcome, nil)
	if !welcome.Driver || welcome.ClientID == "" || len(welcome.Stages) == 0 {
		t.Fatalf("welcome = %+v", welcome)
	}

	sendJSON(t, conn, Envelope{Type: MsgStart, Payload: StartPayload{Stage: "stage0", Level: 1}})
	var snap snapshotSession
	await(t, conn, JSONCodec{}, MsgSnapshot, &snap, func() bool {
		return snap.Session.Phase == "playing" && len(snap.Session.Enemies) > 0
	})
	if snap.Session.StageID != "stage0" {
		t.Fatalf("stage = %s", snap.Session.StageID)
	}

	sendJSON(t, conn, Envelope{Type: MsgPause})
	await(t, conn, JSONCodec{}, MsgSnapshot, &snap, func() bool { return snap.Session.Phase == "paused" })

	// недопустимый переход возвращается клиенту ошибкой
	sendJSON(t, conn, Envelope{Type: MsgRestart})
	var e ErrorPayload
	await(t, conn, JSONCodec{}, MsgError, &e, nil)
	if !strings.Contains(e.Message, "illegal phase transition") {
		t.Fatalf("error = %q", e.Message)
	}
}

func TestRoomSpectatorAndPromotion(t *testing.T) {
	srv := newTestServer(t)
	driver := dial(t, srv, "")
	var w1 WelcomePayload
	await(t, driver, JSONCodec{}, MsgWelcome, &w1, nil)

	spectator := dial(t, srv, "?codec=msgpack")
	var w2 WelcomePayload
	await(t, spectator, MsgpackCodec{}, MsgWelcome, &w2, nil)
	if w2.Driver {
		t.Fatalf("second client became driver")
	}

	data, err := MsgpackCodec{}.Marshal(Envelope{Type: MsgStart, Payload: StartPayload{Stage: "stage0"}})
	if err != nil {
		t.Fatal(err)
	}
	if err := spectator.WriteMessage(websocket.BinaryMessage, data); err != nil {
		t.Fatal(err)
	}
	var e ErrorPayload
	await(t, spectator, MsgpackCodec{}, MsgError, &e, nil)
	if !strings.Contains(e.Message, "spectators") {
		t.Fatalf("error = %q", e.Message)
	}

	driver.Close()
	var w3 WelcomePayload
	await(t, spectator, MsgpackCodec{}, MsgWelcome, &w3, nil)
	if !w3.Driver || w3.ClientID != w2.ClientID {
		t.Fatalf("promotion welcome = %+v", w3)
	}
}

func TestRoomRejectsMalformedFrames(t *testing.T) {
	srv := newTestServer(t)
	conn := dial(t, srv, "")
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"teleport"}`)); err != nil {
		t.Fatal(err)
	}
	var e ErrorPayload
	await(t, conn, JSONCodec{}, MsgError, &e, nil)
	if !strings.Contains(e.Message, "unknown message type") {
		t.Fatalf("error = %q", e.Message)
	}
}

func TestHTTPRoutes(t *testing.T) {
	srv := newTestServer(t)

	get := func(path string) (int, []byte) {
		t.Helper()
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		return resp.StatusCode, body
	}

	if code, body := get("/health"); code != http.StatusOK || string(body) != "OK" {
		t.Fatalf("/health = %d %q", code, body)
	}

	code, body := get("/stages")
	var ids []string
	if code != http.StatusOK || json.Unmarshal(body, &ids) != nil || len(ids) != 4 {
		t.Fatalf("/stages = %d %s", code, body)
	}
	if code, _ := get("/stages/stage1"); code != http.StatusOK {
		t.Fatalf("/stages/stage1 = %d", code)
	}
	if code, _ := get("/stages/atlantis"); code != http.StatusNotFound {
		t.Fatalf("/stages/atlantis = %d", code)
	}

	code, body = get("/state")
	var snap snapshotSession
	if code != http.StatusOK || json.Unmarshal(body, &snap) != nil || snap.Session.Phase != "menu" {
		t.Fatalf("/state = %d %s", code, body)
	}
}
