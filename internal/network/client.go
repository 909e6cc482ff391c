package network

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

var Upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client — одно websocket-соединение. Пишет в него только writePump.
type Client struct {
	ID    string
	Room  *Room
	Conn  *websocket.Conn
	Codec Codec
	Send  chan []byte
}

// ServeWs поднимает соединение и регистрирует клиента в комнате.
func ServeWs(room *Room, w http.ResponseWriter, r *http.Request) {
	codec, err := CodecByName(r.URL.Query().Get("codec"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	conn, err := Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	client := &Client{
		ID:    uuid.NewString(),
		Room:  room,
		Conn:  conn,
		Codec: codec,
		Send:  make(chan []byte, sendBuffer),
	}
	select {
	case room.Register <- client:
	case <-room.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.Room.Unregister <- c:
		case <-c.Room.done:
		}
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("network: client %s: %v", c.ID, err)
			}
			return
		}
		cmd, err := ParseCommand(c.Codec, message)
		select {
		case c.Room.Commands <- ClientCommand{Client: c, Command: cmd, Err: err}:
		case <-c.Room.done:
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(c.Codec.FrameType(), message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// trySend кладёт кадр в очередь без блокировки; медленный клиент теряет кадр.
func (c *Client) trySend(data []byte) bool {
	select {
	case c.Send <- data:
		return true
	default:
		return false
	}
}
