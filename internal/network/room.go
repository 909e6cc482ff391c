package network

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-keyhunt/internal/app"
	"go-keyhunt/internal/component"
)

// ClientCommand — сообщение клиента, переданное в цикл комнаты.
type ClientCommand struct {
	Client  *Client
	Command Command
	Err     error
}

// Room владеет симуляцией: Update, команды и снимки выполняются в одной
// горутине Run, поэтому app.Game не нужна синхронизация.
type Room struct {
	Register   chan *Client
	Unregister chan *Client
	Commands   chan ClientCommand

	game    *app.Game
	tick    time.Duration
	views   chan chan app.View
	done    chan struct{}
	clients []*Client // по порядку подключения, первый — ведущий
	intent  component.Intent
}

func NewRoom(game *app.Game, tick time.Duration) *Room {
	if tick <= 0 {
		tick = time.Second / 60
	}
	return &Room{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Commands:   make(chan ClientCommand, 64),
		game:       game,
		tick:       tick,
		views:      make(chan chan app.View),
		done:       make(chan struct{}),
	}
}

// Run крутит симуляцию с фиксированным шагом, пока не отменён ctx.
func (r *Room) Run(ctx context.Context) {
	ticker := time.NewTicker(r.tick)
	defer func() {
		ticker.Stop()
		for _, c := range r.clients {
			close(c.Send)
		}
		r.clients = nil
		close(r.done)
	}()
	log.Printf("network: room started, tick %s", r.tick)

	for {
		select {
		case <-ctx.Done():
			log.Println("network: room stopped")
			return

		case c := <-r.Register:
			r.clients = append(r.clients, c)
			r.welcome(c)
			log.Printf("network: client %s joined (%s), %d connected", c.ID, c.Codec.Name(), len(r.clients))

		case c := <-r.Unregister:
			r.remove(c)

		case cc := <-r.Commands:
			r.handle(cc)

		case reply := <-r.views:
			reply <- r.game.View()

		case <-ticker.C:
			r.game.Update(r.tick.Seconds(), r.intent)
			r.broadcast(Envelope{Type: MsgSnapshot, Payload: r.game.View()})
		}
	}
}

// View возвращает снимок мира из цикла комнаты.
func (r *Room) View(ctx context.Context) (app.View, error) {
	reply := make(chan app.View, 1)
	select {
	case r.views <- reply:
	case <-r.done:
		return app.View{}, fmt.Errorf("room is stopped")
	case <-ctx.Done():
		return app.View{}, ctx.Err()
	}
	select {
	case v := <-reply:
		return v, nil
	case <-ctx.Done():
		return app.View{}, ctx.Err()
	}
}

func (r *Room) driver() *Client {
	if len(r.clients) == 0 {
		return nil
	}
	return r.clients[0]
}

func (r *Room) welcome(c *Client) {
	r.send(c, Envelope{Type: MsgWelcome, Payload: WelcomePayload{
		ClientID: c.ID,
		Driver:   c == r.driver(),
		Stages:   r.game.Library.StageIDs(),
	}})
}

func (r *Room) remove(c *Client) {
	for i, other := range r.clients {
		if other != c {
			continue
		}
		wasDriver := i == 0
		r.clients = append(r.clients[:i], r.clients[i+1:]...)
		close(c.Send)
		log.Printf("network: client %s left, %d connected", c.ID, len(r.clients))

		if wasDriver {
			r.intent = component.Intent{}
			if next := r.driver(); next != nil {
				r.welcome(next)
			}
		}
		return
	}
}

func (r *Room) connected(c *Client) bool {
	for _, other := range r.clients {
		if other == c {
			return true
		}
	}
	return false
}

func (r *Room) handle(cc ClientCommand) {
	c := cc.Client
	if !r.connected(c) {
		return
	}
	if cc.Err != nil {
		r.sendError(c, cc.Err)
		return
	}
	if c != r.driver() {
		r.sendError(c, fmt.Errorf("spectators cannot control the game"))
		return
	}

	var err error
	switch cc.Command.Type {
	case MsgIntent:
		r.intent = cc.Command.Intent
	case MsgStart:
		level := cc.Command.Start.Level
		if level <= 0 {
			level = r.game.Session().Level
		}
		err = r.game.Start(cc.Command.Start.Stage, level)
	case MsgPause:
		err = r.game.Pause()
	case MsgResume:
		err = r.game.Resume()
	case MsgRestart:
		err = r.game.Restart()
	case MsgMenu:
		err = r.game.ReturnToMenu()
	case MsgRespawn:
		err = r.game.Respawn()
	case MsgCamera:
		r.game.ToggleCamera()
	}
	if err != nil {
		r.sendError(c, err)
	}
}

func (r *Room) send(c *Client, env Envelope) {
	data, err := c.Codec.Marshal(env)
	if err != nil {
		log.Printf("network: failed to encode %s: %v", env.Type, err)
		return
	}
	c.trySend(data)
}

func (r *Room) sendError(c *Client, err error) {
	r.send(c, Envelope{Type: MsgError, Payload: ErrorPayload{Message: err.Error()}})
}

// broadcast кодирует сообщение один раз на кодек.
func (r *Room) broadcast(env Envelope) {
	encoded := make(map[string][]byte, 2)
	for _, c := range r.clients {
		data, ok := encoded[c.Codec.Name()]
		if !ok {
			var err error
			data, err = c.Codec.Marshal(env)
			if err != nil {
				log.Printf("network: failed to encode %s: %v", env.Type, err)
				return
			}
			encoded[c.Codec.Name()] = data
		}
		c.trySend(data)
	}
}
