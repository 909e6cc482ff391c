// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-keyhunt/internal/app"
	"go-keyhunt/internal/config"
	"go-keyhunt/internal/defs"
	"go-keyhunt/internal/state"
	"go-keyhunt/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsDir := flag.String("defs", "assets/defs", "directory with enemies.yaml and stages.yaml")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address, empty to disable")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	lib, err := defs.LoadLibrary(*defsDir)
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}
	game := app.NewGame(lib, *seed)

	face := render.LoadFace(14)
	titleFace := render.LoadFace(28)
	sm := state.NewStateMachine(&state.Context{
		Game:      game,
		Renderer:  render.NewArenaRenderer(config.ScreenWidth, config.ScreenHeight, face),
		Font:      face,
		TitleFont: titleFace,
		Width:     config.ScreenWidth,
		Height:    config.ScreenHeight,
	})
	sm.Sync()

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Key Hunt")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
