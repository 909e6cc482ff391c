package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-keyhunt/internal/app"
	"go-keyhunt/internal/defs"
	"go-keyhunt/internal/network"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	tick := flag.Duration("tick", time.Second/60, "simulation tick")
	defsDir := flag.String("defs", "assets/defs", "directory with enemies.yaml and stages.yaml")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 for time-based")
	maxEnemies := flag.Int("max-enemies", 0, "enemy roster cap, 0 keeps the default")
	flag.Parse()

	lib, err := defs.LoadLibrary(*defsDir)
	if err != nil {
		log.Fatalf("Error loading definitions: %v", err)
	}

	game := app.NewGame(lib, *seed)
	if *maxEnemies > 0 {
		game.SpawnSystem.SetMaxEnemies(*maxEnemies)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	room := network.NewRoom(game, *tick)
	go room.Run(ctx)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           network.NewRouter(room, lib),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("arenad listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("ListenAndServe:", err)
	}
}
