package network

import (
	"encoding/json"
	"log"
	"net/http"

	"go-keyhunt/internal/defs"

	"github.com/gorilla/mux"
)

// NewRouter собирает HTTP-маршруты хоста: websocket, проверку живости,
// текущий снимок и список стадий.
func NewRouter(room *Room, lib *defs.Library) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(room, w, r)
	})

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	router.HandleFunc("/state", func(w http.ResponseWriter, r *http.Request) {
		view, err := room.View(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, view)
	}).Methods(http.MethodGet)

	router.HandleFunc("/stages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, lib.StageIDs())
	}).Methods(http.MethodGet)

	router.HandleFunc("/stages/{id}", func(w http.ResponseWriter, r *http.Request) {
		stage, err := lib.Stage(mux.Vars(r)["id"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, stage)
	}).Methods(http.MethodGet)

	return router
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("network: failed to write response: %v", err)
	}
}
