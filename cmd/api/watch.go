package main

import (
	"StatClickerApi/internal/boxscore"
	json2 "encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (app *application) WatchBoxScore(w http.ResponseWriter, r *http.Request) {
	// snapshot the current table first so the new watcher renders immediately
	seed, err := json2.Marshal(envelope{"box_score": boxscore.Project(app.session.Lines())})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.logError(r, err)
		return
	}

	app.watch.Join(conn, seed)
}
