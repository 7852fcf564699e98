package main

import (
	"StatClickerApi/internal/stats"
	"StatClickerApi/internal/validator"
	"errors"
	"net/http"
)

func (app *application) ListActions(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{"actions": stats.Catalog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ApplyAction(w http.ResponseWriter, r *http.Request) {
	var input struct {
		PlayerID int64  `json:"player_id"`
		Action   string `json:"action"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(input.PlayerID > 0, "player_id", "must be a positive integer")
	v.Check(input.Action != "", "action", "must be provided")
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	applied, err := app.session.ApplyAction(input.PlayerID, input.Action)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrPlayerNotFound), errors.Is(err, stats.ErrActionNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	line, err := app.session.Line(input.PlayerID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"applied": applied,
		"player":  line,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}

	app.broadcastBoxScore()
}

func (app *application) UndoAction(w http.ResponseWriter, r *http.Request) {
	undone := app.session.Undo()
	if !undone {
		err := app.writeJSON(w, http.StatusOK, envelope{
			"undone":  false,
			"message": "nothing to undo",
		}, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err := app.writeJSON(w, http.StatusOK, envelope{"undone": true}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}

	app.broadcastBoxScore()
}
