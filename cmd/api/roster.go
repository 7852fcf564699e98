package main

import (
	"StatClickerApi/internal/boxscore"
	"StatClickerApi/internal/roster"
	"StatClickerApi/internal/stats"
	"StatClickerApi/internal/validator"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

func (app *application) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name   string `json:"name"`
		Number string `json:"number"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(strings.TrimSpace(input.Name) != "", "name", "must be provided")
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	id, err := app.session.AddPlayer(input.Name, input.Number)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrBlankPlayerName):
			v.AddError("name", "must be provided")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	line, err := app.session.Line(id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/player/%d", id))
	err = app.writeJSON(w, http.StatusCreated, envelope{"player": line}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}

	app.broadcastBoxScore()
}

func (app *application) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	line, err := app.session.Line(id)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrPlayerNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"player":     line,
		"quick_view": boxscore.QuickView(line),
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.session.RemovePlayer(id)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrPlayerNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"message": fmt.Sprintf("player (%d) successfully removed", id)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}

	app.broadcastBoxScore()
}

func (app *application) ImportRoster(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)

	file, _, err := r.FormFile("roster")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("request must include a roster file upload"))
		return
	}
	defer file.Close()

	seeds, err := roster.ParseCSV(file)
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrNoNameColumn):
			// schema error: the current roster stays untouched
			v := validator.New()
			v.AddError("roster", "must include a name column")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.badRequestResponse(w, r, fmt.Errorf("could not import roster: %w", err))
		}
		return
	}

	app.session.Replace(seeds)

	err = app.writeJSON(w, http.StatusOK, envelope{
		"message": fmt.Sprintf("imported %d players", app.session.Size())}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}

	app.broadcastBoxScore()
}

func (app *application) RosterTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="roster_template.csv"`)

	_, err := w.Write([]byte(roster.Template()))
	if err != nil {
		app.logError(r, err)
	}
}

func (app *application) ResetAllStats(w http.ResponseWriter, r *http.Request) {
	app.session.ResetAllStats()

	err := app.writeJSON(w, http.StatusOK, envelope{"message": "stats reset"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}

	app.broadcastBoxScore()
}

func (app *application) ClearRoster(w http.ResponseWriter, r *http.Request) {
	app.session.ClearRoster()

	err := app.writeJSON(w, http.StatusOK, envelope{"message": "roster cleared"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}

	app.broadcastBoxScore()
}
