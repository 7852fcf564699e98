package main

import (
	"StatClickerApi/internal/boxscore"
	"net/http"
)

func (app *application) GetBoxScore(w http.ResponseWriter, r *http.Request) {
	table := boxscore.Project(app.session.Lines())

	err := app.writeJSON(w, http.StatusOK, envelope{"box_score": table}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ExportBoxScore(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="game_stats.csv"`)

	err := boxscore.Project(app.session.Lines()).WriteCSV(w)
	if err != nil {
		app.logError(r, err)
	}
}
