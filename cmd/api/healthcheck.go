package main

import (
	"net/http"
	"strconv"
)

func (app *application) HealthCheck(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": app.config.env,
			"version":     app.config.version,
		},
		"session_info": map[string]string{
			"roster_size": strconv.Itoa(app.session.Size()),
		},
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
