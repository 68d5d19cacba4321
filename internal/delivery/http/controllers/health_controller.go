package controllers

import (
	"net/http"

	"eventcheckin/internal/delivery/http/helpers"
)

// HandleHealth reports liveness. It carries no store dependency on purpose:
// the server answers as long as the process is up.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, "ok", nil)
}
