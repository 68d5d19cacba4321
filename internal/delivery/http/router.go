package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"eventcheckin/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(attendeeController *controllers.AttendeeController) *http.ServeMux {
	mux := http.NewServeMux()

	// Check-in core
	mux.HandleFunc("POST /attendees/check-in", attendeeController.HandleCheckIn)
	mux.HandleFunc("POST /attendees/check-out", attendeeController.HandleCheckOut)
	mux.HandleFunc("GET /attendees/status/{ticketID}/{eventID}", attendeeController.HandleStatus)
	mux.HandleFunc("GET /attendees/checked-in/{eventID}", attendeeController.HandleListCheckedIn)
	mux.HandleFunc("POST /attendees/bulk-import", attendeeController.HandleBulkImport)
	mux.HandleFunc("POST /attendees/import-csv", attendeeController.HandleImportCSV)
	mux.HandleFunc("POST /attendees/bulk-check-in/{eventID}", attendeeController.HandleBulkCheckIn)
	mux.HandleFunc("DELETE /attendees/clear/{eventID}", attendeeController.HandleClearEvent)
	mux.HandleFunc("GET /attendees/zones/{eventID}", attendeeController.HandleZoneStats)

	// Operational
	mux.HandleFunc("GET /healthz", controllers.HandleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
