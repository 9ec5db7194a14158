package simulator

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixeldock/pixelctl/internal/xhttp/middleware"
)

// Handler assembles the router. Login is the only route outside the bearer
// check.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/auth/login", s.handleLogin).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(RequireAuth(s.tokens))

	api.HandleFunc("/modules", s.handleListModules).Methods(http.MethodGet)
	api.HandleFunc("/modules/{id:[0-9]+}", s.handleUpdateModule).Methods(http.MethodPut)

	api.HandleFunc("/display/text", s.handleText).Methods(http.MethodPost)
	api.HandleFunc("/display/brightness", s.handleBrightness).Methods(http.MethodPost)
	api.HandleFunc("/display/draw", s.handleDraw).Methods(http.MethodPost)

	api.HandleFunc("/debug/status", s.handleStatus).Methods(http.MethodGet)
	api.HandleFunc("/debug/preview", s.handlePreview).Methods(http.MethodGet)
	api.HandleFunc("/debug/pattern", s.handleStartPattern).Methods(http.MethodPost)
	api.HandleFunc("/debug/pattern", s.handleStopPattern).Methods(http.MethodDelete)
	api.HandleFunc("/debug/mapping/coordinate", s.handleMapCoordinate).Methods(http.MethodGet)
	api.HandleFunc("/debug/dht", s.handleDHT).Methods(http.MethodGet)
	api.HandleFunc("/debug/dht/read-once", s.handleDHTReadOnce).Methods(http.MethodPost)
	api.HandleFunc("/debug/gpio/level", s.handleGPIOLevel).Methods(http.MethodGet)

	return middleware.Chain(r,
		middleware.Recovery,
		middleware.RequestID,
		middleware.Logger(s.logger),
		middleware.Logging,
	)
}
