package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/sprintertech/sprinter-settlement/api/handlers"
)

// NewRouter registers the settlement API routes.
func NewRouter(
	settlementHandler *handlers.SettlementHandler,
	capabilitiesHandler *handlers.CapabilitiesHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/settlements", settlementHandler.HandleSettlement).Methods("POST")
	r.HandleFunc("/v1/settlements/preview", settlementHandler.HandlePreview).Methods("POST")
	r.HandleFunc("/v1/chains/{chain}/capabilities", capabilitiesHandler.HandleRequest).Methods("GET")
	return r
}

func Serve(
	ctx context.Context,
	addr string,
	settlementHandler *handlers.SettlementHandler,
	capabilitiesHandler *handlers.CapabilitiesHandler,
) {
	server := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(settlementHandler, capabilitiesHandler),
		ReadHeaderTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
