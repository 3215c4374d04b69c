package mux

import (
	"net/http"

	"github.com/cryptolink/solkit/internal/server/endpoint"
	"github.com/gorilla/mux"
)

func (s *Server) setupRoutes() *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.handleMethodNotAllowed)

	r.HandleFunc(endpoint.PathHealth, s.handleHealth).Methods(http.MethodGet)

	routes := map[string]http.HandlerFunc{
		endpoint.PathKeypair:       s.handleKeypair,
		endpoint.PathSignMessage:   handle(s, s.endpoints.SignMessage),
		endpoint.PathVerifyMessage: handle(s, s.endpoints.VerifyMessage),
		endpoint.PathCreateToken:   handle(s, s.endpoints.CreateToken),
		endpoint.PathMintToken:     handle(s, s.endpoints.MintToken),
		endpoint.PathSendSOL:       handle(s, s.endpoints.SendSOL),
		endpoint.PathSendToken:     handle(s, s.endpoints.SendToken),
	}

	for path, h := range routes {
		r.HandleFunc(path, h).Methods(http.MethodPost)
		r.HandleFunc(path, preflight).Methods(http.MethodOptions)
	}

	return r
}

func preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
