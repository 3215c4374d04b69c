package mux

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/cryptolink/solkit/internal/server/endpoint"
	"github.com/cryptolink/solkit/internal/server/http/common"
	"github.com/cryptolink/solkit/pkg/api-toolkit/v1/model"
	"github.com/pkg/errors"
)

// handle decodes JSON body into Req, calls fn and writes the envelope.
// An empty body decodes into zero Req.
func handle[Req, Res any](s *Server, fn func(*Req) (Res, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req

		if err := decodeBody(http.MaxBytesReader(w, r.Body, s.bodyLimit), &req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				s.writeJSON(w, http.StatusRequestEntityTooLarge, &model.ErrorResponse{
					Error: http.StatusText(http.StatusRequestEntityTooLarge),
				})
				return
			}

			s.writeError(w, r, errors.Wrap(common.ErrMalformedBody, err.Error()))
			return
		}

		res, err := fn(&req)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		s.writeJSON(w, http.StatusOK, common.Success(res))
	}
}

// decodeBody reads exactly one JSON value; anything but whitespace after it
// is an error.
func decodeBody(body io.Reader, v any) error {
	dec := json.NewDecoder(body)

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}

		return err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON body")
		}

		return err
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	if s.draining.Load() {
		s.writeJSON(w, http.StatusServiceUnavailable, &model.ErrorResponse{Error: "server is shutting down"})
		return
	}

	s.writeJSON(w, http.StatusOK, common.Success(endpoint.HealthMessage))
}

func (s *Server) handleKeypair(w http.ResponseWriter, r *http.Request) {
	res, err := s.endpoints.GenerateKeypair()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, common.Success(res))
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusNotFound, &model.ErrorResponse{Error: "Not Found"})
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusMethodNotAllowed, &model.ErrorResponse{Error: "Method Not Allowed"})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := common.Error(err)

	// malformed bodies are reported like the echo transport does
	if errors.Is(err, common.ErrMalformedBody) {
		body.Error = "invalid request body"
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("internal error")
	}

	s.writeJSON(w, status, body)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("unable to write response")
	}
}
