// Package http exposes expression reduction over JSON.
package http

import (
	"encoding/json"
	"errors"
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go-money-expression"
	"go-money-expression/reduce"
	"net/http"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Service reduce.Service
	logger  log.Logger
	router  http.ServeMux
}

func NewServer(s reduce.Service, logger log.Logger) *Server {
	server := &Server{
		Service: s,
		logger:  logger,
		router:  http.ServeMux{},
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/reduce", s.reduce())
	s.router.Handle("/api/rate", s.rate())
	s.router.Handle("/metrics", promhttp.Handler())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// reduce produces HTTP handler for expression reductions
func (s *Server) reduce() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		To         string `json:"to"`
		Expression *node  `json:"expression"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Amount     int64          `json:"amount"`
		Currency   money.Currency `json:"currency"`
		Expression string         `json:"expression"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		if r.Method != http.MethodPost {
			s.fail(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var request request
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			s.fail(rw, http.StatusBadRequest, "invalid json")
			return
		}

		to, err := money.ParseCurrency(request.To)
		if err != nil {
			s.fail(rw, http.StatusBadRequest, err.Error())
			return
		}
		expr, err := request.Expression.expression()
		if err != nil {
			s.fail(rw, http.StatusBadRequest, err.Error())
			return
		}

		result, err := s.Service.Reduce(r.Context(), expr, to)
		if err != nil {
			s.fail(rw, statusFor(err), "failed reduction")
			return
		}

		s.respond(rw, response{
			Amount:     result.Amount,
			Currency:   result.Currency,
			Expression: expr.String(),
		})
	}
}

// rate produces HTTP handler for rate lookups
func (s *Server) rate() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			s.fail(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		query := r.URL.Query()
		from, err := money.ParseCurrency(query.Get("from"))
		if err != nil {
			s.fail(rw, http.StatusBadRequest, err.Error())
			return
		}
		to, err := money.ParseCurrency(query.Get("to"))
		if err != nil {
			s.fail(rw, http.StatusBadRequest, err.Error())
			return
		}

		rate, err := s.Service.Rate(r.Context(), from, to)
		if err != nil {
			s.fail(rw, statusFor(err), "failed rate lookup")
			return
		}

		s.respond(rw, money.Rate{From: from, To: to, Rate: rate})
	}
}

// statusFor maps a service error to a response status
func statusFor(err error) int {
	if errors.Is(err, money.ErrMissingRate) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) respond(rw http.ResponseWriter, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(rw).Encode(v); err != nil {
		s.logger.Log("msg", "failed json encoding", "err", err)
	}
}

func (s *Server) fail(rw http.ResponseWriter, status int, msg string) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(map[string]string{"error": msg}); err != nil {
		s.logger.Log("msg", "failed json encoding", "err", err)
	}
}
