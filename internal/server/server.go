package server

import (
	"fmt"
	"net/http"

	logger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"chirp/internal/handlers"
	"chirp/internal/handlers/account"
	"chirp/internal/handlers/message"
	"chirp/internal/service"
	"chirp/internal/ws"
)

type Server struct {
	Addr    string
	Service *service.Service
	Feed    *ws.Hub
}

func NewServer(addr string, svc *service.Service, feed *ws.Hub) *Server {
	return &Server{
		Addr:    addr,
		Service: svc,
		Feed:    feed,
	}
}

func HandlerFunc(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}

// Router builds the route table. Split out from Run so tests can mount
// it on httptest servers.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	// middlewares
	r.Use(logger.Logger("router", logrus.StandardLogger()))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprintln(w, "Welcome to chirp API! Server is running....")
	})
	r.Get("/health", handlers.HealthCheck)

	// account routes (public)
	r.Post("/register", HandlerFunc(&account.RegisterHandler{Service: s.Service}))
	r.Post("/login", HandlerFunc(&account.LoginHandler{Service: s.Service}))

	// message routes
	r.Post("/messages", HandlerFunc(&message.CreateHandler{Service: s.Service, Feed: s.Feed}))
	r.Get("/messages", HandlerFunc(&message.ListHandler{Service: s.Service}))
	r.Get("/messages/{id}", HandlerFunc(&message.GetHandler{Service: s.Service}))
	r.Patch("/messages/{id}", HandlerFunc(&message.UpdateHandler{Service: s.Service, Feed: s.Feed}))
	r.Delete("/messages/{id}", HandlerFunc(&message.DeleteHandler{Service: s.Service, Feed: s.Feed}))
	r.Get("/accounts/{userId}/messages", HandlerFunc(&message.ByUserHandler{Service: s.Service}))

	// live feed (public)
	r.Get("/ws", HandlerFunc(&handlers.FeedHandler{Hub: s.Feed}))

	return r
}

func (s *Server) Run() error {
	logrus.Infof("server running on %s", s.Addr)
	return http.ListenAndServe(s.Addr, s.Router())
}
