// Package server hosts the plate page and lets other tools drive the
// highlighted wells over HTTP while browsers follow along on a websocket.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"pipguide/config"
	"pipguide/diagram"
	"pipguide/plate"
	"pipguide/surface/htmldom"
)

// Server owns one host page and the plates drawn into it. Requests are
// applied one at a time; the last write to a well wins.
type Server struct {
	mu         sync.Mutex
	doc        *htmldom.Document
	plates     map[string]*diagram.Diagram
	order      []string
	alignColor string

	hub *Hub
}

// New parses page and generates a plate into every container.
func New(page string, cfg config.Config) (*Server, error) {
	doc, err := htmldom.ParseString(page)
	if err != nil {
		return nil, err
	}
	s := &Server{
		doc:        doc,
		plates:     make(map[string]*diagram.Diagram, len(cfg.Containers)),
		alignColor: cfg.AlignColor,
		hub:        NewHub(),
	}
	for _, id := range cfg.Containers {
		d, err := diagram.Generate(doc, id, cfg.PPCM)
		if err != nil {
			return nil, err
		}
		s.plates[d.ContainerID()] = d
		s.order = append(s.order, d.ContainerID())
	}
	return s, nil
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.HandleFunc("GET /plates/{plate}", s.handlePlate)
	mux.HandleFunc("POST /plates/{plate}/reset", s.handleReset)
	mux.HandleFunc("POST /plates/{plate}/alignment", s.handleAlignment)
	mux.HandleFunc("POST /plates/{plate}/resize", s.handleResize)
	mux.HandleFunc("POST /plates/{plate}/wells/{well}", s.handleWell)
	return mux
}

// ListenAndServe serves Handler on addr.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Handler())
}

type colorRequest struct {
	Color string `json:"color"`
}

type resizeRequest struct {
	PPCM float64 `json:"ppcm"`
	DPI  float64 `json:"dpi"`
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.doc.Render(w); err != nil {
		log.Printf("render page: %v", err)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	initial := make([]Update, 0, len(s.order))
	for _, id := range s.order {
		if u, ok := s.snapshot(id); ok {
			initial = append(initial, u)
		}
	}
	s.mu.Unlock()
	s.hub.serve(w, r, initial)
}

func (s *Server) handlePlate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	u, ok := s.snapshot(r.PathValue("plate"))
	s.mu.Unlock()
	if !ok {
		writeError(w, fmt.Errorf("plate %q: %w", r.PathValue("plate"), diagram.ErrContainerNotFound))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(u.HTML))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(d *diagram.Diagram) error {
		return d.Reset()
	})
}

func (s *Server) handleAlignment(w http.ResponseWriter, r *http.Request) {
	req := colorRequest{Color: s.alignColor}
	if !decode(w, r, &req) {
		return
	}
	s.mutate(w, r, func(d *diagram.Diagram) error {
		return d.SetAlignmentMode(req.Color)
	})
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	var req resizeRequest
	if !decode(w, r, &req) {
		return
	}
	s.mutate(w, r, func(d *diagram.Diagram) error {
		if req.DPI != 0 {
			return d.ResizeByDPI(req.DPI)
		}
		return d.ResizeByPPCM(req.PPCM)
	})
}

func (s *Server) handleWell(w http.ResponseWriter, r *http.Request) {
	var req colorRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Color == "" {
		writeError(w, fmt.Errorf("color is required: %w", plate.ErrInvalidArgument))
		return
	}
	label := r.PathValue("well")
	s.mutate(w, r, func(d *diagram.Diagram) error {
		return d.SetWellColor(label, req.Color)
	})
}

// mutate applies fn to the plate named in the request and pushes the
// result to every browser.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, fn func(*diagram.Diagram) error) {
	id := r.PathValue("plate")

	s.mu.Lock()
	d, ok := s.plates[id]
	if !ok {
		s.mu.Unlock()
		writeError(w, fmt.Errorf("plate %q: %w", id, diagram.ErrContainerNotFound))
		return
	}
	if err := fn(d); err != nil {
		s.mu.Unlock()
		writeError(w, err)
		return
	}
	u, _ := s.snapshot(d.ContainerID())
	s.mu.Unlock()

	s.hub.Broadcast(u)
	w.WriteHeader(http.StatusNoContent)
}

// snapshot must be called with mu held.
func (s *Server) snapshot(id string) (Update, bool) {
	if _, ok := s.plates[id]; !ok {
		return Update{}, false
	}
	inner, ok := s.doc.InnerHTML(id)
	if !ok {
		return Update{}, false
	}
	return Update{Container: id, HTML: inner}, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, fmt.Errorf("decode request: %v: %w", err, plate.ErrInvalidArgument))
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, plate.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, diagram.ErrContainerNotFound):
		status = http.StatusNotFound
	default:
		log.Printf("request failed: %v", err)
	}
	http.Error(w, err.Error(), status)
}
