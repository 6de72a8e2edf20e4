package stats

import (
	"encoding/json"
	"log"
	"net/http"
)

const maxBodyBytes = 1 << 16

type server struct {
	store  Store
	logger *log.Logger
}

// NewHandler serves the statistics API:
//
//	GET  /       {"healthy": true}
//	POST /stats  store {"iterations": n}, answer 201 with the record
//	GET  /stats  list stored records
//
// Every response allows cross-origin requests.
func NewHandler(store Store, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	s := &server{store: store, logger: logger}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.health)
	mux.HandleFunc("POST /stats", s.create)
	mux.HandleFunc("GET /stats", s.list)
	mux.HandleFunc("OPTIONS /", preflight)
	return cors(mux)
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

func preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"healthy": true})
}

func (s *server) create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Iterations *int `json:"iterations"`
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if body.Iterations == nil || *body.Iterations < 0 {
		http.Error(w, "iterations must be a non-negative integer", http.StatusBadRequest)
		return
	}
	rec, err := s.store.Create(r.Context(), *body.Iterations)
	if err != nil {
		s.logger.Printf("stats: create: %v", err)
		http.Error(w, "could not store record", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *server) list(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Printf("stats: list: %v", err)
		http.Error(w, "could not list records", http.StatusInternalServerError)
		return
	}
	if recs == nil {
		recs = []Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
