// Package delivery exposes the knight pathfinder over HTTP with chi.
package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/katalvlaran/knightpath/bfs"
	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/knight"
)

// PathResponse is the body of a successful GET /path.
type PathResponse struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Moves int      `json:"moves"`
	Path  []string `json:"path"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type PathHandler struct {
	log      *zap.SugaredLogger
	maxDepth int
}

// NewPathHandler returns a handler whose searches expand at most maxDepth
// levels (0 = unlimited).
func NewPathHandler(log *zap.SugaredLogger, maxDepth int) *PathHandler {
	return &PathHandler{log: log, maxDepth: maxDepth}
}

// Router mounts the routes and middleware on a new chi mux.
func (h *PathHandler) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Get("/healthz", h.HandleHealth)
	r.Get("/path", h.HandlePath)

	return r
}

func (h *PathHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(h.log, w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandlePath serves GET /path?from=a1&to=h8.
func (h *PathHandler) HandlePath(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := board.ParseSquare(q.Get("from"))
	if err != nil {
		writeJSONError(h.log, w, http.StatusBadRequest, "from: "+err.Error())
		return
	}
	to, err := board.ParseSquare(q.Get("to"))
	if err != nil {
		writeJSONError(h.log, w, http.StatusBadRequest, "to: "+err.Error())
		return
	}

	opts := []bfs.Option{bfs.WithContext(r.Context())}
	if h.maxDepth > 0 {
		opts = append(opts, bfs.WithMaxDepth(h.maxDepth))
	}
	path, err := knight.FindPath(from, to, opts...)
	switch {
	case errors.Is(err, bfs.ErrDepthLimit):
		writeJSONError(h.log, w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		h.log.Errorw("path search failed", "from", from, "to", to, zap.Error(err))
		writeJSONError(h.log, w, http.StatusInternalServerError, "path search failed")
		return
	}

	resp := PathResponse{
		From:  from.String(),
		To:    to.String(),
		Moves: len(path) - 1,
		Path:  make([]string, len(path)),
	}
	for i, sq := range path {
		resp.Path[i] = sq.String()
	}

	writeJSON(h.log, w, http.StatusOK, resp)
}

// requestLogger logs one line per request with the chi request id.
func (h *PathHandler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.Infow("request",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func writeJSON(log *zap.SugaredLogger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("writeJSON encode error: %v", err)
	}
}

func writeJSONError(log *zap.SugaredLogger, w http.ResponseWriter, status int, msg string) {
	writeJSON(log, w, status, ErrorResponse{Error: msg})
	log.Debugf("writeJSONError: %s", msg)
}
