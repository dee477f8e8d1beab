package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/pathgrid/algorithms"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

var (
	errNotFound     = errors.New("server: not found")
	errMethod       = errors.New("server: method not allowed")
	errBadRequest   = errors.New("server: bad request")
	errGridTooLarge = errors.New("server: grid too large")
)

type algorithmInfo struct {
	Name  algorithms.Name `json:"name"`
	Title string          `json:"title"`
}

// searchRequest is the body of POST /api/search. Grid rows use the text map
// symbols (. # S E). Start and End override the S/E markers when present.
type searchRequest struct {
	Algorithm string              `json:"algorithm"`
	Grid      []string            `json:"grid"`
	Start     *gridgraph.Position `json:"start,omitempty"`
	End       *gridgraph.Position `json:"end,omitempty"`
}

type searchResponse struct {
	Algorithm algorithms.Name      `json:"algorithm"`
	Visited   []gridgraph.Position `json:"visitedNodes"`
	Path      []gridgraph.Position `json:"path"`
	Found     bool                 `json:"found"`
	Cost      int                  `json:"cost"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	names := algorithms.Names()
	out := make([]algorithmInfo, len(names))
	for i, n := range names {
		out[i] = algorithmInfo{Name: n, Title: algorithms.Title(n)}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAlgorithm(w http.ResponseWriter, r *http.Request) {
	n, err := algorithms.Parse(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, algorithmInfo{Name: n, Title: algorithms.Title(n)})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxBody)

	var req searchRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: decode body: %v", errBadRequest, err))
		return
	}

	name, err := algorithms.Parse(req.Algorithm)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if cells := gridCells(req.Grid); cells > s.opts.MaxCells {
		writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: %d cells, limit %d", errGridTooLarge, cells, s.opts.MaxCells))
		return
	}
	g, err := gridgraph.ParseRows(req.Grid)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	start, end, err := resolveEndpoints(g, req.Start, req.End)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	res, err := algorithms.Run(string(name), g, start, end)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	s.logger.Debug("search", "algorithm", name, "rows", g.Rows(), "cols", g.Cols(),
		"visited", len(res.Visited), "found", res.Found(), "id", requestIDFrom(r.Context()))

	writeJSON(w, http.StatusOK, searchResponse{
		Algorithm: name,
		Visited:   res.Visited,
		Path:      res.Path,
		Found:     res.Found(),
		Cost:      res.Cost(),
	})
}

// resolveEndpoints prefers explicit positions. If either is missing, the
// grid must carry exactly one S and one E to fill it in.
func resolveEndpoints(g *gridgraph.Grid, start, end *gridgraph.Position) (gridgraph.Position, gridgraph.Position, error) {
	if start == nil || end == nil {
		ms, me, err := g.Endpoints()
		if err != nil {
			return ms, me, fmt.Errorf("%w: set start and end or mark S and E in the grid", err)
		}
		if start == nil {
			start = &ms
		}
		if end == nil {
			end = &me
		}
	}

	return *start, *end, nil
}

// gridCells estimates rows×cols from the raw rows before parsing.
func gridCells(rows []string) int {
	if len(rows) == 0 {
		return 0
	}
	widest := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > widest {
			widest = n
		}
	}

	return len(rows) * widest
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error(), RequestID: requestIDFrom(r.Context())})
}
