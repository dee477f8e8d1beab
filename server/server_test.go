package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/server"
)

type searchResponse struct {
	Algorithm string               `json:"algorithm"`
	Visited   []gridgraph.Position `json:"visitedNodes"`
	Path      []gridgraph.Position `json:"path"`
	Found     bool                 `json:"found"`
	Cost      int                  `json:"cost"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId"`
}

type ServerSuite struct {
	suite.Suite
	ts *httptest.Server
}

func (s *ServerSuite) SetupTest() {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})
	s.ts = httptest.NewServer(server.New(logger, server.WithMaxCells(100)).Handler())
}

func (s *ServerSuite) TearDownTest() {
	s.ts.Close()
}

func (s *ServerSuite) post(body string) *http.Response {
	resp, err := http.Post(s.ts.URL+"/api/search", "application/json", strings.NewReader(body))
	s.Require().NoError(err)

	return resp
}

func decode[T any](s *ServerSuite, resp *http.Response) T {
	defer resp.Body.Close()
	var v T
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&v))

	return v
}

func (s *ServerSuite) TestHealth() {
	resp, err := http.Get(s.ts.URL + "/healthz")
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	_, err = uuid.Parse(resp.Header.Get(server.HeaderRequestID))
	s.NoError(err, "response must carry a UUID request id")
	s.Equal(map[string]string{"status": "ok"}, decode[map[string]string](s, resp))
}

func (s *ServerSuite) TestRequestIDEchoed() {
	id := uuid.NewString()
	req, err := http.NewRequest(http.MethodGet, s.ts.URL+"/healthz", nil)
	s.Require().NoError(err)
	req.Header.Set(server.HeaderRequestID, id)
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(id, resp.Header.Get(server.HeaderRequestID))
}

func (s *ServerSuite) TestAlgorithms() {
	resp, err := http.Get(s.ts.URL + "/api/algorithms")
	s.Require().NoError(err)
	list := decode[[]map[string]string](s, resp)
	s.Require().Len(list, 3)
	s.Equal("dijkstra", list[0]["name"])
	s.Equal("A* Search", list[1]["title"])
	s.Equal("bfs", list[2]["name"])

	resp, err = http.Get(s.ts.URL + "/api/algorithms/A*")
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("astar", decode[map[string]string](s, resp)["name"])

	resp, err = http.Get(s.ts.URL + "/api/algorithms/dfs")
	s.Require().NoError(err)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *ServerSuite) TestSearchWithMarkers() {
	resp := s.post(`{"algorithm":"bfs","grid":["S.#","..#","..E"]}`)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	got := decode[searchResponse](s, resp)
	s.Equal("bfs", got.Algorithm)
	s.True(got.Found)
	s.Equal(4, got.Cost)
	s.Equal([]gridgraph.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}, got.Path)
	s.Len(got.Visited, 7)
}

func (s *ServerSuite) TestSearchExplicitEndpoints() {
	resp := s.post(`{"algorithm":"dijkstra","grid":[".....",".....","....."],
		"start":{"row":0,"col":0},"end":{"row":2,"col":4}}`)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	got := decode[searchResponse](s, resp)
	s.Equal("dijkstra", got.Algorithm)
	s.Len(got.Path, 7)
}

func (s *ServerSuite) TestSearchNoPath() {
	resp := s.post(`{"algorithm":"astar","grid":["S#.","##.","..E"]}`)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	got := decode[searchResponse](s, resp)
	s.False(got.Found)
	s.Equal(-1, got.Cost)
	s.NotNil(got.Path)
	s.Empty(got.Path)
	s.Equal([]gridgraph.Position{{Row: 0, Col: 0}}, got.Visited)
}

func (s *ServerSuite) TestSearchErrors() {
	cases := map[string]string{
		"BadJSON":        `{"algorithm":`,
		"UnknownField":   `{"algorithm":"bfs","grid":["SE"],"extra":1}`,
		"UnknownAlgo":    `{"algorithm":"dfs","grid":["SE"]}`,
		"BadCell":        `{"algorithm":"bfs","grid":["S?E"]}`,
		"Ragged":         `{"algorithm":"bfs","grid":["S..","E"]}`,
		"MissingMarkers": `{"algorithm":"bfs","grid":["..."]}`,
		"OutOfBounds":    `{"algorithm":"bfs","grid":["..."],"start":{"row":0,"col":0},"end":{"row":0,"col":9}}`,
		"TooLarge":       `{"algorithm":"bfs","grid":["` + strings.Repeat(".", 101) + `"]}`,
		"Empty":          `{"algorithm":"bfs","grid":[]}`,
	}
	for name, body := range cases {
		s.Run(name, func() {
			resp := s.post(body)
			s.Equal(http.StatusBadRequest, resp.StatusCode)
			e := decode[errorResponse](s, resp)
			s.NotEmpty(e.Error)
			s.NotEmpty(e.RequestID)
		})
	}
}

func (s *ServerSuite) TestNotFoundAndMethod() {
	resp, err := http.Get(s.ts.URL + "/nope")
	s.Require().NoError(err)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(s.ts.URL + "/api/search")
	s.Require().NoError(err)
	s.Equal(http.StatusMethodNotAllowed, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	s.Contains(string(body), "method not allowed")
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { server.WithMaxCells(0) })
	assert.Panics(t, func() { server.WithMaxBody(0) })
	require.Equal(t, server.DefaultMaxCells, server.DefaultOptions().MaxCells)
}
