package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazeadventure/pkg/engine/world"
	"mazeadventure/pkg/game/gameplay"
)

func newTestHandler() http.Handler {
	gin.SetMode(gin.TestMode)
	return NewRouter(Config{
		BaseURL:     "/api",
		Controllers: []Controller{NewMazeController("backtracker")},
	}).Handler()
}

func post(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGenerate_LevelOne(t *testing.T) {
	rec := post(t, newTestHandler(), "/api/v1/mazes", MazeRequest{Level: 1, Seed: 42})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp MazeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Size)
	assert.Len(t, resp.Cells, 7)
	assert.Equal(t, world.Point{X: 1, Y: 1}, resp.Start)
	assert.Equal(t, world.Point{X: 5, Y: 5}, resp.Goal)

	grid, err := world.NewGridFromTiles(resp.Cells)
	require.NoError(t, err)
	assert.Empty(t, grid.Validate())
}

func TestGenerate_SameSeedSameMaze(t *testing.T) {
	h := newTestHandler()
	a := post(t, h, "/api/v1/mazes", MazeRequest{Level: 9, Seed: 7})
	b := post(t, h, "/api/v1/mazes", MazeRequest{Level: 9, Seed: 7})
	assert.JSONEq(t, a.Body.String(), b.Body.String())
}

func TestGenerate_ClampsLevelAndPicksGenerator(t *testing.T) {
	rec := post(t, newTestHandler(), "/api/v1/mazes", MazeRequest{Level: -4, Generator: "fixed"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MazeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Level)
	assert.Equal(t, 7, resp.Size)
}

func TestGenerate_UnknownGenerator(t *testing.T) {
	rec := post(t, newTestHandler(), "/api/v1/mazes", MazeRequest{Level: 1, Generator: "prim"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

var practiceCells = [][]world.Tile{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 1, 0, 0, 1},
	{1, 1, 0, 1, 0, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 1, 0, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

func TestMove(t *testing.T) {
	h := newTestHandler()
	tests := []struct {
		name string
		req  MoveRequest
		want gameplay.MoveResult
	}{
		{
			name: "open",
			req:  MoveRequest{Cells: practiceCells, Position: world.Point{X: 1, Y: 1}, Direction: "right"},
			want: gameplay.MoveResult{Accepted: true, Position: world.Point{X: 2, Y: 1}},
		},
		{
			name: "wall",
			req:  MoveRequest{Cells: practiceCells, Position: world.Point{X: 1, Y: 1}, Direction: "down"},
			want: gameplay.MoveResult{Position: world.Point{X: 1, Y: 1}},
		},
		{
			name: "goal",
			req:  MoveRequest{Cells: practiceCells, Position: world.Point{X: 5, Y: 4}, Direction: "south"},
			want: gameplay.MoveResult{Accepted: true, Position: world.Point{X: 5, Y: 5}, ReachedGoal: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, h, "/api/v1/moves", tt.req)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var got gameplay.MoveResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMove_BadRequests(t *testing.T) {
	h := newTestHandler()

	rec := post(t, h, "/api/v1/moves", MoveRequest{Cells: practiceCells, Direction: "sideways"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(t, h, "/api/v1/moves", MoveRequest{Cells: [][]world.Tile{{1, 1}, {1}}, Direction: "up"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(t, h, "/api/v1/moves", map[string]any{"direction": "up"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
