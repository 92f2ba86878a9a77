package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mazeadventure/pkg/engine/world"
	"mazeadventure/pkg/game/gameplay"
	"mazeadventure/pkg/game/generator"
)

// MazeController serves maze generation and move checks. It keeps no state
// between requests.
type MazeController struct {
	defaultGenerator string
}

// NewMazeController creates a controller that uses generatorName when a request
// does not pick one.
func NewMazeController(generatorName string) *MazeController {
	return &MazeController{defaultGenerator: generatorName}
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	route.POST("/mazes", mc.generate)
	route.POST("/moves", mc.move)
}

func (mc *MazeController) generate(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := request.Generator
	if name == "" {
		name = mc.defaultGenerator
	}
	// A generator per request, so concurrent requests never share a source.
	gen, err := generator.ByName(name, request.Seed)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level := max(request.Level, 1)
	grid := gen.Generate(level)
	ctx.JSON(http.StatusOK, &MazeResponse{
		Level: level,
		Size:  grid.Width(),
		Start: grid.Start(),
		Goal:  grid.Goal(),
		Cells: grid.Tiles(),
	})
}

func (mc *MazeController) move(ctx *gin.Context) {
	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grid, err := world.NewGridFromTiles(request.Cells)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dir, ok := world.ParseDirection(request.Direction)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown direction " + request.Direction})
		return
	}

	result, err := gameplay.TryMove(grid, request.Position, dir)
	if errors.Is(err, gameplay.ErrInvalidDirection) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
