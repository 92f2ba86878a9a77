package world

import "testing"

func TestReachable_StopsAtWalls(t *testing.T) {
	g, err := NewGridFromTiles(rows(
		"#######",
		"#  #  #",
		"#  #  #",
		"#######",
	))
	if err != nil {
		t.Fatal(err)
	}
	got := Reachable(g, Point{1, 1})
	if got.Size() != 4 {
		t.Errorf("Reachable size = %d, want 4 (left room only)", got.Size())
	}
	if got.Has(Point{4, 1}) {
		t.Error("right room reported reachable through a wall")
	}
}

func TestReachable_WalledStartIsEmpty(t *testing.T) {
	g := NewGrid(5, 5)
	if got := Reachable(g, Point{1, 1}); got.Size() != 0 {
		t.Errorf("Reachable size = %d, want 0", got.Size())
	}
}

func TestShortestPath(t *testing.T) {
	g, err := NewGridFromTiles(rows(
		"#######",
		"#     #",
		"##### #",
		"#     #",
		"#######",
	))
	if err != nil {
		t.Fatal(err)
	}
	path := ShortestPath(g, Point{1, 1}, Point{1, 3})
	if len(path) != 11 {
		t.Fatalf("len(path) = %d, want 11: %v", len(path), path)
	}
	if path[0] != (Point{1, 1}) || path[len(path)-1] != (Point{1, 3}) {
		t.Errorf("path endpoints = %v..%v, want (1, 1)..(1, 3)", path[0], path[len(path)-1])
	}
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		if dx*dx+dy*dy != 1 {
			t.Errorf("step %d from %v to %v is not orthogonal", i, path[i-1], path[i])
		}
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	g, _ := NewGridFromTiles(rows(
		"#####",
		"# # #",
		"#####",
	))
	if path := ShortestPath(g, Point{1, 1}, Point{3, 1}); path != nil {
		t.Errorf("ShortestPath = %v, want nil", path)
	}
}

func TestIsFullyConnected(t *testing.T) {
	connected := FrameInterior(rows("   ", " # ", "   "))
	if !IsFullyConnected(connected) {
		t.Error("IsFullyConnected = false for a ring")
	}
	split := FrameInterior(rows(" # ", "## ", "   "))
	if IsFullyConnected(split) {
		t.Error("IsFullyConnected = true with an isolated corner")
	}
}
