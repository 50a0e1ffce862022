package engine

import "testing"

func TestTilePathsSlideThenMerge(t *testing.T) {
	transitions := []Transition{
		{Kind: Slide, From: Coord{0, 1}, To: Coord{0, 0}, Value: 2},
		{Kind: Merge, From: Coord{0, 0}, Partner: Coord{0, 2}, To: Coord{0, 0}, Value: 4},
	}

	want := []TilePath{
		{From: Coord{0, 1}, To: Coord{0, 0}, Value: 2, Merged: true},
		{From: Coord{0, 2}, To: Coord{0, 0}, Value: 2, Merged: true},
	}

	got := TilePaths(transitions)
	if len(got) != len(want) {
		t.Fatalf("TilePaths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TilePaths()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTilePathsStationaryMergeTarget(t *testing.T) {
	transitions := []Transition{
		{Kind: Merge, From: Coord{0, 0}, Partner: Coord{0, 1}, To: Coord{0, 0}, Value: 4},
		{Kind: Slide, From: Coord{0, 3}, To: Coord{0, 1}, Value: 8},
	}

	got := TilePaths(transitions)
	if len(got) != 3 {
		t.Fatalf("TilePaths() returned %d paths, want 3: %v", len(got), got)
	}
	if got[0].From != got[0].To || !got[0].Merged {
		t.Errorf("stationary merge target = %+v, want From==To and Merged", got[0])
	}
	if got[2].Merged || got[2].From != (Coord{0, 3}) || got[2].To != (Coord{0, 1}) {
		t.Errorf("slide path = %+v", got[2])
	}
}

func TestTilePathsFromEngine(t *testing.T) {
	e := newTestEngine(t, [][]int{
		{2, 2, 2, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res, err := e.ApplyMove(Right)
	if err != nil {
		t.Fatalf("ApplyMove() failed: %v", err)
	}

	paths := TilePaths(res.Transitions)
	if len(paths) != 4 {
		t.Fatalf("expected every tile to have a path, got %v", paths)
	}
	for _, p := range paths {
		if !p.Merged {
			t.Errorf("path %+v should be merged", p)
		}
		if p.To.Col < 2 {
			t.Errorf("path %+v should end in the two rightmost columns", p)
		}
	}
}
