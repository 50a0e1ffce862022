package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store := openStore(t)
	records := []storage.ScoreRecord{
		{GameID: t2048.IDCampaign, Score: 3000, MaxTile: 256, Moves: 300, BoardSize: 4},
		{GameID: t2048.IDCampaign, Score: 9000, MaxTile: 1024, Moves: 700, BoardSize: 5},
		{GameID: t2048.IDCampaign, Score: 1200, MaxTile: 128, Moves: 150, BoardSize: 4},
		{GameID: t2048.IDEndless, Score: 500, MaxTile: 64, Moves: 80, BoardSize: 4},
	}
	for _, r := range records {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}
	return store
}

func boardUpdate(t *testing.T, m ScoreboardModel, msgs ...tea.Msg) ScoreboardModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(ScoreboardModel)
	}
	return m
}

func TestScoreboardLoadsFirstMode(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), 100, 30)

	if m.modeID() != t2048.IDCampaign {
		t.Fatalf("first mode = %q, want campaign", m.modeID())
	}
	if got := len(m.visible()); got != 3 {
		t.Fatalf("visible scores = %d, want 3", got)
	}
	if m.visible()[0].Score != 9000 {
		t.Errorf("best score = %d, want 9000", m.visible()[0].Score)
	}
	if len(m.sizes) != 2 || m.sizes[0] != 4 || m.sizes[1] != 5 {
		t.Errorf("sizes = %v, want [4 5]", m.sizes)
	}
	if m.stats == nil || m.stats.GamesCount != 3 {
		t.Errorf("stats = %+v", m.stats)
	}
}

func TestScoreboardSizeFilter(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), 100, 30)

	m = boardUpdate(t, m, runeKey("s"))
	for _, s := range m.visible() {
		if s.BoardSize != 4 {
			t.Errorf("filter 4x4 shows a %dx%d score", s.BoardSize, s.BoardSize)
		}
	}
	if len(m.visible()) != 2 {
		t.Errorf("4x4 scores = %d, want 2", len(m.visible()))
	}
	if !strings.Contains(m.filterLine(), "[4x4]") {
		t.Errorf("filter line = %q", m.filterLine())
	}

	m = boardUpdate(t, m, runeKey("s"), runeKey("s"))
	if m.sizeIdx != 0 || len(m.visible()) != 3 {
		t.Error("the filter should cycle back to all sizes")
	}
}

func TestScoreboardSwitchMode(t *testing.T) {
	m := NewScoreboardModel(seededStore(t), 100, 30)

	m = boardUpdate(t, m, runeKey("s"), tea.KeyMsg{Type: tea.KeyTab})
	if m.modeID() != t2048.IDEndless {
		t.Fatalf("mode = %q, want endless", m.modeID())
	}
	if m.sizeIdx != 0 {
		t.Error("switching mode should reset the size filter")
	}
	if len(m.visible()) != 1 {
		t.Errorf("endless scores = %d, want 1", len(m.visible()))
	}

	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.modeID() != t2048.IDCampaign {
		t.Errorf("mode = %q, want campaign", m.modeID())
	}
}

func TestScoreboardView(t *testing.T) {
	wide := NewScoreboardModel(seededStore(t), 100, 30)
	if out := wide.View(); !strings.Contains(out, "Totals") || !strings.Contains(out, "9000") {
		t.Errorf("wide view missing stats panel or scores:\n%s", out)
	}

	narrow := NewScoreboardModel(seededStore(t), 60, 30)
	if out := narrow.View(); strings.Contains(out, "Totals") || !strings.Contains(out, "Games: 3") {
		t.Errorf("narrow view should use the stats line:\n%s", out)
	}

	empty := NewScoreboardModel(nil, 100, 30)
	if out := empty.View(); !strings.Contains(out, "No scores recorded yet.") {
		t.Errorf("empty view:\n%s", out)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := boardUpdate(t, NewScoreboardModel(nil, 80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back")
	}

	m = boardUpdate(t, NewScoreboardModel(nil, 80, 24), runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}
