package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("Expected empty message")
	}
}

func TestScoreboardRows(t *testing.T) {
	updated := time.Date(2026, time.March, 4, 10, 30, 0, 0, time.UTC)
	entries := []storage.BestScoreEntry{
		{Profile: "alice", Score: 42, UpdatedAt: updated},
		{Profile: "bob", Score: 7, UpdatedAt: updated},
	}
	m := NewScoreboardModel(entries, 80, 24)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, expected 2", len(rows))
	}

	expected := []string{"#1", "alice", "42", "Mar 04 10:30"}
	for i, cell := range expected {
		if rows[0][i] != cell {
			t.Errorf("row 0 col %d = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" || rows[1][1] != "bob" {
		t.Errorf("unexpected second row %v", rows[1])
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("Expected empty view after quit")
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"abcdef", 4, "abcdef"},
	}
	for _, tc := range tests {
		if got := centerText(tc.text, tc.width); got != tc.want {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.want)
		}
	}
}
