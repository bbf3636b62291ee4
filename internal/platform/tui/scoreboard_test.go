package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/seb-mtl/Space-Invaders/internal/storage"
)

func TestRunRow(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	row := RunRow(3, storage.RunRecord{
		Score:     42,
		Level:     2,
		Player:    "alice",
		CreatedAt: now.Add(-3 * time.Hour),
	}, now)

	want := []string{"#3", "42", "2", "alice", "3 hours ago"}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("column %d = %q, expected %q", i, row[i], want[i])
		}
	}
}

func TestRunRowPlaceholders(t *testing.T) {
	row := RunRow(1, storage.RunRecord{Score: 1, Level: 1}, time.Now())
	if row[3] != "-" || row[4] != "-" {
		t.Errorf("expected placeholders, got %v", row)
	}
}

func TestScoreboardLoadsRuns(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.RunRecord{Score: 5, Player: "bob"})
	store.SaveRun(storage.RunRecord{Score: 9, Player: "alice"})

	m := NewScoreboardModel(store, 9, 100, 30)
	if len(m.runs) != 2 || m.runs[0].Score != 9 {
		t.Fatalf("expected runs sorted by score, got %+v", m.runs)
	}

	view := m.View()
	if !strings.Contains(view, "best 9") || !strings.Contains(view, "alice") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 0, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("expected the empty message")
	}
}

func TestSanitizeUser(t *testing.T) {
	tests := map[string]string{
		"alice":     "alice",
		"../etc":    "___etc",
		"bob smith": "bob_smith",
		"":          "anonymous",
	}
	for in, want := range tests {
		if got := sanitizeUser(in); got != want {
			t.Errorf("sanitizeUser(%q) = %q, expected %q", in, got, want)
		}
	}
}
