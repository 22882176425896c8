package leaderboard

import (
	"testing"

	"github.com/ecochef/ecochef/internal/domain/models"
)

func TestRank_OrdersByPointsDesc(t *testing.T) {
	members := []models.User{
		{FullName: "Low", Points: 10},
		{FullName: "High", Points: 90},
		{FullName: "Mid", Points: 40},
	}

	got := Rank(members)

	want := []string{"High", "Mid", "Low"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d: got %q, want %q", i+1, got[i].Name, name)
		}
	}
	if got[0].Position != 1 || got[2].Position != 3 {
		t.Errorf("positions not sequential: %+v", got)
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	members := []models.User{
		{FullName: "First", Points: 50},
		{FullName: "Second", Points: 50},
		{FullName: "Third", Points: 50},
	}

	got := Rank(members)

	want := []string{"First", "Second", "Third"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("tie order broken at %d: got %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestRank_UnsetPointsRankAsZero(t *testing.T) {
	members := []models.User{
		{FullName: "NoPoints"}, // points field never written
		{FullName: "Scored", Points: 5},
	}

	got := Rank(members)

	if got[0].Name != "Scored" {
		t.Errorf("expected Scored first, got %q", got[0].Name)
	}
	if got[1].Points != 0 {
		t.Errorf("expected unset points to rank as 0, got %d", got[1].Points)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	members := []models.User{
		{FullName: "B", Points: 1},
		{FullName: "A", Points: 2},
	}

	Rank(members)

	if members[0].FullName != "B" {
		t.Error("Rank reordered the caller's slice")
	}
}

func TestRank_Empty(t *testing.T) {
	if got := Rank(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %d entries", len(got))
	}
}
