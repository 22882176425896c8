// internal/app/features/leaderboard/rank.go
package leaderboard

import (
	"sort"

	"github.com/ecochef/ecochef/internal/domain/models"
)

// Entry is one leaderboard row.
type Entry struct {
	Position int
	Name     string
	Points   int
}

// Rank orders members by points, highest first. The sort is stable, so
// members with equal points keep the order they arrived in. A profile
// whose points field was never set ranks with zero.
func Rank(members []models.User) []Entry {
	sorted := make([]models.User, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})

	entries := make([]Entry, 0, len(sorted))
	for i, u := range sorted {
		entries = append(entries, Entry{
			Position: i + 1,
			Name:     u.FullName,
			Points:   u.Points,
		})
	}
	return entries
}
