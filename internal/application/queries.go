package application

import (
	"sort"

	"github.com/bnema/rememble/internal/domain"
)

type NetworkSummary struct {
	Connections     int `json:"connections"`
	WithNotes       int `json:"with_notes"`
	SentInvitations int `json:"sent_invitations"`
}

func Summarize(network domain.Network) NetworkSummary {
	summary := NetworkSummary{
		Connections:     len(network.Connections),
		SentInvitations: len(network.SentInvitations),
	}
	for _, conn := range network.Connections {
		if conn.HasNote() {
			summary.WithNotes++
		}
	}

	return summary
}

// RecentFirst orders connections newest first, keeping insertion order for ties.
func RecentFirst(connections []domain.Connection) []domain.Connection {
	sorted := append([]domain.Connection(nil), connections...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ConnectedAt.After(sorted[j].ConnectedAt)
	})

	return sorted
}
