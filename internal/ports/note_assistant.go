package ports

import "context"

type NoteAssistant interface {
	GenerateNotePrompts(ctx context.Context, profileData string) ([]string, error)
	SummarizeConnection(ctx context.Context, profileData, history string) (string, error)
}
