package domain

const DefaultMessagePreviewLength = 150

type PendingInvitation struct {
	Profile           Profile
	Message           string
	MutualConnections string
	Verified          bool
}

func (i PendingInvitation) MessagePreview(limit int) string {
	if limit <= 0 {
		limit = DefaultMessagePreviewLength
	}

	runes := []rune(i.Message)
	if len(runes) <= limit {
		return i.Message
	}

	return string(runes[:limit]) + "..."
}
