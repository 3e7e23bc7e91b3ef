package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/rememble/internal/domain"
	"github.com/bnema/rememble/internal/ports"
	"go.uber.org/zap"
)

const maxNotePrompts = 3

// FallbackNotePrompts is returned whenever the assistant cannot answer.
var FallbackNotePrompts = []string{
	"Mention a shared connection or interest.",
	"Comment on a recent post or achievement.",
	"Explain why you'd like to connect.",
}

type NoteAssistantService struct {
	assistant     ports.NoteAssistant
	logger        *zap.Logger
	maxNoteLength int
}

// NewNoteAssistantService accepts a nil assistant; every call then answers
// with the fallback.
func NewNoteAssistantService(assistant ports.NoteAssistant, logger *zap.Logger, maxNoteLength int) *NoteAssistantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxNoteLength <= 0 {
		maxNoteLength = domain.DefaultMaxNoteLength
	}

	return &NoteAssistantService{assistant: assistant, logger: logger, maxNoteLength: maxNoteLength}
}

func (s *NoteAssistantService) Enabled() bool {
	return s.assistant != nil
}

// GenerateNotePrompts never fails: any assistant error or empty answer yields
// a copy of FallbackNotePrompts.
func (s *NoteAssistantService) GenerateNotePrompts(ctx context.Context, profile domain.Profile) []string {
	if s.assistant == nil {
		return fallbackPrompts()
	}

	prompts, err := s.assistant.GenerateNotePrompts(ctx, DescribeProfile(profile))
	if err != nil {
		s.logger.Warn("generate note prompts failed, using fallback", zap.String("profile_id", string(profile.ID)), zap.Error(err))
		return fallbackPrompts()
	}

	cleaned := make([]string, 0, maxNotePrompts)
	for _, prompt := range prompts {
		prompt = strings.TrimSpace(prompt)
		if prompt == "" {
			continue
		}
		cleaned = append(cleaned, prompt)
		if len(cleaned) == maxNotePrompts {
			break
		}
	}
	if len(cleaned) == 0 {
		s.logger.Warn("assistant returned no note prompts, using fallback", zap.String("profile_id", string(profile.ID)))
		return fallbackPrompts()
	}

	return cleaned
}

// DraftPrivateNote asks the assistant for a private note summarizing the
// connection. A failed call falls back to a draft built from the profile.
func (s *NoteAssistantService) DraftPrivateNote(ctx context.Context, conn domain.Connection, history string) string {
	history = strings.TrimSpace(history)
	if history == "" {
		history = conn.PrivateNote
	}
	if history == "" && conn.StandardMessage != "" {
		history = "Connection request message: " + conn.StandardMessage
	}

	draft := ""
	if s.assistant != nil {
		summary, err := s.assistant.SummarizeConnection(ctx, DescribeProfile(conn.Profile), history)
		if err != nil {
			s.logger.Warn("summarize connection failed, using profile draft", zap.String("connection_id", string(conn.ID)), zap.Error(err))
		} else {
			draft = strings.TrimSpace(summary)
		}
	}
	if draft == "" {
		draft = profileDraft(conn)
	}

	runes := []rune(draft)
	if len(runes) > s.maxNoteLength {
		draft = string(runes[:s.maxNoteLength])
	}

	return draft
}

// DescribeProfile flattens a profile into the single line handed to the assistant.
func DescribeProfile(profile domain.Profile) string {
	parts := []string{
		fmt.Sprintf("Name: %s.", profile.Name),
		fmt.Sprintf("Headline: %s.", profile.Headline),
	}
	if profile.Company != "" {
		parts = append(parts, fmt.Sprintf("Company: %s.", profile.Company))
	}
	if profile.Location != "" {
		parts = append(parts, fmt.Sprintf("Location: %s.", profile.Location))
	}
	if profile.Bio != "" {
		parts = append(parts, fmt.Sprintf("Bio: %s.", profile.Bio))
	}
	if len(profile.Experience) > 0 {
		entries := make([]string, 0, len(profile.Experience))
		for _, entry := range profile.Experience {
			if summary := entry.Summary(); summary != "" {
				entries = append(entries, summary)
			}
		}
		if len(entries) > 0 {
			parts = append(parts, fmt.Sprintf("Experience: %s.", strings.Join(entries, ", ")))
		}
	}

	return strings.Join(parts, " ")
}

func profileDraft(conn domain.Connection) string {
	var b strings.Builder
	b.WriteString(conn.Profile.Name)
	if conn.Profile.Headline != "" {
		fmt.Fprintf(&b, " (%s)", conn.Profile.Headline)
	}
	if !conn.ConnectedAt.IsZero() {
		fmt.Fprintf(&b, ", connected %s", conn.ConnectedAt.Format("Jan 2, 2006"))
	}
	b.WriteString(".")
	if conn.Profile.Location != "" {
		fmt.Fprintf(&b, " Based in %s.", conn.Profile.Location)
	}
	if conn.StandardMessage != "" {
		fmt.Fprintf(&b, " Invitation said: %q.", conn.StandardMessage)
	}

	return b.String()
}

func fallbackPrompts() []string {
	return append([]string(nil), FallbackNotePrompts...)
}
