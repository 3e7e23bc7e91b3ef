package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bnema/rememble/internal/domain"
	"github.com/bnema/rememble/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDescribeProfile(t *testing.T) {
	got := DescribeProfile(janeProfile())

	assert.Equal(t, "Name: Jane Doe. Headline: Chief Vibe Officer at MeowCorp. Company: MeowCorp. Location: California, CA. Experience: Chief Napping Officer at The Comfy Cushion (2021-Present).", got)
}

func TestDescribeProfileOmitsEmptyParts(t *testing.T) {
	got := DescribeProfile(domain.Profile{ID: "p1", Name: "Bob", Headline: "Engineer"})

	assert.Equal(t, "Name: Bob. Headline: Engineer.", got)
}

func TestGenerateNotePromptsForwardsDescription(t *testing.T) {
	assistant := mocks.NewMockNoteAssistant(t)
	profile := janeProfile()
	assistant.EXPECT().
		GenerateNotePrompts(mock.Anything, DescribeProfile(profile)).
		Return([]string{" Ask about MeowCorp ", "", "Mention naps", "Compliment the cushion", "Too many"}, nil).
		Once()

	service := NewNoteAssistantService(assistant, zap.NewNop(), 0)
	prompts := service.GenerateNotePrompts(context.Background(), profile)

	assert.Equal(t, []string{"Ask about MeowCorp", "Mention naps", "Compliment the cushion"}, prompts)
}

func TestGenerateNotePromptsFallsBackOnError(t *testing.T) {
	assistant := mocks.NewMockNoteAssistant(t)
	assistant.EXPECT().
		GenerateNotePrompts(mock.Anything, mock.Anything).
		Return(nil, errors.New("quota exceeded")).
		Once()

	service := NewNoteAssistantService(assistant, zap.NewNop(), 0)
	prompts := service.GenerateNotePrompts(context.Background(), janeProfile())

	require.Len(t, prompts, 3)
	assert.Equal(t, FallbackNotePrompts, prompts)
}

func TestGenerateNotePromptsFallsBackOnEmptyAnswer(t *testing.T) {
	assistant := mocks.NewMockNoteAssistant(t)
	assistant.EXPECT().
		GenerateNotePrompts(mock.Anything, mock.Anything).
		Return([]string{"  ", ""}, nil).
		Once()

	service := NewNoteAssistantService(assistant, zap.NewNop(), 0)

	assert.Equal(t, FallbackNotePrompts, service.GenerateNotePrompts(context.Background(), janeProfile()))
}

func TestGenerateNotePromptsWithoutAssistant(t *testing.T) {
	service := NewNoteAssistantService(nil, nil, 0)

	prompts := service.GenerateNotePrompts(context.Background(), janeProfile())
	require.Len(t, prompts, 3)
	assert.False(t, service.Enabled())

	prompts[0] = "mutated"
	assert.Equal(t, "Mention a shared connection or interest.", FallbackNotePrompts[0])
}

func TestDraftPrivateNoteUsesAssistantAndTruncates(t *testing.T) {
	assistant := mocks.NewMockNoteAssistant(t)
	conn := domain.Connection{ID: "c1", Profile: janeProfile(), PrivateNote: "met at conf"}
	assistant.EXPECT().
		SummarizeConnection(mock.Anything, DescribeProfile(conn.Profile), "met at conf").
		Return(strings.Repeat("x", 40), nil).
		Once()

	service := NewNoteAssistantService(assistant, zap.NewNop(), 25)
	draft := service.DraftPrivateNote(context.Background(), conn, "")

	assert.Equal(t, strings.Repeat("x", 25), draft)
}

func TestDraftPrivateNoteFallsBackToProfileDraft(t *testing.T) {
	assistant := mocks.NewMockNoteAssistant(t)
	conn := domain.Connection{
		ID:              "c1",
		Profile:         janeProfile(),
		ConnectedAt:     testNow,
		StandardMessage: "Hi Jane!",
	}
	assistant.EXPECT().
		SummarizeConnection(mock.Anything, mock.Anything, "Connection request message: Hi Jane!").
		Return("", errors.New("unavailable")).
		Once()

	service := NewNoteAssistantService(assistant, zap.NewNop(), 0)
	draft := service.DraftPrivateNote(context.Background(), conn, "")

	assert.Equal(t, `Jane Doe (Chief Vibe Officer at MeowCorp), connected Feb 14, 2026. Based in California, CA. Invitation said: "Hi Jane!".`, draft)
}
