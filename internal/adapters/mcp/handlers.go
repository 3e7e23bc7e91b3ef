package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/bnema/rememble/internal/application"
	"github.com/bnema/rememble/internal/domain"
)

const (
	codeInvalidRequest   = "INVALID_REQUEST"
	codeNotFound         = "NOT_FOUND"
	codeNoteTooLong      = "NOTE_TOO_LONG"
	codeMessageTooLong   = "MESSAGE_TOO_LONG"
	codeAlreadyConnected = "ALREADY_CONNECTED"
	codeInternal         = "INTERNAL"
)

// Handlers holds the services behind the MCP tools.
type Handlers struct {
	store  *application.Service
	notes  *application.NoteAssistantService
	logger *zap.Logger
}

func NewHandlers(store *application.Service, notes *application.NoteAssistantService, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handlers{store: store, notes: notes, logger: logger}
}

type ConnectionGetRequest struct {
	ID        string `json:"id,omitempty"`
	ProfileID string `json:"profile_id,omitempty"`
}

type ConnectionInviteRequest struct {
	ProfileID       string  `json:"profile_id"`
	PrivateNote     *string `json:"private_note,omitempty"`
	StandardMessage string  `json:"standard_message,omitempty"`
}

type ConnectionIDRequest struct {
	ID string `json:"id"`
}

type NoteUpdateRequest struct {
	ID   string `json:"id"`
	Note string `json:"note"`
}

type NotePromptsRequest struct {
	ProfileID string `json:"profile_id"`
}

type InviteOutput struct {
	Connection       application.ConnectionView `json:"connection"`
	AlreadyConnected bool                       `json:"already_connected"`
	NoteUpdated      bool                       `json:"note_updated"`
	Persisted        bool                       `json:"persisted"`
}

type MutationOutput struct {
	ID        string `json:"id"`
	Persisted bool   `json:"persisted"`
}

type PromptsOutput struct {
	ProfileID string   `json:"profile_id"`
	Prompts   []string `json:"prompts"`
	Generated bool     `json:"generated"`
}

type toolError struct {
	code    string
	message string
}

func (e *toolError) Error() string {
	return e.message
}

func invalidRequest(format string, args ...any) error {
	return &toolError{code: codeInvalidRequest, message: fmt.Sprintf(format, args...)}
}

func (h *Handlers) HandleNetworkList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(application.NewNetworkView(h.store.Network()))
}

func (h *Handlers) HandleConnectionGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ConnectionGetRequest](req)
	if err != nil {
		return errorResult(invalidRequest("%s", err.Error())), nil
	}

	id := strings.TrimSpace(input.ID)
	profileID := strings.TrimSpace(input.ProfileID)
	switch {
	case id != "":
		conn, err := h.store.GetConnectionByID(domain.ConnectionID(id))
		if err != nil {
			return errorResult(err), nil
		}
		return successResult(application.NewConnectionView(conn))
	case profileID != "":
		conn, ok := h.store.ConnectionForProfile(domain.ProfileID(profileID))
		if !ok {
			return errorResult(fmt.Errorf("%w: no connection for profile %s", domain.ErrConnectionNotFound, profileID)), nil
		}
		return successResult(application.NewConnectionView(conn))
	default:
		return errorResult(invalidRequest("id or profile_id is required")), nil
	}
}

func (h *Handlers) HandleConnectionInvite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ConnectionInviteRequest](req)
	if err != nil {
		return errorResult(invalidRequest("%s", err.Error())), nil
	}
	if strings.TrimSpace(input.ProfileID) == "" {
		return errorResult(invalidRequest("profile_id is required")), nil
	}

	result, err := h.store.Invite(ctx, application.InviteCommand{
		ProfileID:       domain.ProfileID(strings.TrimSpace(input.ProfileID)),
		PrivateNote:     input.PrivateNote,
		StandardMessage: input.StandardMessage,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(InviteOutput{
		Connection:       application.NewConnectionView(result.Connection),
		AlreadyConnected: result.AlreadyConnected,
		NoteUpdated:      result.NoteUpdated,
		Persisted:        h.persisted(),
	})
}

func (h *Handlers) HandleConnectionDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ConnectionIDRequest](req)
	if err != nil {
		return errorResult(invalidRequest("%s", err.Error())), nil
	}
	if strings.TrimSpace(input.ID) == "" {
		return errorResult(invalidRequest("id is required")), nil
	}

	if err := h.store.DeleteConnection(ctx, domain.ConnectionID(input.ID)); err != nil {
		return errorResult(err), nil
	}

	return successResult(MutationOutput{ID: input.ID, Persisted: h.persisted()})
}

func (h *Handlers) HandleNoteUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NoteUpdateRequest](req)
	if err != nil {
		return errorResult(invalidRequest("%s", err.Error())), nil
	}
	if strings.TrimSpace(input.ID) == "" {
		return errorResult(invalidRequest("id is required")), nil
	}

	if err := h.store.UpdateConnectionNote(ctx, domain.ConnectionID(input.ID), input.Note); err != nil {
		return errorResult(err), nil
	}

	return successResult(MutationOutput{ID: input.ID, Persisted: h.persisted()})
}

func (h *Handlers) HandleNoteDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ConnectionIDRequest](req)
	if err != nil {
		return errorResult(invalidRequest("%s", err.Error())), nil
	}
	if strings.TrimSpace(input.ID) == "" {
		return errorResult(invalidRequest("id is required")), nil
	}

	if err := h.store.DeleteConnectionNote(ctx, domain.ConnectionID(input.ID)); err != nil {
		return errorResult(err), nil
	}

	return successResult(MutationOutput{ID: input.ID, Persisted: h.persisted()})
}

func (h *Handlers) HandleNotePrompts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[NotePromptsRequest](req)
	if err != nil {
		return errorResult(invalidRequest("%s", err.Error())), nil
	}
	if strings.TrimSpace(input.ProfileID) == "" {
		return errorResult(invalidRequest("profile_id is required")), nil
	}

	profile, err := h.store.GetProfileToInvite(ctx, domain.ProfileID(input.ProfileID))
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(PromptsOutput{
		ProfileID: string(profile.ID),
		Prompts:   h.notes.GenerateNotePrompts(ctx, profile),
		Generated: h.notes.Enabled(),
	})
}

func (h *Handlers) persisted() bool {
	if err := h.store.LastPersistError(); err != nil {
		h.logger.Warn("mutation kept in memory only", zap.Error(err))
		return false
	}

	return true
}

func errorCode(err error) string {
	var te *toolError
	switch {
	case errors.As(err, &te):
		return te.code
	case errors.Is(err, domain.ErrNoteTooLong):
		return codeNoteTooLong
	case errors.Is(err, domain.ErrMessageTooLong):
		return codeMessageTooLong
	case errors.Is(err, domain.ErrAlreadyConnected):
		return codeAlreadyConnected
	case errors.Is(err, domain.ErrConnectionNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrInvitationNotFound):
		return codeNotFound
	default:
		return codeInternal
	}
}

func errorResult(err error) *mcp.CallToolResult {
	code := errorCode(err)
	message := err.Error()
	if code == codeInternal {
		message = "an internal error occurred"
	}

	payload := map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	}
	content, _ := json.Marshal(payload)

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
