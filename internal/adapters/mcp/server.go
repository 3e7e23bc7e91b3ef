package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const serverName = "rememble"

type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

var toolRegistry = map[string]toolEntry{
	"network_list": {
		def: mcp.NewTool("network_list",
			mcp.WithDescription("List every connection, newest first, with the profile ids already invited."),
		),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleNetworkList },
	},
	"connection_get": {
		def: mcp.NewTool("connection_get",
			mcp.WithDescription("Fetch one connection by connection id or by profile id."),
			mcp.WithString("id", mcp.Description("Connection id, e.g. conn-john-smith-1707900000000.")),
			mcp.WithString("profile_id", mcp.Description("Profile id of the connected person.")),
		),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleConnectionGet },
	},
	"connection_invite": {
		def: mcp.NewTool("connection_invite",
			mcp.WithDescription("Connect to a catalog profile. When already connected only the private note is replaced, and only when private_note is given."),
			mcp.WithString("profile_id", mcp.Required(), mcp.Description("Catalog profile id.")),
			mcp.WithString("private_note", mcp.Description("Private note kept with the connection.")),
			mcp.WithString("standard_message", mcp.Description("Message sent with the invitation.")),
		),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleConnectionInvite },
	},
	"connection_delete": {
		def: mcp.NewTool("connection_delete",
			mcp.WithDescription("Remove a connection and forget that its profile was invited."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Connection id.")),
		),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleConnectionDelete },
	},
	"note_update": {
		def: mcp.NewTool("note_update",
			mcp.WithDescription("Replace the private note of a connection."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Connection id.")),
			mcp.WithString("note", mcp.Required(), mcp.Description("New private note.")),
		),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleNoteUpdate },
	},
	"note_delete": {
		def: mcp.NewTool("note_delete",
			mcp.WithDescription("Clear the private note of a connection."),
			mcp.WithString("id", mcp.Required(), mcp.Description("Connection id.")),
		),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleNoteDelete },
	},
	"note_prompts": {
		def: mcp.NewTool("note_prompts",
			mcp.WithDescription("Suggest three short prompts for writing a note to a catalog profile."),
			mcp.WithString("profile_id", mcp.Required(), mcp.Description("Catalog profile id.")),
		),
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleNotePrompts },
	},
}

func ToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}

	return names
}

func NewServer(h *Handlers, version string) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
	)
	for _, entry := range toolRegistry {
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run serves the tools over stdio until the client disconnects.
func Run(h *Handlers, version string) error {
	return server.ServeStdio(NewServer(h, version))
}
