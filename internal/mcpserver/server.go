// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Ansuz flow tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/flow"
	"github.com/starford/ansuz/internal/noteservice"
)

// Server wraps the MCP server with Ansuz tools.
type Server struct {
	mcp *server.MCPServer
	svc *noteservice.Service
}

// New creates a new MCP server with all Ansuz tools registered.
func New(svc *noteservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Ansuz",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("run_flow",
		mcp.WithDescription("Execute a named text flow (summarize, flashcards, mcqs, ...) over the supplied inputs. "+
			"Call list_flows or read the ansuz://flow-catalog resource for the available flows and the slot each one reads."),
		mcp.WithString("flow", mcp.Required(), mcp.Description("Flow id (e.g. summarize, bullet_points)")),
		mcp.WithString("user_note", mcp.Description("Note text for most flows")),
		mcp.WithString("user_syllabus", mcp.Description("Syllabus/topic text for study_plan")),
		mcp.WithString("note1", mcp.Description("First note for compare_notes")),
		mcp.WithString("note2", mcp.Description("Second note for compare_notes")),
		mcp.WithString("voice_text", mcp.Description("Transcript text for voice_cleanup")),
		mcp.WithString("pdf_text", mcp.Description("Extracted PDF text for pdf_extract_summary")),
		mcp.WithString("query", mcp.Description("Query text for memory_recall")),
	), s.runFlow)

	s.mcp.AddTool(mcp.NewTool("list_flows",
		mcp.WithDescription("List the supported flow ids."),
	), s.listFlows)

	s.mcp.AddTool(mcp.NewTool("save_note",
		mcp.WithDescription("Save an original note together with its processed derivative."),
		mcp.WithString("original_note", mcp.Required(), mcp.Description("The user's original note text")),
		mcp.WithString("processed_note", mcp.Required(), mcp.Description("The flow-processed note text")),
		mcp.WithString("tags", mcp.Description("Optional comma-separated tags")),
	), s.saveNote)

	s.mcp.AddTool(mcp.NewTool("recall_notes",
		mcp.WithDescription("Rank previously saved notes against a free-text query and return a digest."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Free-text query")),
	), s.recallNotes)

	// Resource: flow catalog.
	s.mcp.AddResource(
		mcp.NewResource("ansuz://flow-catalog", "Flow Catalog",
			mcp.WithResourceDescription("The supported flows and the input slot each one reads."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readFlowCatalogResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func optString(req mcp.CallToolRequest, key string) string {
	if v, err := req.RequireString(key); err == nil {
		return v
	}
	return ""
}

func (s *Server) runFlow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("flow")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	inputs := flow.Inputs{
		UserNote:     optString(req, "user_note"),
		UserSyllabus: optString(req, "user_syllabus"),
		Note1:        optString(req, "note1"),
		Note2:        optString(req, "note2"),
		VoiceText:    optString(req, "voice_text"),
		PDFText:      optString(req, "pdf_text"),
		Query:        optString(req, "query"),
	}

	output, err := s.svc.RunFlow(ctx, flow.ID(id), inputs)
	if err != nil {
		if errors.Is(err, apperr.ErrUnknownFlow) {
			return mcp.NewToolResultError("unknown flow: " + id), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(output), nil
}

func (s *Server) listFlows(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := s.svc.Flows()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return mcp.NewToolResultText(strings.Join(out, "\n")), nil
}

func (s *Server) saveNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	original, err := req.RequireString("original_note")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	processed, err := req.RequireString("processed_note")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var tags []string
	for _, t := range strings.Split(optString(req, "tags"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	id, err := s.svc.SaveNote(ctx, original, processed, tags)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("saved: " + id), nil
}

func (s *Server) recallNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := s.svc.Recall(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(res.Matches) == 0 {
		return mcp.NewToolResultText("no matching notes"), nil
	}

	type match struct {
		ID    string `json:"id"`
		Score int    `json:"score"`
	}
	matches := make([]match, len(res.Matches))
	for i, m := range res.Matches {
		matches[i] = match{ID: m.Note.ID, Score: m.Score}
	}
	payload, _ := json.MarshalIndent(map[string]any{
		"summary": res.Digest,
		"matches": matches,
	}, "", "  ")
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) readFlowCatalogResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "ansuz://flow-catalog",
			MIMEType: "text/markdown",
			Text:     FlowCatalog,
		},
	}, nil
}
