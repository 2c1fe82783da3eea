package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/goodworkapp/goodwork/internal/profile"
	"github.com/goodworkapp/goodwork/internal/prompt"
	"github.com/goodworkapp/goodwork/internal/report"
	"github.com/goodworkapp/goodwork/internal/storage"
)

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Store   *storage.Store
	Reports *report.Service
}

// NewMCPServer creates an MCP server exposing the coaching profile and the
// AI actions as agent tools.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"goodwork",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("goodwork — career coaching profile: screenings, Valou styling, AI reports, and job search."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("get_profile",
			mcp.WithDescription("Return the full coaching profile document as JSON."),
		),
		mcpGetProfile(deps),
	)

	s.AddTool(
		mcp.NewTool("set_profile_field",
			mcp.WithDescription("Update a free-text profile field (e.g. personal.beruf, identity.werte)."),
			mcp.WithString("key", mcp.Description("Dotted field key"), mcp.Required()),
			mcp.WithString("value", mcp.Description("Value to set"), mcp.Required()),
		),
		mcpSetProfileField(deps),
	)

	s.AddTool(
		mcp.NewTool("generate_report",
			mcp.WithDescription("Generate one coaching report (e.g. coaching_tips, riasec_report, identity_report) and store it on the profile."),
			mcp.WithString("kind", mcp.Description("Report kind"), mcp.Required()),
		),
		mcpGenerateReport(deps),
	)

	s.AddTool(
		mcp.NewTool("search_jobs",
			mcp.WithDescription("Run a grounded web search for jobs matching the profile and preferences."),
			mcp.WithString("region", mcp.Description("Region to search in")),
			mcp.WithString("employment_type", mcp.Description("Employment type, e.g. Vollzeit")),
		),
		mcpSearchJobs(deps),
	)

	s.AddResource(
		mcp.NewResource(
			"goodwork://profile",
			"Coaching Profile",
			mcp.WithResourceDescription("Current coaching profile document as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceProfile(deps),
	)

	return s
}

func mcpGetProfile(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := deps.Store.LoadDocument()
		if err != nil {
			return mcpError(fmt.Sprintf("failed to load profile: %v", err)), nil
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal profile: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpSetProfileField(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key, err := req.RequireString("key")
		if err != nil {
			return mcpError("key is required"), nil
		}
		value, err := req.RequireString("value")
		if err != nil {
			return mcpError("value is required"), nil
		}

		if _, err := mutateDocument(deps.Store, func(d profile.Document) (profile.Document, error) {
			cp := d.Clone()
			if err := cp.SetField(key, value); err != nil {
				return d, err
			}
			return cp, nil
		}); err != nil {
			return mcpError(fmt.Sprintf("failed to set field: %v", err)), nil
		}
		return mcpText(fmt.Sprintf("Set %s = %s", key, value)), nil
	}
}

func mcpGenerateReport(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kindStr, err := req.RequireString("kind")
		if err != nil {
			return mcpError("kind is required"), nil
		}
		kind, err := prompt.ParseKind(kindStr)
		if err != nil {
			return mcpError(err.Error()), nil
		}

		content, err := deps.Reports.GenerateReport(ctx, kind, prompt.Params{})
		if err != nil && content == "" {
			return mcpError(fmt.Sprintf("generating report: %v", err)), nil
		}
		// An error-string result is still the stored report content.
		return mcpText(content), nil
	}
}

func mcpSearchJobs(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		prefs := profile.JobPreferences{
			Region:         req.GetString("region", ""),
			EmploymentType: req.GetString("employment_type", ""),
		}

		matches, err := deps.Reports.SearchJobs(ctx, prefs)
		if err != nil {
			return mcpError(fmt.Sprintf("job search failed: %v", err)), nil
		}
		b, err := json.Marshal(matches)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal matches: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpResourceProfile(deps MCPDeps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		doc, err := deps.Store.LoadDocument()
		if err != nil {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal profile: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
