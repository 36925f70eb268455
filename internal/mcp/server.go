// Package mcp exposes the template compiler as Model Context Protocol tools
// over stdio.
package mcp

import (
	"context"
	"strings"

	mcp_golang "github.com/metoro-io/mcp-golang"
	"github.com/metoro-io/mcp-golang/transport/stdio"
	"github.com/pkg/errors"

	"github.com/isaacphi/tbprompt/internal/compiler"
	"github.com/isaacphi/tbprompt/internal/document"
	"github.com/isaacphi/tbprompt/internal/domain"
)

type CompileArgs struct {
	Template string `json:"template" jsonschema:"required,description=Prompt template document as JSON"`
	Platform string `json:"platform,omitempty" jsonschema:"description=Target platform (defaults to the server platform)"`
}

type ExportArgs struct {
	Template string `json:"template" jsonschema:"required,description=Prompt template document as JSON"`
}

type DisplayArgs struct {
	Template string `json:"template" jsonschema:"required,description=Prompt template document as JSON"`
	Path     string `json:"path" jsonschema:"required,description=Attribute path as section/component/attribute"`
	Value    string `json:"value,omitempty" jsonschema:"description=Value to resolve instead of the attribute's current value"`
}

// Tool describes one registered tool.
type Tool struct {
	Name        string
	Description string
	Args        any
}

// Server answers tool calls. It holds no document state; every call carries
// its own template.
type Server struct {
	platform string
}

func NewServer(platform string) *Server {
	return &Server{platform: platform}
}

// Tools lists the tools Serve registers.
func (s *Server) Tools() []Tool {
	return []Tool{
		{Name: "compile_prompt", Description: "Compile a prompt template into the final image prompt", Args: CompileArgs{}},
		{Name: "export_template", Description: "Export a prompt template without localized fields or options", Args: ExportArgs{}},
		{Name: "resolve_display", Description: "Resolve the reference text shown for an attribute value", Args: DisplayArgs{}},
	}
}

// Serve registers the tools and answers requests on stdin/stdout until ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	server := mcp_golang.NewServer(stdio.NewStdioServerTransport())
	if err := s.register(server); err != nil {
		return err
	}

	if err := server.Serve(); err != nil {
		return errors.Wrap(err, "failed to start MCP server")
	}

	<-ctx.Done()
	return nil
}

func (s *Server) register(server *mcp_golang.Server) error {
	err := server.RegisterTool("compile_prompt", s.Tools()[0].Description, func(args CompileArgs) (*mcp_golang.ToolResponse, error) {
		return textResponse(s.CompilePrompt(args))
	})
	if err != nil {
		return errors.Wrap(err, "failed to register compile_prompt")
	}

	err = server.RegisterTool("export_template", s.Tools()[1].Description, func(args ExportArgs) (*mcp_golang.ToolResponse, error) {
		return textResponse(s.ExportTemplate(args))
	})
	if err != nil {
		return errors.Wrap(err, "failed to register export_template")
	}

	err = server.RegisterTool("resolve_display", s.Tools()[2].Description, func(args DisplayArgs) (*mcp_golang.ToolResponse, error) {
		return textResponse(s.ResolveDisplay(args))
	})
	if err != nil {
		return errors.Wrap(err, "failed to register resolve_display")
	}
	return nil
}

func textResponse(text string, err error) (*mcp_golang.ToolResponse, error) {
	if err != nil {
		return nil, err
	}
	return mcp_golang.NewToolResponse(mcp_golang.NewTextContent(text)), nil
}

// CompilePrompt parses the template and returns its compiled prompt.
func (s *Server) CompilePrompt(args CompileArgs) (string, error) {
	t, err := document.Parse([]byte(args.Template))
	if err != nil {
		return "", err
	}
	platform := args.Platform
	if platform == "" {
		platform = s.platform
	}
	return compiler.Compile(t, platform), nil
}

// ExportTemplate returns the English-only form of the template.
func (s *Server) ExportTemplate(args ExportArgs) (string, error) {
	out, err := document.ExportJSON([]byte(args.Template))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ResolveDisplay returns the reference text for the attribute at args.Path.
func (s *Server) ResolveDisplay(args DisplayArgs) (string, error) {
	t, err := document.Parse([]byte(args.Template))
	if err != nil {
		return "", err
	}
	path, err := domain.ParsePath(args.Path)
	if err != nil {
		return "", errors.Wrap(err, "invalid path")
	}
	if !path.IsAttribute() {
		return "", errors.Errorf("path %q must name an attribute", args.Path)
	}
	attr, err := document.Lookup(t, path)
	if err != nil {
		return "", err
	}

	current := attr.Value
	if strings.TrimSpace(args.Value) != "" {
		current = domain.Text(args.Value)
	}
	return document.ResolveDisplay(attr, current), nil
}
