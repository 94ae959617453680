// Package mcp exposes the classifier as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/micetf/classifieur-numerique/internal/command"
	"github.com/micetf/classifieur-numerique/internal/document"
	"github.com/micetf/classifieur-numerique/internal/hierarchy"
	"github.com/micetf/classifieur-numerique/internal/pattern"
	"github.com/micetf/classifieur-numerique/internal/service"
)

// Options configures the tool server.
type Options struct {
	Name        string
	Version     string
	DefaultType hierarchy.Type
	APIKey      string
	UseAI       bool
}

// Server wires the classification services to an MCP server.
type Server struct {
	classifier service.Classifier
	loader     service.HierarchyLoader
	extractor  *document.Extractor
	mcpServer  *server.MCPServer
	now        func() time.Time
	opts       Options
}

// NewServer creates the server and registers its tools.
func NewServer(classifier service.Classifier, loader service.HierarchyLoader, extractor *document.Extractor, opts Options) (*Server, error) {
	if classifier == nil {
		return nil, fmt.Errorf("classifier cannot be nil")
	}
	if loader == nil {
		return nil, fmt.Errorf("loader cannot be nil")
	}
	if extractor == nil {
		extractor = document.NewExtractor(document.DefaultMaxSize)
	}
	if opts.Name == "" {
		opts.Name = "classifieur-numerique"
	}
	if opts.DefaultType == "" {
		opts.DefaultType = hierarchy.TypeCPC
	}

	s := &Server{
		classifier: classifier,
		loader:     loader,
		extractor:  extractor,
		now:        time.Now,
		opts:       opts,
		mcpServer: server.NewMCPServer(
			opts.Name,
			opts.Version,
			server.WithToolCapabilities(false),
			server.WithInstructions("Classe les documents pédagogiques dans l'arborescence CPC ou personnelle et génère la commande de déplacement."),
		),
	}

	s.registerTools()
	return s, nil
}

func (s *Server) registerTools() {
	typeOption := mcp.WithString("type",
		mcp.Description("Arborescence cible: cpc ou perso"),
		mcp.Enum(string(hierarchy.TypeCPC), string(hierarchy.TypePerso)),
	)
	refreshOption := mcp.WithBoolean("refresh",
		mcp.Description("Reload the hierarchy instead of using the cached copy"),
	)

	s.mcpServer.AddTool(mcp.NewTool(
		"classify_document",
		mcp.WithDescription("Suggest up to three folders for a document, from its text or its file path"),
		mcp.WithString("content",
			mcp.Description("Text or description of the document"),
		),
		mcp.WithString("path",
			mcp.Description("Path of a .txt, .md, .csv, .html or .pdf file to read instead of content"),
		),
		typeOption,
		refreshOption,
		mcp.WithBoolean("use_ai",
			mcp.Description("Ask the configured language model before falling back to keyword rules"),
		),
	), s.handleClassifyDocument)

	s.mcpServer.AddTool(mcp.NewTool(
		"list_paths",
		mcp.WithDescription("List the folder paths of a hierarchy, optionally filtered"),
		typeOption,
		refreshOption,
		mcp.WithString("search",
			mcp.Description("Case-insensitive filter applied to the paths"),
		),
	), s.handleListPaths)

	s.mcpServer.AddTool(mcp.NewTool(
		"generate_command",
		mcp.WithDescription("Generate and validate the shell command that files a document"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Destination folder path"),
		),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("Current file name"),
		),
		mcp.WithString("target",
			mcp.Description("New file name; defaults to DATE_name_v1.ext"),
		),
	), s.handleGenerateCommand)

	s.mcpServer.AddTool(mcp.NewTool(
		"detect_rgpd",
		mcp.WithDescription("List personal-data terms found in a text"),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Text to scan"),
		),
	), s.handleDetectRGPD)
}

// Run serves the tools over stdio until ctx is canceled or in is closed.
func (s *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	slog.Info("Starting MCP server", "name", s.opts.Name, "version", s.opts.Version)

	if err := server.NewStdioServer(s.mcpServer).Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

func (s *Server) handleClassifyDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content := request.GetString("content", "")
	if path := request.GetString("path", ""); path != "" {
		doc, err := s.extractor.Extract(path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		content = doc.Text()
	}
	if strings.TrimSpace(content) == "" {
		return mcp.NewToolResultError("content or path is required"), nil
	}

	tree, kind, err := s.tree(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	useAI := request.GetBool("use_ai", s.opts.UseAI)
	result := s.classifier.ClassifyContent(ctx, content, tree, useAI, s.opts.APIKey)

	slog.Debug("Classified document over MCP",
		"type", kind,
		"suggestions", len(result.Suggestions),
		"ai", result.AIGenerated)

	return jsonResult(result)
}

func (s *Server) handleListPaths(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tree, _, err := s.tree(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	paths := hierarchy.FlattenToPaths(tree)
	if term := request.GetString("search", ""); term != "" {
		paths = hierarchy.Search(paths, term)
	}
	if len(paths) == 0 {
		return mcp.NewToolResultText("No matching folder"), nil
	}

	return mcp.NewToolResultText(strings.Join(paths, "\n")), nil
}

func (s *Server) handleGenerateCommand(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	source, err := request.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	generated := command.GenerateAndValidate(path, source, request.GetString("target", ""), s.now())
	return jsonResult(generated)
}

func (s *Server) handleDetectRGPD(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string][]string{"issues": pattern.DetectRGPD(content)})
}

func (s *Server) tree(ctx context.Context, request mcp.CallToolRequest) (*hierarchy.Branch, hierarchy.Type, error) {
	kind := s.opts.DefaultType
	if raw := request.GetString("type", ""); raw != "" {
		parsed, err := hierarchy.ParseType(raw)
		if err != nil {
			return nil, "", err
		}
		kind = parsed
	}

	if request.GetBool("refresh", false) {
		s.loader.Invalidate(kind)
	}

	tree, err := s.loader.Load(ctx, kind)
	if err != nil {
		return nil, "", err
	}
	return tree, kind, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
