package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DevSymphony/regexify/internal/intent"
	"github.com/DevSymphony/regexify/internal/ui"
	"github.com/DevSymphony/regexify/pkg/schema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// errEmptyRequest is returned by detect_intent for blank requests.
var errEmptyRequest = errors.New("request must not be empty")

// Server is a MCP (Model Context Protocol) server.
// It exposes the intent catalog as tools.
type Server struct {
	catalog intent.Catalog
	version string
	log     *ui.Logger
}

// NewServer creates a new MCP server instance.
func NewServer(catalog intent.Catalog, version string, log *ui.Logger) *Server {
	return &Server{
		catalog: catalog,
		version: version,
		log:     log,
	}
}

// DetectIntentInput represents the input schema for the detect_intent tool.
type DetectIntentInput struct {
	Request string `json:"request" jsonschema:"Plain-English description of the format to match. Examples: match an email, validate date MM/DD/YYYY, us phone number"`
}

// ListIntentsInput represents the input schema for the list_intents tool.
type ListIntentsInput struct {
	Query string `json:"query,omitempty" jsonschema:"Fuzzy filter on intent names (optional). Leave empty to list all intents in priority order"`
}

// Run validates the catalog and serves MCP requests on transport until
// ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context, transport sdkmcp.Transport) error {
	if err := s.catalog.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return s.newSDKServer().Run(ctx, transport)
}

// newSDKServer registers the tools on a go-sdk server.
func (s *Server) newSDKServer() *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "regexify",
		Version: s.version,
	}, nil)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "detect_intent",
		Description: "Resolve a plain-English description of a data format to a pre-written regular expression. Supported: " + s.catalog.SupportedHint() + ".",
	}, s.handleDetectIntent)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_intents",
		Description: "List the supported intents with their patterns and notes, in match priority order.",
	}, s.handleListIntents)

	return server
}

func (s *Server) handleDetectIntent(_ context.Context, _ *sdkmcp.CallToolRequest, input DetectIntentInput) (*sdkmcp.CallToolResult, schema.Result, error) {
	request := strings.TrimSpace(input.Request)
	if request == "" {
		return nil, schema.Result{}, errEmptyRequest
	}

	rule, err := s.catalog.Resolve(request)
	if err != nil {
		s.log.Debugf("detect_intent: no match for %q", request)
		return nil, schema.Result{}, err
	}

	s.log.Debugf("detect_intent: %q -> %s", request, rule.Intent)
	return nil, rule.Result(), nil
}

func (s *Server) handleListIntents(_ context.Context, _ *sdkmcp.CallToolRequest, input ListIntentsInput) (*sdkmcp.CallToolResult, schema.IntentList, error) {
	rules := intent.Catalog(s.catalog.Search(strings.TrimSpace(input.Query)))
	return nil, schema.IntentList{Intents: rules.Results()}, nil
}
