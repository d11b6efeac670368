package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/charta/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for charta resources.
	uriScheme = "charta://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "templates",
		Name:        "templates",
		Description: "Names of all charter-party templates in the catalog",
		MIMEType:    "application/json",
	}, s.handleTemplatesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "templates/{name}",
		Name:        "template",
		Description: "Fields and default terms of one template",
		MIMEType:    "application/json",
	}, s.handleTemplateResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "clauses",
		Name:        "clauses",
		Description: "The optional clause library",
		MIMEType:    "application/json",
	}, s.handleClausesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "records",
		Name:        "records",
		Description: "Saved charter records in append order",
		MIMEType:    "application/json",
	}, s.handleRecordsResource)
}

// handleTemplatesResource returns the template names.
func (s *Server) handleTemplatesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.ports.Catalog.ListTemplateNames())
}

// handleTemplateResource returns one template.
func (s *Server) handleTemplateResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractTemplateName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	tpl := s.ports.Catalog.GetTemplate(name)
	if tpl.IsEmpty() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, tpl)
}

// handleClausesResource returns the clause library.
func (s *Server) handleClausesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, domain.ClauseLibrary())
}

// handleRecordsResource returns the saved records.
func (s *Server) handleRecordsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	recs, err := s.ports.Charter.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	if recs == nil {
		recs = []domain.CharterRecord{}
	}
	return jsonResource(req.Params.URI, recs)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractTemplateName extracts the name from a URI like
// charta://templates/{name}. Names are path-escaped in URIs.
func extractTemplateName(uri string) string {
	const prefix = uriScheme + "templates/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	name, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return name
}
