package mcp

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driving"
)

// SuggestInput is the input schema for the suggest_templates tool.
type SuggestInput struct {
	Route string `json:"route,omitempty" jsonschema:"trade route such as 'Houston to Rotterdam'; empty lists every template"`
}

// SuggestOutput is the output schema for the suggest_templates tool.
type SuggestOutput struct {
	Route     string   `json:"route"`
	Templates []string `json:"templates"`
}

// TemplateInput is the input schema for the get_template tool.
type TemplateInput struct {
	Name        string `json:"name" jsonschema:"template name as returned by suggest_templates"`
	VesselClass string `json:"vessel_class,omitempty" jsonschema:"Panamax, Aframax, Suezmax, VLCC or ULCC; adjusts capacity, freight and demurrage defaults"`
}

// TemplateOutput is the output schema for the get_template tool.
type TemplateOutput struct {
	Name   string         `json:"name"`
	Kind   string         `json:"kind"`
	Fields []domain.Field `json:"fields"`
}

// GenerateInput is the input schema for the generate_charter tool.
type GenerateInput struct {
	Template    string            `json:"template" jsonschema:"template name"`
	VesselClass string            `json:"vessel_class,omitempty" jsonschema:"vessel class"`
	Route       string            `json:"route,omitempty" jsonschema:"trade route"`
	Terms       map[string]string `json:"terms,omitempty" jsonschema:"field name to value; dates are YYYY-MM-DD and flags yes or no"`
	Clauses     []string          `json:"clauses,omitempty" jsonschema:"clause library titles to append to Additional Clauses"`
	Freeform    string            `json:"freeform,omitempty" jsonschema:"freeform text appended to Additional Clauses"`
	Format      string            `json:"format,omitempty" jsonschema:"markdown (default), listing or docx"`
	Save        bool              `json:"save,omitempty" jsonschema:"append the terms to the charter record log"`
}

// GenerateOutput is the output schema for the generate_charter tool.
// Validation failures are reported in Errors with Valid false.
type GenerateOutput struct {
	Valid         bool              `json:"valid"`
	Errors        map[string]string `json:"errors,omitempty"`
	FileName      string            `json:"file_name,omitempty"`
	MIMEType      string            `json:"mime_type,omitempty"`
	Content       string            `json:"content,omitempty"`
	ContentBase64 string            `json:"content_base64,omitempty"`
	Advisories    []string          `json:"advisories,omitempty"`
	Suggestions   []string          `json:"suggestions,omitempty"`
	Saved         bool              `json:"saved"`
}

// EstimateInput is the input schema for the estimate_rate tool.
type EstimateInput struct {
	DistanceNM  float64 `json:"distance_nm" jsonschema:"voyage distance in nautical miles"`
	VesselClass string  `json:"vessel_class" jsonschema:"vessel class"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest_templates",
		Description: "Suggest tanker charter-party templates for a trade route",
	}, s.handleSuggest)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_template",
		Description: "Show a template's fields and default terms, optionally adjusted for a vessel class",
	}, s.handleGetTemplate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_charter",
		Description: "Merge terms into a template, validate them and render a charter party document",
	}, s.handleGenerate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "estimate_rate",
		Description: "Placeholder freight estimate per ton from distance and vessel class (not a Worldscale tariff)",
	}, s.handleEstimate)
}

// handleSuggest handles the suggest_templates tool invocation.
func (s *Server) handleSuggest(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	var names []string
	if s.ports.Advisor != nil {
		names = s.ports.Advisor.Suggest(input.Route)
	} else {
		names = s.ports.Catalog.ListTemplateNames()
	}
	return nil, SuggestOutput{Route: input.Route, Templates: names}, nil
}

// handleGetTemplate handles the get_template tool invocation.
func (s *Server) handleGetTemplate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TemplateInput,
) (*mcp.CallToolResult, TemplateOutput, error) {
	tpl := s.ports.Charter.Preview(input.Name, input.VesselClass)
	if tpl.IsEmpty() {
		return nil, TemplateOutput{}, errors.New("unknown template: " + input.Name)
	}
	return nil, TemplateOutput{Name: tpl.Name, Kind: string(tpl.Kind), Fields: tpl.Fields}, nil
}

// handleGenerate handles the generate_charter tool invocation.
func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateInput,
) (*mcp.CallToolResult, GenerateOutput, error) {
	format := domain.OutputFormat(strings.ToLower(input.Format))
	if format == "" {
		format = domain.FormatMarkdown
	}

	result, err := s.ports.Charter.Generate(ctx, driving.GenerateRequest{
		TemplateName: input.Template,
		VesselClass:  input.VesselClass,
		Route:        input.Route,
		Edits:        input.Terms,
		Clauses:      input.Clauses,
		Freeform:     input.Freeform,
		Format:       format,
		Save:         input.Save,
	})
	if err != nil {
		if result != nil && len(result.Errors) > 0 {
			return nil, GenerateOutput{
				Valid:       false,
				Errors:      result.Errors,
				Suggestions: result.Suggestions,
			}, nil
		}
		return nil, GenerateOutput{}, err
	}

	out := GenerateOutput{
		Valid:       true,
		FileName:    result.FileName,
		MIMEType:    result.MIMEType,
		Advisories:  result.Advisories,
		Suggestions: result.Suggestions,
		Saved:       result.Saved,
	}
	if strings.HasPrefix(result.MIMEType, "text/") {
		out.Content = string(result.Content)
	} else {
		out.ContentBase64 = base64.StdEncoding.EncodeToString(result.Content)
	}
	return nil, out, nil
}

// handleEstimate handles the estimate_rate tool invocation.
func (s *Server) handleEstimate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EstimateInput,
) (*mcp.CallToolResult, domain.RateEstimate, error) {
	est, err := s.ports.Charter.EstimateRate(ctx, domain.RateQuery{
		DistanceNM:  input.DistanceNM,
		VesselClass: domain.VesselClass(input.VesselClass),
	})
	if err != nil {
		return nil, domain.RateEstimate{}, err
	}
	return nil, est, nil
}
