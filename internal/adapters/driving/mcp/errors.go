// Package mcp provides an MCP (Model Context Protocol) server adapter for charta.
// It lets AI assistants suggest charter-party templates, generate charters
// and read the template catalog and record log.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")

// ErrMissingCharterService is returned when the charter service is not provided.
var ErrMissingCharterService = errors.New("mcp: charter service is required")
