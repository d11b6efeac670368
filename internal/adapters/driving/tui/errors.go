package tui

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("tui: catalog service is required")

// ErrMissingCharterService is returned when the charter service is not provided.
var ErrMissingCharterService = errors.New("tui: charter service is required")

// ErrInvalidPorts is returned when the ports aggregate itself is missing.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
