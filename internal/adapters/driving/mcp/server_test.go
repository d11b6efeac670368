package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/charta/internal/adapters/driven/serializer/docx"
	"github.com/custodia-labs/charta/internal/adapters/driven/serializer/markdown"
	"github.com/custodia-labs/charta/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/charta/internal/core/ports/driven"
	"github.com/custodia-labs/charta/internal/core/services"
)

// newTestPorts wires real services over in-memory stores.
func newTestPorts(t *testing.T) *Ports {
	t.Helper()

	catalog, err := services.LoadCatalog(context.Background(), memory.NewBuiltinTemplateStore())
	require.NoError(t, err)
	advisor := services.NewRouteAdvisor(catalog)
	charter := services.NewCharterService(catalog, advisor, memory.NewRecordStore(),
		[]driven.DocumentSerializer{docx.New(), markdown.New(), markdown.NewListing()},
		services.WithRateEstimator(services.NewLinearRateEstimator(0)),
	)
	return &Ports{Catalog: catalog, Advisor: advisor, Charter: charter}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	server, err := NewServer(newTestPorts(t))
	require.NoError(t, err)
	return server
}

func TestNewServer(t *testing.T) {
	t.Run("missing catalog returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingCatalogService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(newTestPorts(t))
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil ports", func(t *testing.T) {
		var p *Ports
		assert.ErrorIs(t, p.Validate(), ErrMissingCatalogService)
	})

	t.Run("missing charter", func(t *testing.T) {
		p := newTestPorts(t)
		p.Charter = nil
		assert.ErrorIs(t, p.Validate(), ErrMissingCharterService)
	})

	t.Run("advisor is optional", func(t *testing.T) {
		p := newTestPorts(t)
		p.Advisor = nil
		assert.NoError(t, p.Validate())
	})
}
