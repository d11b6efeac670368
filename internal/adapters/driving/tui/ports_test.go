package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/charta/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/charta/internal/core/services"
)

func newTestPorts() *Ports {
	catalog := services.NewCatalog(memory.NewBuiltinTemplateStore())
	advisor := services.NewRouteAdvisor(catalog)
	charter := services.NewCharterService(catalog, advisor, memory.NewRecordStore(), nil)
	return NewPorts(catalog, advisor, charter)
}

func TestNewPorts(t *testing.T) {
	ports := newTestPorts()

	require.NotNil(t, ports)
	assert.NotNil(t, ports.Catalog)
	assert.NotNil(t, ports.Advisor)
	assert.NotNil(t, ports.Charter)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate(t *testing.T) {
	full := newTestPorts()

	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{"nil ports", nil, ErrInvalidPorts},
		{"missing catalog", &Ports{Charter: full.Charter}, ErrMissingCatalogService},
		{"missing charter", &Ports{Catalog: full.Catalog}, ErrMissingCharterService},
		{"advisor optional", &Ports{Catalog: full.Catalog, Charter: full.Charter}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
