package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/charta/internal/core/domain"
)

func TestBuiltinTemplateStore_NamesInRegistrationOrder(t *testing.T) {
	store := NewBuiltinTemplateStore()

	names, err := store.Names(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Shell Time 4",
		"Asbatankvoy 2025",
		"Shellvoy 6",
		"BPVOY4",
		"ExxonMobil Voy2000",
		"INTERTANKVOY 76",
	}, names)
}

func TestTemplateStore_Get(t *testing.T) {
	store := NewBuiltinTemplateStore()
	ctx := context.Background()

	tpl, err := store.Get(ctx, "Shellvoy 6")
	require.NoError(t, err)
	assert.Equal(t, "Shellvoy 6", tpl.Name)
	assert.True(t, tpl.Has(domain.FieldLoadingPort))

	_, err = store.Get(ctx, "Gencon")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTemplateStore_Get_ReturnsCopy(t *testing.T) {
	store := NewBuiltinTemplateStore()
	ctx := context.Background()

	tpl, err := store.Get(ctx, "BPVOY4")
	require.NoError(t, err)
	tpl.Fields[0].Default = "mutated"

	again, err := store.Get(ctx, "BPVOY4")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Fields[0].Default)
}

func TestTemplateStore_Save_ReplaceKeepsPosition(t *testing.T) {
	store := NewTemplateStore(
		domain.Template{Name: "A"},
		domain.Template{Name: "B"},
	)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Template{Name: "A", Kind: domain.ContractTime}))
	require.NoError(t, store.Save(ctx, domain.Template{Name: "C"}))

	names, _ := store.Names(ctx)
	assert.Equal(t, []string{"A", "B", "C"}, names)

	a, err := store.Get(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, domain.ContractTime, a.Kind)
}

func TestTemplateStore_Save_RequiresName(t *testing.T) {
	store := NewTemplateStore()

	err := store.Save(context.Background(), domain.Template{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
