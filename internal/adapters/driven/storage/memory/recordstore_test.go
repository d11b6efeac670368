package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/charta/internal/core/domain"
)

func TestRecordStore_AppendAndList(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	first := domain.CharterRecord{Template: "Shellvoy 6", VesselClass: "VLCC", Terms: map[string]string{"Owners": "Acme"}}
	second := domain.CharterRecord{Template: "BPVOY4", Terms: map[string]string{"Owners": "Other"}}

	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))

	recs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, first, recs[0])
	assert.Equal(t, second, recs[1])
}

func TestRecordStore_List_Empty(t *testing.T) {
	recs, err := NewRecordStore().List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecordStore_IsolatesCallers(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	terms := map[string]string{"Owners": "Acme"}
	require.NoError(t, store.Append(ctx, domain.CharterRecord{Template: "X", Terms: terms}))
	terms["Owners"] = "changed"

	recs, _ := store.List(ctx)
	recs[0].Terms["Owners"] = "changed again"

	again, _ := store.List(ctx)
	assert.Equal(t, "Acme", again[0].Terms["Owners"])
}

func TestRecordStore_ConcurrentAppend(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Append(ctx, domain.CharterRecord{Template: "T", Terms: map[string]string{}})
		}()
	}
	wg.Wait()

	recs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, recs, 40)
}
