package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/charta/internal/adapters/driving/cli"
	"github.com/custodia-labs/charta/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))
}

func TestBootstrap_Ephemeral(t *testing.T) {
	svc, done, err := bootstrap(context.Background(), cli.Options{Ephemeral: true})
	require.NoError(t, err)
	defer done()

	assert.Empty(t, svc.ConfigPath)
	assert.Len(t, svc.Catalog.ListTemplateNames(), len(domain.BuiltinTemplates()))
	assert.Equal(t, domain.StorageFile, svc.Settings.Get().StorageBackend)

	recs, err := svc.Charter.Records(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestBootstrap_SQLitePersistsRecords(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	writeConfig(t, configDir, "[storage]\nbackend = \"sqlite\"\ndir = \""+filepath.ToSlash(dataDir)+"\"\n")

	svc, done, err := bootstrap(context.Background(), cli.Options{ConfigDir: configDir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configDir, "config.toml"), svc.ConfigPath)
	require.NoError(t, svc.Charter.Save(context.Background(), domain.CharterRecord{
		Template: "BPVOY4",
		Terms:    map[string]string{domain.FieldVesselName: "MT Aurora"},
	}))
	done()

	svc, done, err = bootstrap(context.Background(), cli.Options{ConfigDir: configDir})
	require.NoError(t, err)
	defer done()

	recs, err := svc.Charter.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "MT Aurora", recs[0].Terms[domain.FieldVesselName])
	assert.Len(t, svc.Catalog.ListTemplateNames(), len(domain.BuiltinTemplates()))
}

func TestBootstrap_FileBackendWithCatalog(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	catalogPath := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`templates:
  - name: Gencon 1994
    kind: voyage
    fields:
      - name: Owners
        kind: scalar
`), 0o600))
	writeConfig(t, configDir, "[storage]\nbackend = \"file\"\ndir = \""+filepath.ToSlash(dataDir)+"\"\n\n"+
		"[catalog]\nfile = \""+filepath.ToSlash(catalogPath)+"\"\n")

	svc, done, err := bootstrap(context.Background(), cli.Options{ConfigDir: configDir})
	require.NoError(t, err)
	defer done()

	assert.Equal(t, []string{"Gencon 1994"}, svc.Catalog.ListTemplateNames())
	require.NotNil(t, svc.Templates)
}

func TestBootstrap_FileBackendKeepsImportedTemplates(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	writeConfig(t, configDir, "[storage]\nbackend = \"file\"\ndir = \""+filepath.ToSlash(dataDir)+"\"\n")

	svc, done, err := bootstrap(context.Background(), cli.Options{ConfigDir: configDir})
	require.NoError(t, err)
	assert.Len(t, svc.Catalog.ListTemplateNames(), len(domain.BuiltinTemplates()))
	require.NotNil(t, svc.Templates)
	require.NoError(t, svc.Templates.Save(context.Background(), domain.Template{
		Name: "Gencon 1994",
		Kind: domain.ContractVoyage,
	}))
	done()

	assert.FileExists(t, filepath.Join(dataDir, "templates.yaml"))

	svc, done, err = bootstrap(context.Background(), cli.Options{ConfigDir: configDir})
	require.NoError(t, err)
	defer done()

	names := svc.Catalog.ListTemplateNames()
	assert.Len(t, names, len(domain.BuiltinTemplates())+1)
	assert.Contains(t, names, "Gencon 1994")
}

func TestBootstrap_BadCatalog(t *testing.T) {
	configDir := t.TempDir()
	catalogPath := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte("templates: [unclosed"), 0o600))
	writeConfig(t, configDir, "[storage]\ndir = \""+filepath.ToSlash(t.TempDir())+"\"\n\n"+
		"[catalog]\nfile = \""+filepath.ToSlash(catalogPath)+"\"\n")

	_, done, err := bootstrap(context.Background(), cli.Options{ConfigDir: configDir})

	require.Error(t, err)
	assert.Nil(t, done)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
