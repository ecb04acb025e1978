package settingsx_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.fernwave.dev/settingsx"
	"go.fernwave.dev/settingsx/core/errors"
	"go.fernwave.dev/settingsx/testingx"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestList_SourcesView(t *testing.T) {
	reg := settingsx.NewRegistry()
	reg.Register("acme", fstest.MapFS{
		"acme.appsettings.json": &fstest.MapFile{Data: []byte(`{}`)},
	})

	list := settingsx.NewList(settingsx.Options{Resolver: reg})
	list.AddJSONFile("appsettings.json").
		AddJSONFile("appsettings.Development.json")
	require.NoError(t, list.AddSharedSettings("acme", "Development", true))

	sources := list.Sources()
	require.Len(t, sources, 4)

	assert.Equal(t, settingsx.KindEmbedded, sources[0].Kind)
	assert.Equal(t, "acme", sources[0].OwnerID)
	assert.Equal(t, "acme.appsettings.json", sources[0].ResourceName)
	assert.True(t, sources[0].Optional)

	assert.Equal(t, settingsx.KindFile, sources[1].Kind)
	assert.Equal(t, "appsettings.json", sources[1].Path)

	assert.Equal(t, settingsx.KindEmbedded, sources[2].Kind)
	assert.Equal(t, "acme.appsettings.Development.json", sources[2].ResourceName)

	assert.Equal(t, settingsx.KindFile, sources[3].Kind)
	assert.Equal(t, "appsettings.Development.json", sources[3].Path)
}

func TestList_FindAndMove(t *testing.T) {
	list := settingsx.NewList(settingsx.Options{})
	list.AddEmbedded("a", "a.appsettings.json", true).
		AddEmbedded("b", "b.appsettings.json", true)

	idx, ok := list.FindEmbedded("b", "b.appsettings.json")
	require.True(t, ok)
	require.Equal(t, 1, idx)

	require.NoError(t, list.Move(1, 0))
	idx, ok = list.FindEmbedded("b", "b.appsettings.json")
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	err := list.Move(0, 5)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeOutOfRange))
}

func TestList_BindWithValidation(t *testing.T) {
	reg := settingsx.NewRegistry()
	reg.Register("acme", fstest.MapFS{
		"acme.appsettings.json": &fstest.MapFile{Data: []byte(`{"acme": {"endpoint": ""}}`)},
	})

	list := settingsx.NewList(settingsx.Options{Resolver: reg})
	require.NoError(t, list.AddSharedSettings("acme", "", false))

	type cfg struct {
		Endpoint string `env:"ACME_ENDPOINT" validate:"required"`
	}

	var c cfg
	err := list.Bind(context.Background(), &c, settingsx.WithValidation())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidArgument))
}

func TestList_BindEndToEnd(t *testing.T) {
	reg := settingsx.NewRegistry()
	reg.Register("acme", fstest.MapFS{
		"acme.appsettings.json": &fstest.MapFile{
			Data: []byte(`{"acme": {"endpoint": "https://default", "retries": 3}}`),
		},
	})
	appPath := writeFile(t, "appsettings.json", `{"acme": {"endpoint": "https://prod"}}`)

	logger := testingx.NewMockLogger(t)
	list := settingsx.NewList(settingsx.Options{Logger: logger, Resolver: reg})
	list.AddJSONFile(appPath)
	require.NoError(t, list.AddSharedSettings("acme", "", false))

	type cfg struct {
		Endpoint string `env:"ACME_ENDPOINT" validate:"required,url"`
		Retries  int    `env:"ACME_RETRIES" envDefault:"1"`
	}

	var c cfg
	require.NoError(t, list.Bind(context.Background(), &c, settingsx.WithValidator(settingsx.NewValidator())))

	assert.Equal(t, "https://prod", c.Endpoint)
	assert.Equal(t, 3, c.Retries)
	assert.True(t, logger.HasEntry("INFO", "settings resolved"))
}

func TestList_BindNilTarget(t *testing.T) {
	list := settingsx.NewList(settingsx.Options{})

	err := list.Bind(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidArgument))
}

func TestResourceNameHelpers(t *testing.T) {
	assert.Equal(t, "acme.appsettings.json", settingsx.BaseResourceName("acme"))
	assert.Equal(t, "acme.appsettings.Staging.json", settingsx.EnvResourceName("acme", "Staging"))
}

func TestResolverFunc(t *testing.T) {
	fsys := fstest.MapFS{
		"lib.appsettings.json": &fstest.MapFile{Data: []byte(`{"k": "v"}`)},
	}
	list := settingsx.NewList(settingsx.Options{
		Resolver: settingsx.ResolverFunc(func(ownerID, resourceName string) (io.ReadCloser, error) {
			return fsys.Open(resourceName)
		}),
	})
	list.AddEmbedded("lib", "lib.appsettings.json", false)

	snapshot, err := list.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v", snapshot["k"])
}

func ExampleList_AddSharedSettings() {
	reg := settingsx.NewRegistry()
	reg.Register("acme", fstest.MapFS{
		"acme.appsettings.json": &fstest.MapFile{
			Data: []byte(`{"acme": {"endpoint": "https://default", "timeout": "5s"}}`),
		},
	})

	list := settingsx.NewList(settingsx.Options{Resolver: reg})
	if err := list.AddSharedSettings("acme", "", true); err != nil {
		panic(err)
	}

	snapshot, err := list.Resolve(context.Background())
	if err != nil {
		panic(err)
	}

	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s=%s\n", k, snapshot[k])
	}
	// Output:
	// acme.endpoint=https://default
	// acme.timeout=5s
}
