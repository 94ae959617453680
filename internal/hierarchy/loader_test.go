package hierarchy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/micetf/classifieur-numerique/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches and caches remote hierarchy", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte(`{"Remote": {"Robotique": {}}}`))
		}))
		defer srv.Close()

		loader, err := NewLoader(LoaderConfig{URLs: map[Type]string{TypeCPC: srv.URL}}, nil)
		require.NoError(t, err)

		tree, err := loader.Load(ctx, TypeCPC)
		require.NoError(t, err)
		assert.Equal(t, []string{"Remote", "Remote/Robotique"}, FlattenToPaths(tree))

		_, err = loader.Load(ctx, TypeCPC)
		require.NoError(t, err)
		assert.Equal(t, int32(1), hits.Load())

		loader.Invalidate(TypeCPC)
		_, err = loader.Load(ctx, TypeCPC)
		require.NoError(t, err)
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("falls back to defaults on server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		loader, err := NewLoader(LoaderConfig{URLs: map[Type]string{TypePerso: srv.URL}}, nil)
		require.NoError(t, err)

		tree, err := loader.Load(ctx, TypePerso)
		require.NoError(t, err)
		assert.Equal(t, FlattenToPaths(Defaults(TypePerso)), FlattenToPaths(tree))
	})

	t.Run("falls back to defaults on malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		loader, err := NewLoader(LoaderConfig{URLs: map[Type]string{TypeCPC: srv.URL}}, nil)
		require.NoError(t, err)

		tree, err := loader.Load(ctx, TypeCPC)
		require.NoError(t, err)
		assert.Equal(t, FlattenToPaths(Defaults(TypeCPC)), FlattenToPaths(tree))
	})

	t.Run("local file takes precedence", func(t *testing.T) {
		path := t.TempDir() + "/perso.md"
		require.NoError(t, writeFile(path, "Local\n  Dossier\n"))

		loader, err := NewLoader(LoaderConfig{
			URLs:  map[Type]string{TypePerso: "http://127.0.0.1:0/unused"},
			Files: map[Type]string{TypePerso: path},
		}, nil)
		require.NoError(t, err)

		tree, err := loader.Load(ctx, TypePerso)
		require.NoError(t, err)
		assert.Equal(t, []string{"Local", "Local/Dossier"}, FlattenToPaths(tree))
	})

	t.Run("unknown type", func(t *testing.T) {
		loader, err := NewLoader(LoaderConfig{}, nil)
		require.NoError(t, err)

		_, err = loader.Load(ctx, Type("pro"))
		require.ErrorIs(t, err, common.ErrUnknownHierarchy)
	})
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
