package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/db"
	httpapi "github.com/andreasstove999/ecommerce-system/storefront-go/internal/http"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/storage"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/storefront"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/view"
)

func TestStorefrontPostgresIntegration(t *testing.T) {
	if os.Getenv("STOREFRONT_INTEGRATION") != "1" {
		t.Skip("set STOREFRONT_INTEGRATION=1 to run against a postgres container")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	pgC, dsn := startPostgres(ctx, t)
	defer terminateContainer(t, pgC)

	require.NoError(t, db.RunMigrations(dsn, zap.NewNop()))
	// second run is a no-op
	require.NoError(t, db.RunMigrations(dsn, zap.NewNop()))

	pool, err := db.NewPool(ctx, dsn)
	require.NoError(t, err)
	kv := storage.NewPostgres(pool)
	defer kv.Close()

	srv := httptest.NewServer(newRouter(ctx, kv))
	defer srv.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	postJSON(t, client, srv.URL+"/api/cart/items", `{"productId":"nk-002","qty":2}`)
	postJSON(t, client, srv.URL+"/api/cart/items", `{"productId":"pm-001","qty":"1"}`)

	// A fresh session over the same database sees the persisted cart.
	restarted := httptest.NewServer(newRouter(ctx, kv))
	defer restarted.Close()

	resp, err := client.Get(restarted.URL + "/api/cart")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var v view.CartView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	require.Equal(t, 3, v.Count)
	require.Len(t, v.Rows, 2)
	require.Equal(t, "nk-002", v.Rows[0].ID)
	require.Equal(t, "pm-001", v.Rows[1].ID)
	// 2*109990 + 69990 + 4990
	require.Equal(t, "$294.960", v.Total)

	raw, err := kv.Get(ctx, cart.StorageKey)
	require.NoError(t, err)

	var items []cart.Item
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	require.Len(t, items, 2)
}

func newRouter(ctx context.Context, kv storage.KV) http.Handler {
	loader := catalog.NewLoader(nil, 0, nil)
	session := storefront.New(loader, cart.NewStore(kv, nil), nil)
	session.Init(ctx)
	return httpapi.NewRouter(httpapi.NewHandler(session, nil), nil, nil)
}

func postJSON(t *testing.T, client *http.Client, url, body string) {
	t.Helper()

	resp, err := client.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func startPostgres(ctx context.Context, t *testing.T) (testcontainers.Container, string) {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16",
		Env:          map[string]string{"POSTGRES_PASSWORD": "postgres", "POSTGRES_USER": "postgres", "POSTGRES_DB": "storefront"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/storefront?sslmode=disable", host, mappedPort.Port())
	return container, dsn
}

func terminateContainer(t *testing.T, c testcontainers.Container) {
	t.Helper()
	terminateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, c.Terminate(terminateCtx))
}
