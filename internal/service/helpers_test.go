package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/pursuit/internal/domain"
	"github.com/alexanderramin/pursuit/internal/repository"
	"github.com/alexanderramin/pursuit/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = testutil.RefNow

func nowPtr() *time.Time {
	n := testNow
	return &n
}

// setupStore creates a temp pipeline root seeded with ops.
func setupStore(t *testing.T, ops ...*domain.Opportunity) *repository.YAMLOpportunityRepo {
	t.Helper()
	repo := repository.NewYAMLOpportunityRepo(t.TempDir())
	for _, op := range ops {
		require.NoError(t, repo.Create(context.Background(), op))
	}
	return repo
}

func writeRawRecord(t *testing.T, root string, bucket domain.Bucket, name, body string) {
	t.Helper()
	dir := filepath.Join(root, string(bucket))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func fileExists(root string, bucket domain.Bucket, id string) bool {
	_, err := os.Stat(filepath.Join(root, string(bucket), id+".yaml"))
	return err == nil
}
