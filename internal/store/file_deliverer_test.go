package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spreadsheet(content string) models.ConversionResult {
	return models.ConversionResult{
		Content:     []byte(content),
		FileName:    models.DefaultDownloadName,
		ContentType: models.SpreadsheetContentType,
	}
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestFileDeliverer_Deliver(t *testing.T) {
	dir := t.TempDir()
	d := NewFileDeliverer(dir, logger.Nop())

	path, err := d.Deliver(context.Background(), spreadsheet("xlsx-bytes"))
	require.NoError(t, err)

	assert.Equal(t, models.DefaultDownloadName, filepath.Base(path))
	assert.True(t, filepath.IsAbs(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "xlsx-bytes", string(got))

	assert.Equal(t, []string{models.DefaultDownloadName}, dirEntries(t, dir), "temporary file must not remain")
}

func TestFileDeliverer_DoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	d := NewFileDeliverer(dir, logger.Nop())
	ctx := context.Background()

	first, err := d.Deliver(ctx, spreadsheet("first"))
	require.NoError(t, err)
	second, err := d.Deliver(ctx, spreadsheet("second"))
	require.NoError(t, err)
	third, err := d.Deliver(ctx, spreadsheet("third"))
	require.NoError(t, err)

	assert.Equal(t, "事業年度終了届出書.xlsx", filepath.Base(first))
	assert.Equal(t, "事業年度終了届出書 (1).xlsx", filepath.Base(second))
	assert.Equal(t, "事業年度終了届出書 (2).xlsx", filepath.Base(third))

	got, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "first", string(got))
}

func TestFileDeliverer_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "downloads")
	d := NewFileDeliverer(dir, logger.Nop())

	path, err := d.Deliver(context.Background(), spreadsheet("x"))
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
}

func TestFileDeliverer_EmptyContent(t *testing.T) {
	dir := t.TempDir()
	d := NewFileDeliverer(dir, logger.Nop())

	path, err := d.Deliver(context.Background(), spreadsheet(""))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestFileDeliverer_CancelledContextLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	d := NewFileDeliverer(dir, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Deliver(ctx, spreadsheet("x"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, dirEntries(t, dir))
}

func TestFileDeliverer_ConcurrentDeliveriesGetDistinctNames(t *testing.T) {
	dir := t.TempDir()
	d := NewFileDeliverer(dir, logger.Nop())

	const n = 20
	paths := make([]string, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			paths[i], errs[i] = d.Deliver(context.Background(), spreadsheet(fmt.Sprintf("copy-%d", i)))
		}()
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.False(t, seen[paths[i]], "path %s delivered twice", paths[i])
		seen[paths[i]] = true

		got, err := os.ReadFile(paths[i])
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("copy-%d", i), string(got))
	}
	assert.Len(t, dirEntries(t, dir), n)
}

func TestFileDeliverer_ReservePathSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	d := &fileDeliverer{dir: dir, logger: logger.Nop()}

	existing := filepath.Join(dir, models.DefaultDownloadName)
	require.NoError(t, os.WriteFile(existing, []byte("keep"), 0o644))

	path, err := d.reservePath(models.DefaultDownloadName)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "事業年度終了届出書 (1).xlsx"), path)

	got, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(got))

	next, err := d.reservePath(models.DefaultDownloadName)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "事業年度終了届出書 (2).xlsx"), next, "a reserved name is taken")
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: models.DefaultDownloadName},
		{in: "  ", want: models.DefaultDownloadName},
		{in: ".", want: models.DefaultDownloadName},
		{in: "..", want: models.DefaultDownloadName},
		{in: "../../etc/passwd", want: "passwd"},
		{in: "out.xlsx", want: "out.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFileName(tt.in))
		})
	}
}
