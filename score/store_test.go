package score

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []Entry{
	{Score: 120, Timestamp: "2026-01-01 10:00:00"},
	{Score: 900, Timestamp: "2026-01-02 10:00:00"},
	{Score: 450, Timestamp: "2026-01-03 10:00:00"},
}

// storeContract runs the behavior every backend must share
func storeContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Save(ctx, sample))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{900, 450, 120}, scores(got))
	assert.Equal(t, "2026-01-02 10:00:00", got[0].Timestamp)

	// Repeated saves never grow past five or lose order
	lb := NewLeaderboard(got)
	for i := 0; i < 12; i++ {
		lb.Insert(100*i, "t")
		require.NoError(t, s.Save(ctx, lb.Entries()))
		got, err = s.Load(ctx)
		require.NoError(t, err)
		assertSortedCapped(t, got)
	}

	// Oversized input is trimmed on save
	require.NoError(t, s.Save(ctx, []Entry{{Score: 1}, {Score: 2}, {Score: 3}, {Score: 4}, {Score: 5}, {Score: 6}}))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 5, 4, 3, 2}, scores(got))

	require.NoError(t, s.Save(ctx, nil))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	storeContract(t, s)
	assert.Positive(t, s.Saves())
}

func TestMemoryStoreErrors(t *testing.T) {
	s := NewMemoryStore()
	s.LoadErr = errors.New("boom")
	s.SaveErr = errors.New("full")
	_, err := s.Load(context.Background())
	assert.Error(t, err)
	assert.Error(t, s.Save(context.Background(), sample))
	assert.Equal(t, 1, s.Saves())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.yaml")
	storeContract(t, NewFileStore(path))
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scores: [oops"), 0644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "scores.yaml"))
	require.NoError(t, s.Save(context.Background(), sample))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "scores.yaml", files[0].Name())
}

func TestSQLStore(t *testing.T) {
	s, err := OpenSQLStore(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	storeContract(t, s)
}

func TestSQLStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	s, err := OpenSQLStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), sample))
	require.NoError(t, s.Close())

	s, err = OpenSQLStore(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{900, 450, 120}, scores(got))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory", Config{Backend: "memory"}, false},
		{"file", Config{Backend: "file", Path: filepath.Join(dir, "s.yaml")}, false},
		{"sqlite upper", Config{Backend: "SQLite", Path: filepath.Join(dir, "s.db")}, false},
		{"file no path", Config{Backend: "file"}, true},
		{"sqlite no path", Config{Backend: "sqlite"}, true},
		{"unknown", Config{Backend: "redis"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, Close(s))
		})
	}
}

func TestValidBackend(t *testing.T) {
	assert.True(t, ValidBackend("file"))
	assert.True(t, ValidBackend("MEMORY"))
	assert.False(t, ValidBackend("postgres"))
}
