package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoader_DetailFile verifies end-to-end normalization of a detail
// export from disk, including format detection.
func TestLoader_DetailFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "export.csv",
		"Post Date,Description,Amount\n"+
			"2024-03-16,COFFEE SHOP,123.45\n"+
			"2024-03-17,GROCERY STORE,67.89\n")

	l := NewLoader(zaptest.NewLogger(t))
	records, err := l.DetailFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "export.csv", records[0].SourceID)
	assert.Equal(t, "-123.45", records[0].Amount.StringFixed(2))
	assert.Equal(t, 1, records[1].SequenceIndex)
}

// TestLoader_DetailFolder verifies lexical file ordering and that a broken
// file is skipped without failing the batch.
func TestLoader_DetailFolder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_second.csv",
		"Date,Description,Amount\n2024-03-18,SECOND FILE,10.00\n")
	writeFile(t, dir, "a_first.csv",
		"Post Date,Description,Amount\n2024-03-16,FIRST FILE,20.00\n")
	writeFile(t, dir, "broken.csv",
		"Mystery,Columns\n1,2\n")
	writeFile(t, dir, "notes.txt", "not a csv")

	l := NewLoader(zaptest.NewLogger(t))
	records, err := l.DetailFolder(dir)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "a_first.csv", records[0].SourceID)
	assert.Equal(t, "b_second.csv", records[1].SourceID)
}

// TestLoader_DetailFolder_NoValidFiles verifies the all-broken case is an
// error rather than a silent empty batch.
func TestLoader_DetailFolder_NoValidFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.csv", "Mystery,Columns\n1,2\n")

	l := NewLoader(zaptest.NewLogger(t))
	_, err := l.DetailFolder(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid csv files")
}

// TestLoader_AggregatorFromReader verifies aggregator loading from a
// stream, as used when inputs come from the storage bucket.
func TestLoader_AggregatorFromReader(t *testing.T) {
	csv := "Transaction Date,Post Date,Description,Amount,Category,Tags,Account\n" +
		"2024-03-16,2024-03-16,Coffee Shop,-123.45,Dining,work,visa\n"

	l := NewLoader(zaptest.NewLogger(t))
	records, err := l.AggregatorFromReader(strings.NewReader(csv), "aggregator.csv")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "visa", records[0].Account)
}

// TestLoader_EmptyDetailFile verifies an empty file yields no records and
// no error.
func TestLoader_EmptyDetailFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.csv", "")

	l := NewLoader(zaptest.NewLogger(t))
	records, err := l.DetailFile(path)
	require.NoError(t, err)
	assert.Empty(t, records)
}
