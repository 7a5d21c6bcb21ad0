package document_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-qc/internal/domain"
	"github.com/jhoicas/invoice-qc/internal/infrastructure/document"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestReadDir_OnlyTextFilesSorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", []byte("segundo"))
	writeFile(t, dir, "a.TXT", []byte("primero"))
	writeFile(t, dir, "scan.pdf", []byte("%PDF-1.4"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	docs, err := document.NewReader(0).ReadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "primero", docs[0].Text)
	assert.Equal(t, "b", docs[1].ID)
}

func TestReadDir_Missing(t *testing.T) {
	_, err := document.NewReader(0).ReadDir(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReadFile_TooLarge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "big.txt", make([]byte, 64))

	_, err := document.NewReader(16).ReadFile(filepath.Join(dir, "big.txt"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecode(t *testing.T) {
	// "Total €" en Windows-1252: el euro es 0x80.
	text, err := document.Decode([]byte{'T', 'o', 't', 'a', 'l', ' ', 0x80})
	require.NoError(t, err)
	assert.Equal(t, "Total €", text)

	text, err = document.Decode([]byte("\uFEFFInvoice"))
	require.NoError(t, err)
	assert.Equal(t, "Invoice", text)

	// UTF-16LE con BOM.
	text, err = document.Decode([]byte{0xFF, 0xFE, 'O', 0x00, 'K', 0x00})
	require.NoError(t, err)
	assert.Equal(t, "OK", text)
}
