package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/invoice-qc/internal/application/ports"
	"github.com/jhoicas/invoice-qc/internal/domain"
	"github.com/jhoicas/invoice-qc/internal/domain/entity"
)

// Extension extensión de los documentos de texto aceptados.
const Extension = ".txt"

var (
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// Verificar en tiempo de compilación que Reader implementa DocumentReader.
var _ ports.DocumentReader = (*Reader)(nil)

// Reader lee documentos de texto plano desde disco.
type Reader struct {
	maxBytes int64
}

// NewReader crea un lector que rechaza archivos mayores que maxBytes (<= 0 sin límite).
func NewReader(maxBytes int64) *Reader {
	return &Reader{maxBytes: maxBytes}
}

// ReadDir lee todos los *.txt de dir en orden alfabético. No recorre subdirectorios.
func (r *Reader) ReadDir(ctx context.Context, dir string) ([]entity.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("directorio %s: %w", dir, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("leer directorio %s: %w", dir, err)
	}

	docs := make([]entity.Document, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), Extension) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := r.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// ReadFile lee un documento. El id es el nombre del archivo sin extensión.
func (r *Reader) ReadFile(path string) (entity.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entity.Document{}, fmt.Errorf("documento %s: %w", path, domain.ErrNotFound)
		}
		return entity.Document{}, fmt.Errorf("documento %s: %w", path, err)
	}
	if r.maxBytes > 0 && info.Size() > r.maxBytes {
		return entity.Document{}, fmt.Errorf("documento %s supera %d bytes: %w", path, r.maxBytes, domain.ErrInvalidInput)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return entity.Document{}, fmt.Errorf("leer documento %s: %w", path, err)
	}
	text, err := Decode(raw)
	if err != nil {
		return entity.Document{}, fmt.Errorf("decodificar documento %s: %w", path, err)
	}

	name := filepath.Base(path)
	return entity.Document{
		ID:   strings.TrimSuffix(name, filepath.Ext(name)),
		Text: text,
	}, nil
}

// Decode convierte bytes de un documento a texto UTF-8: respeta un BOM UTF-8/UTF-16 y,
// si los bytes no son UTF-8 válido, los interpreta como Windows-1252.
func Decode(raw []byte) (string, error) {
	if bytes.HasPrefix(raw, utf16LEBOM) || bytes.HasPrefix(raw, utf16BEBOM) {
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	if utf8.Valid(raw) {
		return strings.TrimPrefix(string(raw), "\uFEFF"), nil
	}
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
