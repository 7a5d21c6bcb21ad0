// Package recordfile guarda y carga registros de factura e informes de validación como JSON indentado.
package recordfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/invoice-qc/internal/application/ports"
	"github.com/jhoicas/invoice-qc/internal/domain"
	"github.com/jhoicas/invoice-qc/internal/domain/entity"
	"github.com/jhoicas/invoice-qc/internal/domain/validation"
)

// Verificar en tiempo de compilación que Store implementa RecordRepository.
var _ ports.RecordRepository = (*Store)(nil)

// Store repositorio de registros en archivos JSON locales.
type Store struct{}

// NewStore construye el repositorio.
func NewStore() *Store {
	return &Store{}
}

// SaveRecords escribe los registros como un arreglo JSON, creando el directorio si falta.
func (s *Store) SaveRecords(path string, records []entity.Record) error {
	if records == nil {
		records = []entity.Record{}
	}
	return writeJSON(path, records)
}

// LoadRecords lee un arreglo JSON de registros. Cada elemento debe ser un objeto.
func (s *Store) LoadRecords(path string) ([]entity.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("archivo %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	var records []entity.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%s no es un arreglo JSON de facturas: %v: %w", path, err, domain.ErrInvalidInput)
	}
	for i, r := range records {
		if r == nil {
			return nil, fmt.Errorf("%s: el elemento %d no es un objeto: %w", path, i, domain.ErrInvalidInput)
		}
	}
	return records, nil
}

// SaveReport escribe el informe del lote.
func (s *Store) SaveReport(path string, report validation.BatchValidationReport) error {
	return writeJSON(path, report)
}

func writeJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	return nil
}
