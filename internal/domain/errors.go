package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrNoDocuments    = errors.New("no hay documentos para procesar")
	ErrInvalidRecords = errors.New("el lote contiene facturas inválidas")
	ErrUnauthorized   = errors.New("no autorizado")
)
