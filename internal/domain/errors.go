package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
)

// DataStoreError falla de lectura/escritura contra el almacén de datos (Supabase).
// Op identifica la operación ("listar vendas", "listar estoque", ...).
type DataStoreError struct {
	Op  string
	Err error
}

// NewDataStoreError envuelve err; devuelve nil si err es nil.
func NewDataStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DataStoreError{Op: op, Err: err}
}

func (e *DataStoreError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataStoreError) Unwrap() error { return e.Err }

// Cause devuelve el mensaje de la causa (campo "details" de la API).
func (e *DataStoreError) Cause() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Err.Error()
}
