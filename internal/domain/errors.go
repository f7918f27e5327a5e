package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrInternal     = errors.New("error interno")
)

// ServerErrorMessage es el único mensaje que ve el cliente ante un fallo inesperado.
const ServerErrorMessage = "Oops! An error occurred on our server. Please try again or contact support."

// Error resultado fallido de una operación: Kind es uno de los sentinels de arriba,
// Message es el texto expuesto al cliente y Cause la causa interna (solo para logs).
type Error struct {
	Kind    error
	Message string
	Op      string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Cause)
	}
	return e.Message
}

// Is permite errors.Is(err, domain.ErrNotFound) sobre cualquier *Error.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewValidationError entrada ausente o mal formada (400).
func NewValidationError(msg string) error {
	return &Error{Kind: ErrInvalidInput, Message: msg}
}

// NewNotFoundError entidad referenciada inexistente (404).
func NewNotFoundError(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// NewServerError fallo inesperado de persistencia o cálculo (500). El mensaje es siempre el genérico.
func NewServerError(op string, cause error) error {
	return &Error{Kind: ErrInternal, Message: ServerErrorMessage, Op: op, Cause: cause}
}

// AsError extrae el *Error de una cadena de errores; nil si no hay.
func AsError(err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return nil
}
