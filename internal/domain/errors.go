package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrUnknownCollection = errors.New("colección desconocida")
	ErrNoSession         = errors.New("sesión no iniciada")
)

// RemoteReadError falla de lectura (list) contra el store remoto.
// Se absorbe en el borde del Entity Store: se registra en el log y la colección queda vacía.
type RemoteReadError struct {
	Collection string
	Err        error
}

func (e *RemoteReadError) Error() string {
	return fmt.Sprintf("lectura remota de %s: %v", e.Collection, e.Err)
}

func (e *RemoteReadError) Unwrap() error { return e.Err }

// RemoteWriteError falla de escritura (insert, update, delete) contra el store remoto.
// Se devuelve al llamador, que decide el mensaje al usuario.
type RemoteWriteError struct {
	Collection string
	Op         string // insert, update, delete
	Err        error
}

func (e *RemoteWriteError) Error() string {
	return fmt.Sprintf("escritura remota (%s) en %s: %v", e.Op, e.Collection, e.Err)
}

func (e *RemoteWriteError) Unwrap() error { return e.Err }

// IsRemoteWrite indica si err (o alguno de sus envueltos) es un RemoteWriteError.
func IsRemoteWrite(err error) bool {
	var we *RemoteWriteError
	return errors.As(err, &we)
}
