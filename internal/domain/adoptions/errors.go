package adoptions

import "errors"

// Errores visibles para el caller. Representan input inválido, no fallas
// transitorias; cualquier otro error es falla interna del store.
var (
	ErrInvalidType  = errors.New("invalid pet type")
	ErrMissingFile  = errors.New("image file is required")
	ErrFileNotFound = errors.New("image file not found")
	ErrNotFound     = errors.New("pet not found")
)
