package adoptions

import "context"

// Repository es la colección de documentos de adopción. El store es dueño
// de UpdatedAt (lo setea en cada escritura) y aplica Patch campo a campo,
// con atomicidad por documento delegada en el backend.
type Repository interface {
	Create(ctx context.Context, rec Record) (RawRecord, error)
	GetByID(ctx context.Context, id string) (RawRecord, error)

	// Listados ordenados por UpdatedAt descendente (más nuevo primero).
	ListByStatus(ctx context.Context, status Status) ([]RawRecord, error)
	ListAll(ctx context.Context) ([]RawRecord, error)

	// Update aplica solo los campos no-nil y devuelve el documento
	// resultante. ErrNotFound si el id no resuelve.
	Update(ctx context.Context, id string, p Patch) (RawRecord, error)

	// Delete borra y devuelve el documento borrado (el service necesita
	// su filename para limpiar la imagen).
	Delete(ctx context.Context, id string) (RawRecord, error)
}
