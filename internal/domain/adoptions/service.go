package adoptions

import (
	"context"

	"github.com/google/uuid"

	"pet-adoption-api/internal/platform/logger"
)

// Media es lo que el service necesita del media store.
type Media interface {
	Exists(name string) bool
	Remove(name string) error
	DefaultName() string
}

type Service struct {
	repo  Repository
	media Media
	log   logger.Logger
}

func NewService(repo Repository, media Media, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:  repo,
		media: media,
		log:   log.With(map[string]any{"component": "adoptions"}),
	}
}

type SubmitInput struct {
	Name          string
	Age           string
	Area          string
	Justification string
	Email         string
	Phone         string
	Type          string

	// Filename es el nombre que dejó el upload; obligatorio en intake.
	Filename string
}

// Submit es el intake con foto: tipo válido + archivo presente y existente.
// Devuelve la forma guardada sin normalizar: recién construida, ya es canónica.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (RawRecord, error) {
	if err := ValidateType(in.Type); err != nil {
		return RawRecord{}, err
	}
	if in.Filename == "" {
		return RawRecord{}, ErrMissingFile
	}
	if !s.media.Exists(in.Filename) {
		return RawRecord{}, ErrFileNotFound
	}

	return s.repo.Create(ctx, Record{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Type:          PetType(in.Type),
		Age:           in.Age,
		Area:          in.Area,
		Justification: in.Justification,
		Email:         in.Email,
		Phone:         in.Phone,
		Filename:      in.Filename,
		Status:        StatusPending,
	})
}

type CreateInput struct {
	Name          string
	Age           string
	Area          string
	Justification string
	Email         string
	Phone         string
	Type          string

	// Filename opcional: vacío => placeholder sin chequear existencia
	// (el default se asume presente en el store).
	Filename string

	// Status opcional: vacío => Pending.
	Status string
}

// CreateFromData es el alta por JSON, sin upload.
func (s *Service) CreateFromData(ctx context.Context, in CreateInput) (RawRecord, error) {
	if err := ValidateType(in.Type); err != nil {
		return RawRecord{}, err
	}
	if err := ValidateFilename(s.media, in.Filename); err != nil {
		return RawRecord{}, err
	}

	filename := in.Filename
	if filename == "" {
		filename = s.media.DefaultName()
	}
	status := Status(in.Status)
	if status == "" {
		status = StatusPending
	}

	return s.repo.Create(ctx, Record{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Type:          PetType(in.Type),
		Age:           in.Age,
		Area:          in.Area,
		Justification: in.Justification,
		Email:         in.Email,
		Phone:         in.Phone,
		Filename:      filename,
		Status:        status,
	})
}

type ApproveInput struct {
	Email  string
	Phone  string
	Status string
}

// Approve toca exactamente email, phone y status. El status llega como
// string libre, igual que en el sistema original (ver DESIGN.md).
func (s *Service) Approve(ctx context.Context, id string, in ApproveInput) (RawRecord, error) {
	return s.repo.Update(ctx, id, Patch{
		Email:  &in.Email,
		Phone:  &in.Phone,
		Status: &in.Status,
	})
}

func (s *Service) ListByStatus(ctx context.Context, status Status) ([]Record, error) {
	raws, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return s.normalizeAll(raws), nil
}

func (s *Service) ListAll(ctx context.Context) ([]Record, error) {
	raws, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.normalizeAll(raws), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	raw, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}
	return Normalize(raw, s.media.DefaultName()), nil
}

// Update aplica una actualización parcial, re-validando tipo y filename
// si vienen. Devuelve la forma guardada sin normalizar.
func (s *Service) Update(ctx context.Context, id string, p Patch) (RawRecord, error) {
	if p.Type != nil {
		if err := ValidateType(*p.Type); err != nil {
			return RawRecord{}, err
		}
	}
	if p.Filename != nil {
		if err := ValidateFilename(s.media, *p.Filename); err != nil {
			return RawRecord{}, err
		}
	}
	return s.repo.Update(ctx, id, p)
}

// Remove borra el registro y después intenta borrar su imagen.
// La limpieza es best-effort: documento y filesystem no comparten
// transacción, así que una falla acá se loguea y se traga.
func (s *Service) Remove(ctx context.Context, id string) error {
	raw, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if raw.Filename != "" {
		if err := s.media.Remove(raw.Filename); err != nil {
			s.log.Warn("image cleanup failed", map[string]any{
				"id":       raw.ID,
				"filename": raw.Filename,
				"err":      err.Error(),
			})
		}
	}
	return nil
}

func (s *Service) normalizeAll(raws []RawRecord) []Record {
	def := s.media.DefaultName()
	out := make([]Record, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw, def))
	}
	return out
}
