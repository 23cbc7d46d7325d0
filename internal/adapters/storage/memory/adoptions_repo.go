package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-adoption-api/internal/domain/adoptions"
)

var ErrNotFound = adoptions.ErrNotFound

type adoptionsRepo struct {
	mu   sync.RWMutex
	byID map[string]adoptions.RawRecord
	now  func() time.Time
}

func NewAdoptionsRepo() adoptions.Repository {
	return &adoptionsRepo{
		byID: make(map[string]adoptions.RawRecord),
		now:  time.Now,
	}
}

func (r *adoptionsRepo) Create(ctx context.Context, rec adoptions.Record) (adoptions.RawRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return adoptions.RawRecord{}, errors.New("record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return adoptions.RawRecord{}, errors.New("record already exists")
	}

	raw := adoptions.RawRecord{
		ID:            rec.ID,
		Name:          rec.Name,
		Type:          rec.Type,
		Age:           rec.Age,
		Area:          rec.Area,
		Justification: rec.Justification,
		Email:         rec.Email,
		Phone:         rec.Phone,
		Filename:      rec.Filename,
		Status:        rec.Status,
		UpdatedAt:     r.now(),
	}
	r.byID[rec.ID] = raw
	return raw, nil
}

func (r *adoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.RawRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	raw, ok := r.byID[id]
	if !ok {
		return adoptions.RawRecord{}, ErrNotFound
	}
	return raw, nil
}

func (r *adoptionsRepo) ListByStatus(ctx context.Context, status adoptions.Status) ([]adoptions.RawRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.RawRecord, 0)
	for _, raw := range r.byID {
		if raw.Status == status {
			out = append(out, raw)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *adoptionsRepo) ListAll(ctx context.Context) ([]adoptions.RawRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.RawRecord, 0, len(r.byID))
	for _, raw := range r.byID {
		out = append(out, raw)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *adoptionsRepo) Update(ctx context.Context, id string, p adoptions.Patch) (adoptions.RawRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok := r.byID[id]
	if !ok {
		return adoptions.RawRecord{}, ErrNotFound
	}

	applyString(&raw.Name, p.Name)
	applyString(&raw.Age, p.Age)
	applyString(&raw.Area, p.Area)
	applyString(&raw.Justification, p.Justification)
	applyString(&raw.Email, p.Email)
	applyString(&raw.Phone, p.Phone)
	applyString(&raw.Filename, p.Filename)
	if p.Type != nil {
		raw.Type = adoptions.PetType(*p.Type)
	}
	if p.Status != nil {
		raw.Status = adoptions.Status(*p.Status)
	}

	raw.UpdatedAt = r.now()
	r.byID[id] = raw
	return raw, nil
}

func (r *adoptionsRepo) Delete(ctx context.Context, id string) (adoptions.RawRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok := r.byID[id]
	if !ok {
		return adoptions.RawRecord{}, ErrNotFound
	}
	delete(r.byID, id)
	return raw, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// sortNewestFirst ordena por UpdatedAt desc, con el ID como desempate
// para que el orden sea estable en dev.
func sortNewestFirst(items []adoptions.RawRecord) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].UpdatedAt.Equal(items[j].UpdatedAt) {
			return items[i].UpdatedAt.After(items[j].UpdatedAt)
		}
		return items[i].ID < items[j].ID
	})
}
