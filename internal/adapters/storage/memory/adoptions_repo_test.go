package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-adoption-api/internal/domain/adoptions"
)

func seedRepo(t *testing.T) (*adoptionsRepo, func() time.Time) {
	t.Helper()

	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		now = now.Add(time.Minute)
		return now
	}

	repo := NewAdoptionsRepo().(*adoptionsRepo)
	repo.now = clock
	return repo, clock
}

func TestRepo_CreateAndGet(t *testing.T) {
	repo, _ := seedRepo(t)

	raw, err := repo.Create(context.Background(), adoptions.Record{
		ID: "id-1", Name: "Milo", Type: adoptions.TypeCat, Status: adoptions.StatusPending,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if raw.UpdatedAt.IsZero() {
		t.Fatalf("expected repo-assigned UpdatedAt")
	}

	got, err := repo.GetByID(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Milo" || got.Status != adoptions.StatusPending {
		t.Fatalf("unexpected record: %#v", got)
	}
}

func TestRepo_Create_RejectsDuplicateID(t *testing.T) {
	repo, _ := seedRepo(t)

	if _, err := repo.Create(context.Background(), adoptions.Record{ID: "id-1"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(context.Background(), adoptions.Record{ID: "id-1"}); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestRepo_Update_MergesFieldGranular(t *testing.T) {
	repo, _ := seedRepo(t)

	created, _ := repo.Create(context.Background(), adoptions.Record{
		ID: "id-1", Name: "Milo", Age: "2", Type: adoptions.TypeCat,
	})

	name := "Milo Updated"
	status := "Approved"
	updated, err := repo.Update(context.Background(), "id-1", adoptions.Patch{Name: &name, Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Milo Updated" || updated.Status != adoptions.StatusApproved {
		t.Fatalf("patch not applied: %#v", updated)
	}
	if updated.Age != "2" || updated.Type != adoptions.TypeCat {
		t.Fatalf("patch touched unsupplied fields: %#v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("expected UpdatedAt to advance on update")
	}
}

func TestRepo_Update_NotFound(t *testing.T) {
	repo, _ := seedRepo(t)

	name := "x"
	if _, err := repo.Update(context.Background(), "missing", adoptions.Patch{Name: &name}); !errors.Is(err, adoptions.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_ListByStatus_NewestFirst(t *testing.T) {
	repo, _ := seedRepo(t)

	_, _ = repo.Create(context.Background(), adoptions.Record{ID: "id-1", Status: adoptions.StatusPending})
	_, _ = repo.Create(context.Background(), adoptions.Record{ID: "id-2", Status: adoptions.StatusApproved})
	_, _ = repo.Create(context.Background(), adoptions.Record{ID: "id-3", Status: adoptions.StatusPending})

	pending, err := repo.ListByStatus(context.Background(), adoptions.StatusPending)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != "id-3" || pending[1].ID != "id-1" {
		t.Fatalf("expected [id-3 id-1], got %#v", pending)
	}

	all, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 || all[0].ID != "id-3" || all[2].ID != "id-1" {
		t.Fatalf("expected newest-first over all records, got %#v", all)
	}
}

func TestRepo_Delete_ReturnsDeletedRecord(t *testing.T) {
	repo, _ := seedRepo(t)

	_, _ = repo.Create(context.Background(), adoptions.Record{ID: "id-1", Filename: "a.jpg"})

	deleted, err := repo.Delete(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.Filename != "a.jpg" {
		t.Fatalf("expected deleted record back, got %#v", deleted)
	}

	if _, err := repo.GetByID(context.Background(), "id-1"); !errors.Is(err, adoptions.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := repo.Delete(context.Background(), "id-1"); !errors.Is(err, adoptions.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
