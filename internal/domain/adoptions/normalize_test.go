package adoptions

import (
	"testing"
	"time"
)

const testDefaultImage = "default.jpeg"

func TestNormalize_CanonicalRecordPassesThrough(t *testing.T) {
	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	raw := RawRecord{
		ID:            "id-1",
		Name:          "Milo",
		Type:          TypeCat,
		Age:           "2",
		Area:          "Lima",
		Justification: "garden",
		Email:         "x@y.com",
		Phone:         "555",
		Filename:      "a.jpg",
		Status:        StatusPending,
		UpdatedAt:     ts,
	}

	rec := Normalize(raw, testDefaultImage)
	want := Record{
		ID: "id-1", Name: "Milo", Type: TypeCat, Age: "2",
		Area: "Lima", Justification: "garden",
		Email: "x@y.com", Phone: "555",
		Filename: "a.jpg", Status: StatusPending, UpdatedAt: ts,
	}
	if rec != want {
		t.Fatalf("expected pass-through, got %#v", rec)
	}
}

func TestNormalize_LegacyFieldFallbacks(t *testing.T) {
	raw := RawRecord{
		ID:          "id-2",
		Name:        "Nina",
		Location:    "Cusco",
		Description: "big yard",
		Owner:       &Owner{Email: "owner@y.com", Phone: "999"},
	}

	rec := Normalize(raw, testDefaultImage)
	if rec.Area != "Cusco" {
		t.Fatalf("expected area from location, got %q", rec.Area)
	}
	if rec.Justification != "big yard" {
		t.Fatalf("expected justification from description, got %q", rec.Justification)
	}
	if rec.Email != "owner@y.com" || rec.Phone != "999" {
		t.Fatalf("expected contact from owner sub-object, got %q / %q", rec.Email, rec.Phone)
	}
	if rec.Filename != testDefaultImage {
		t.Fatalf("expected default filename, got %q", rec.Filename)
	}
}

func TestNormalize_CanonicalFieldWinsOverLegacy(t *testing.T) {
	raw := RawRecord{
		ID:            "id-3",
		Area:          "Lima",
		Location:      "Cusco",
		Justification: "garden",
		Description:   "old text",
		Email:         "new@y.com",
		Owner:         &Owner{Email: "old@y.com", Phone: "999"},
	}

	rec := Normalize(raw, testDefaultImage)
	if rec.Area != "Lima" || rec.Justification != "garden" || rec.Email != "new@y.com" {
		t.Fatalf("expected canonical fields to win, got %#v", rec)
	}
	// phone solo existe en owner: cae al sub-objeto
	if rec.Phone != "999" {
		t.Fatalf("expected phone from owner, got %q", rec.Phone)
	}
}

func TestNormalize_UnknownTypeAndStatusPassThrough(t *testing.T) {
	// Data legada puede violar los enums; la normalización los tolera.
	raw := RawRecord{ID: "id-4", Type: "Iguana", Status: "Archived"}

	rec := Normalize(raw, testDefaultImage)
	if rec.Type != "Iguana" || rec.Status != "Archived" {
		t.Fatalf("expected unknown values untouched, got %#v", rec)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := RawRecord{
		ID:       "id-5",
		Name:     "Nina",
		Location: "Cusco",
		Owner:    &Owner{Email: "owner@y.com"},
	}

	once := Normalize(raw, testDefaultImage)

	again := Normalize(RawRecord{
		ID:            once.ID,
		Name:          once.Name,
		Type:          once.Type,
		Age:           once.Age,
		Area:          once.Area,
		Justification: once.Justification,
		Email:         once.Email,
		Phone:         once.Phone,
		Filename:      once.Filename,
		Status:        once.Status,
		UpdatedAt:     once.UpdatedAt,
	}, testDefaultImage)

	if once != again {
		t.Fatalf("expected idempotence, got %#v vs %#v", once, again)
	}
}
