package adoptions

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateType_AcceptsTheFiveTypes(t *testing.T) {
	for _, v := range []string{"Cat", "Dog", "Hamster", "Parrot", "Rabbit"} {
		if err := ValidateType(v); err != nil {
			t.Fatalf("ValidateType(%q) returned error: %v", v, err)
		}
	}
}

func TestValidateType_RejectsEverythingElse(t *testing.T) {
	// incluye variantes de mayúsculas: el match es exacto
	for _, v := range []string{"", "cat", "DOG", "Hamster ", "Lizard", "Perro"} {
		err := ValidateType(v)
		if !errors.Is(err, ErrInvalidType) {
			t.Fatalf("ValidateType(%q): expected ErrInvalidType, got %v", v, err)
		}
	}
}

func TestValidateType_MessageListsAllowedValues(t *testing.T) {
	err := ValidateType("Lizard")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "Cat, Dog, Hamster, Parrot, Rabbit") {
		t.Fatalf("expected allowed set in message, got %q", err.Error())
	}
}

func TestValidateFilename_EmptyPasses(t *testing.T) {
	if err := ValidateFilename(newTestMedia(), ""); err != nil {
		t.Fatalf("expected empty filename to pass, got %v", err)
	}
}

func TestValidateFilename_PresentMustExist(t *testing.T) {
	m := newTestMedia("a.jpg")

	if err := ValidateFilename(m, "a.jpg"); err != nil {
		t.Fatalf("expected existing filename to pass, got %v", err)
	}
	if err := ValidateFilename(m, "nope.jpg"); !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}
