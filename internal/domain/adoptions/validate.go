package adoptions

import (
	"fmt"
	"strings"
)

var validTypes = []PetType{TypeCat, TypeDog, TypeHamster, TypeParrot, TypeRabbit}

// ValidateType exige pertenencia exacta (case-sensitive) al set de tipos.
// El mensaje incluye los valores permitidos para mostrar al cliente.
func ValidateType(t string) error {
	for _, v := range validTypes {
		if PetType(t) == v {
			return nil
		}
	}
	return fmt.Errorf("%w: must be one of %s", ErrInvalidType, typeList())
}

// ValidateFilename es el chequeo opcional: nombre vacío pasa, nombre
// presente debe existir en el media store. Quien llama decide si el
// filename es obligatorio para su operación.
func ValidateFilename(m Media, name string) error {
	if name == "" {
		return nil
	}
	if !m.Exists(name) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	return nil
}

func typeList() string {
	names := make([]string, 0, len(validTypes))
	for _, v := range validTypes {
		names = append(names, string(v))
	}
	return strings.Join(names, ", ")
}
