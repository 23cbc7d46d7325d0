package adoptions

import "time"

// PetType define los tipos de mascota aceptados en escritura.
// Data legada puede traer otros valores; la normalización los deja pasar.
type PetType string

const (
	TypeCat     PetType = "Cat"
	TypeDog     PetType = "Dog"
	TypeHamster PetType = "Hamster"
	TypeParrot  PetType = "Parrot"
	TypeRabbit  PetType = "Rabbit"
)

// Status es el estado grueso del workflow de adopción.
// Approve/Update aceptan cualquier string a propósito (compat con el
// sistema original); las constantes son para código nuevo.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusAdopted  Status = "Adopted"
)

// Record es la forma canónica que ven los clientes.
type Record struct {
	ID string

	Name          string
	Type          PetType
	Age           string
	Area          string
	Justification string
	Email         string
	Phone         string

	// Filename referencia una imagen en el media store (nombre, no path).
	Filename string

	Status Status

	// UpdatedAt lo mantiene el store; es la única clave de orden en listados.
	UpdatedAt time.Time
}

// Owner es el sub-objeto anidado de documentos de una versión anterior
// del intake, que guardaba el contacto bajo "owner".
type Owner struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// RawRecord es la forma tal cual se guardó: campos canónicos más las
// variantes legadas (location/description/owner). Los reads devuelven
// RawRecord y Normalize lo pliega a Record.
type RawRecord struct {
	ID string

	Name string
	Type PetType
	Age  string

	Area     string
	Location string // nombre viejo de Area

	Justification string
	Description   string // nombre viejo de Justification

	Email string
	Phone string
	Owner *Owner

	Filename string
	Status   Status

	UpdatedAt time.Time
}

// Patch describe una actualización parcial: nil = no tocar el campo.
type Patch struct {
	Name          *string
	Type          *string
	Age           *string
	Area          *string
	Justification *string
	Email         *string
	Phone         *string
	Filename      *string
	Status        *string
}
