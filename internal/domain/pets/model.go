package pets

// Pet es un registro del registro multi-mascota del dispositivo.
// El orden de la colección es el de alta y se respeta al mostrarla.
type Pet struct {
	ID      string  `json:"id"`
	PetName string  `json:"petName"`
	Breed   string  `json:"breed"`
	Age     float64 `json:"age"` // años, admite decimales
	History string  `json:"history"`
}

// PetInput son los campos editables de una mascota ya validados.
// El id nunca viene del formulario: se genera al crear y es inmutable.
type PetInput struct {
	PetName string
	Breed   string
	Age     float64
	History string
}

func (in PetInput) toPet(id string) Pet {
	return Pet{
		ID:      id,
		PetName: in.PetName,
		Breed:   in.Breed,
		Age:     in.Age,
		History: in.History,
	}
}

// Keys del namespace del dispositivo.
const (
	// StorageKey guarda la colección completa (JSON array).
	StorageKey = "petcare_pets"
	// LegacyProfileKey es el formato anterior: un único perfil sin id.
	LegacyProfileKey = "petcare_profile"
)
