package bookings

// StorageKey guarda la lista de turnos del dispositivo (JSON array, solo se agrega).
const StorageKey = "petcare_bookings"

// DateLayout es el formato de fecha que se persiste.
const DateLayout = "2006-01-02"

// Booking es un turno confirmado con un veterinario.
type Booking struct {
	ID        string `json:"id"`
	VetID     string `json:"vetId"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // uno de TimeSlots
	CreatedAt string `json:"createdAt"`
}

type Vet struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// Vets es el plantel fijo de la clínica.
var Vets = []Vet{
	{ID: "1", Name: "Dr. Sarah Wilson", Specialty: "General & Surgery"},
	{ID: "2", Name: "Dr. Mike Chen", Specialty: "Dermatology"},
	{ID: "3", Name: "Dr. Emily Brown", Specialty: "Nutrition & Wellness"},
}

// TimeSlots son los horarios ofrecidos cada día.
var TimeSlots = []string{"09:00 AM", "10:00 AM", "11:30 AM", "02:00 PM", "03:30 PM", "05:00 PM"}

func FindVet(id string) (Vet, bool) {
	for _, v := range Vets {
		if v.ID == id {
			return v, true
		}
	}
	return Vet{}, false
}

func validSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
