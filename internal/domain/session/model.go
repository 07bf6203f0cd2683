package session

// StorageKey es la key del namespace del dispositivo donde vive la sesión.
const StorageKey = "petcare_user"

// Session es el flag de "usuario logueado" con su nombre visible.
// No hay credenciales: solo habilita las pantallas de la app.
type Session struct {
	Name     string `json:"name"`
	LoggedIn bool   `json:"loggedIn"`
}
