package entity

// Roles de usuario expuestos por /auth/me. El rol manager habilita las
// operaciones de escritura; el guardado en cliente es solo cortesía de UX,
// la autorización real la impone el servidor.
const (
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// User es la identidad de la sesión activa.
type User struct {
	Username string
	Role     string
}

// IsManager indica si el usuario tiene el rol elevado.
func (u User) IsManager() bool {
	return u.Role == RoleManager
}
