package entity

// Session estado de sesión de un cliente. Se persiste tal cual como JSON bajo una única clave.
type Session struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}

// LoggedOut devuelve la sesión vacía {user: null, isAuthenticated: false}.
func LoggedOut() Session {
	return Session{}
}

// Role devuelve el rol de la sesión o "" si no hay usuario.
func (s Session) Role() Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}
