package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

// CredentialSeed fila del catálogo estático de credenciales (password en texto, se hashea al cargar).
type CredentialSeed struct {
	ID          int64
	Username    string
	Email       string
	DisplayName string
	Password    string
	Role        entity.Role
}

// DefaultCredentials cuentas de demostración de la tienda.
func DefaultCredentials() []CredentialSeed {
	return []CredentialSeed{
		{ID: 1, Username: "admin", Email: "admin@petshop.com", DisplayName: "Administrador", Password: "admin123", Role: entity.RoleAdmin},
		{ID: 2, Username: "maria", Email: "maria@petshop.com", DisplayName: "Maria Silva", Password: "maria123", Role: entity.RoleEmployee},
		{ID: 3, Username: "joao", Email: "joao@petshop.com", DisplayName: "João Santos", Password: "joao123", Role: entity.RoleCashier},
	}
}

type credential struct {
	user    entity.User
	keys    [3]string // username, email, displayName ya normalizados
	pwdHash []byte
}

// CredentialTable catálogo inmutable de credenciales en memoria.
type CredentialTable struct {
	entries []credential
}

// NewCredentialTable hashea los passwords con bcrypt (cost) y construye la tabla.
func NewCredentialTable(seeds []CredentialSeed, cost int) (*CredentialTable, error) {
	t := &CredentialTable{entries: make([]credential, 0, len(seeds))}
	for _, s := range seeds {
		if !s.Role.Valid() {
			return nil, fmt.Errorf("credencial %q: rol inválido %q", s.Username, s.Role)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("credencial %q: %w", s.Username, err)
		}
		t.entries = append(t.entries, credential{
			user:    entity.User{ID: s.ID, DisplayName: s.DisplayName, Email: s.Email, Role: s.Role},
			keys:    [3]string{fold(s.Username), fold(s.Email), fold(s.DisplayName)},
			pwdHash: hash,
		})
	}
	return t, nil
}

// Match busca la primera credencial cuyo username, email o nombre coincide con identifier
// (sin distinguir mayúsculas) y cuyo password coincide exactamente.
func (t *CredentialTable) Match(identifier, password string) (entity.User, bool) {
	key := fold(identifier)
	for _, c := range t.entries {
		if key != c.keys[0] && key != c.keys[1] && key != c.keys[2] {
			continue
		}
		if bcrypt.CompareHashAndPassword(c.pwdHash, []byte(password)) == nil {
			return c.user, true
		}
	}
	return entity.User{}, false
}

// fold normaliza a NFC y aplica case folding Unicode; los espacios se conservan. Un Caser no es seguro entre goroutines,
// por eso se crea en cada llamada.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
