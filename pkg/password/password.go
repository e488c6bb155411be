// Package password envuelve bcrypt detrás de una interfaz mínima (hash / verificación).
package password

import "golang.org/x/crypto/bcrypt"

// ErrTooLong lo devuelve Hash cuando la contraseña supera los 72 bytes que admite bcrypt.
var ErrTooLong = bcrypt.ErrPasswordTooLong

// Hasher genera y verifica hashes de contraseña.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// Bcrypt implementa Hasher con golang.org/x/crypto/bcrypt.
type Bcrypt struct {
	cost int
}

// NewBcrypt construye el hasher; cost <= 0 usa bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	return &Bcrypt{cost: cost}
}

// Hash devuelve el hash bcrypt de plain.
func (b *Bcrypt) Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara plain contra hash. Cualquier error (hash corrupto incluido) es "no coincide".
func (b *Bcrypt) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
