// Package password encapsula el hash de contraseñas con bcrypt.
package password

import "golang.org/x/crypto/bcrypt"

// bcrypt ignora todo lo que pasa de 72 bytes; recortamos antes para que
// Hash y Verify traten igual las contraseñas largas.
const maxBytes = 72

// Hash devuelve el hash bcrypt (costo por defecto) de la contraseña.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword(truncate(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara la contraseña con el hash guardado. Un hash mal formado cuenta como no coincidente.
func Verify(plain, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(plain)) == nil
}

func truncate(plain string) []byte {
	b := []byte(plain)
	if len(b) > maxBytes {
		b = b[:maxBytes]
	}
	return b
}
