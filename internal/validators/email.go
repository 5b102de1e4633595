package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid aceita string vazia (campo opcional) ou um endereço bem formado.
func IsEmailValid(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return true
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	// mail.ParseAddress aceita "Nome <a@b>"; aqui só interessa o endereço puro
	return addr.Address == email
}
