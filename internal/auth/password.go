package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// Parâmetros do scrypt. Mudar qualquer um invalida todos os hashes já gravados.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64

	saltBytes = 16
)

// GenerateSalt gera um salt aleatório de 16 bytes, codificado em hex (32 chars).
func GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword deriva a chave da senha+salt via scrypt e devolve em hex.
func HashPassword(password, salt string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// VerifyPassword recomputa o hash e compara em tempo constante.
func VerifyPassword(password, salt, storedHash string) bool {
	if storedHash == "" {
		return false
	}

	hash, err := HashPassword(password, salt)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(hash), []byte(storedHash)) == 1
}
