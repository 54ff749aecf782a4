package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword parolayı bcrypt ile hash'ler. Düz metin parola asla saklanmaz.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash parolanın hash ile eşleşip eşleşmediğini döndürür.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
