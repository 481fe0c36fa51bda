package password

import "golang.org/x/crypto/bcrypt"

// Work factor for bcrypt. Changing it only affects new hashes; Compare reads
// the cost back from the stored hash.
const cost = 10

func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
