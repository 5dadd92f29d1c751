package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a signup password for storage. A non-positive cost
// falls back to the bcrypt default. User passwords are write-only in this
// service: the portal never logs users in, it only keeps their credentials
// for the mobile app, so there is no verify counterpart here.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
