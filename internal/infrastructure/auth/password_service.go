package auth

import (
	"github.com/you/streamsvc/domain"
	"golang.org/x/crypto/bcrypt"
)

const passwordCost = 10

// PasswordServiceImpl implements domain.PasswordService
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a new password service
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{
		cost: passwordCost,
	}
}

// Hash implements domain.PasswordService
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PasswordService. An empty or corrupt hash never matches.
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	if hashedPassword == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
