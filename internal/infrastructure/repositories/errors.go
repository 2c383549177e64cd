package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/you/streamsvc/domain"
	"gorm.io/gorm"
)

// translate maps GORM errors onto domain sentinels, wrapping with op for context
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, domain.ErrRecordNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// likePattern builds a lower-cased LIKE pattern matching q as a literal substring
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(q)) + "%"
}
