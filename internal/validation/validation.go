package validation

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"go-salary/internal/shared/apperror"
	"net/http"
)

// Amount ceilings. Salaries and allowances above these are treated as
// input mistakes, not payroll.
var (
	MaxBaseSalary = decimal.NewFromInt(1_000_000)
	MaxAllowance  = decimal.NewFromInt(100_000)
)

// Arabic blocks plus Latin letters, spaces and common name punctuation.
var nameRe = regexp.MustCompile(`^[\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}\x{FB50}-\x{FDFF}\x{FE70}-\x{FEFF}a-zA-Z\s\.\-']+$`)

var (
	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Name is required",
		http.StatusBadRequest,
	)
	ErrNameTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Name must be at least 2 characters",
		http.StatusBadRequest,
	)
	ErrNameTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"Name is too long (max 100 characters)",
		http.StatusBadRequest,
	)
	ErrNameInvalidChars = apperror.New(
		apperror.CodeInvalidInput,
		"Name contains characters that are not allowed",
		http.StatusBadRequest,
	)
	ErrAmountNegative = apperror.New(
		apperror.CodeInvalidInput,
		"Amount cannot be negative",
		http.StatusBadRequest,
	)
	ErrAmountTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Amount exceeds the allowed maximum",
		http.StatusBadRequest,
	)
)

// Name validates an employee or area name. The caller is expected to
// persist the trimmed form returned here.
func Name(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrNameRequired
	}
	if len([]rune(trimmed)) < 2 {
		return "", ErrNameTooShort
	}
	if len([]rune(trimmed)) > 100 {
		return "", ErrNameTooLong
	}
	if !nameRe.MatchString(trimmed) {
		return "", ErrNameInvalidChars
	}
	return trimmed, nil
}

// Amount validates a monetary amount against [0, max] and returns it
// rounded to 2 decimal places.
func Amount(v decimal.Decimal, max decimal.Decimal) (decimal.Decimal, error) {
	if v.IsNegative() {
		return decimal.Zero, ErrAmountNegative
	}
	if v.GreaterThan(max) {
		return decimal.Zero, ErrAmountTooLarge
	}
	return v.Round(2), nil
}
