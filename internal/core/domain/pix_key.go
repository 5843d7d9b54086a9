package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
)

// PixKeyType is the format of an addressing key bound to a wallet.
type PixKeyType string

const (
	PixKeyEmail PixKeyType = "EMAIL"
	PixKeyPhone PixKeyType = "PHONE"
	PixKeyCPF   PixKeyType = "CPF"
	PixKeyEVP   PixKeyType = "EVP"
)

var (
	emailKeyPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[a-zA-Z]{2,}$`)
	phoneKeyPattern = regexp.MustCompile(`^(\+55)?[1-9]{2}9\d{8}$`)
	evpKeyPattern   = regexp.MustCompile(`^[0-9a-fA-F-]{32,}$`)
	cpfPattern      = regexp.MustCompile(`^\d{11}$`)
)

// ParsePixKeyType is case-insensitive. Unknown values fail with ErrValidation.
func ParsePixKeyType(raw string) (PixKeyType, error) {
	switch t := PixKeyType(strings.ToUpper(strings.TrimSpace(raw))); t {
	case PixKeyEmail, PixKeyPhone, PixKeyCPF, PixKeyEVP:
		return t, nil
	default:
		return "", apperrors.NewValidationError([]apperrors.Violation{{
			Field:   "keyType",
			Message: fmt.Sprintf("Invalid keyType: '%s'", raw),
		}})
	}
}

// ValidateKeyValue checks value against the format of keyType.
func ValidateKeyValue(keyType PixKeyType, value string) error {
	switch keyType {
	case PixKeyEmail:
		if !emailKeyPattern.MatchString(value) {
			return errors.New("'keyValue' is not a valid email")
		}
	case PixKeyPhone:
		if !phoneKeyPattern.MatchString(value) {
			return errors.New("'keyValue' is not a valid phone format")
		}
	case PixKeyCPF:
		if !validCPF(value) {
			return errors.New("'keyValue' is not a valid CPF")
		}
	case PixKeyEVP:
		if !evpKeyPattern.MatchString(value) {
			return errors.New("'keyValue' is not a valid EVP format")
		}
	default:
		return fmt.Errorf("unsupported key type %q", keyType)
	}
	return nil
}

// validCPF checks the two mod-11 check digits. Repeated-digit numbers are rejected.
func validCPF(cpf string) bool {
	if !cpfPattern.MatchString(cpf) || strings.Count(cpf, cpf[:1]) == len(cpf) {
		return false
	}
	digit := func(n int) int {
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(cpf[i]-'0') * (n + 1 - i)
		}
		check := 11 - sum%11
		if check > 9 {
			return 0
		}
		return check
	}
	return digit(9) == int(cpf[9]-'0') && digit(10) == int(cpf[10]-'0')
}

// PixKey binds a unique key value to a wallet.
type PixKey struct {
	PixKeyID string     `json:"pixKeyId"`
	WalletID string     `json:"walletId"`
	KeyType  PixKeyType `json:"keyType"`
	KeyValue string     `json:"keyValue"`
}

func NewPixKey(walletID string, keyType PixKeyType, keyValue string) *PixKey {
	return &PixKey{
		PixKeyID: newID(),
		WalletID: walletID,
		KeyType:  keyType,
		KeyValue: keyValue,
	}
}

func (k *PixKey) Validate() []apperrors.Violation {
	var violations []apperrors.Violation
	if isBlank(k.WalletID) {
		violations = append(violations, apperrors.Violation{Field: "walletId", Message: "'walletId' must not be null"})
	}
	if k.KeyType == "" {
		violations = append(violations, apperrors.Violation{Field: "keyType", Message: "'keyType' must not be null"})
	}
	if isBlank(k.KeyValue) {
		return append(violations, apperrors.Violation{Field: "keyValue", Message: "'keyValue' must not be null or blank"})
	}
	if k.KeyType != "" {
		if err := ValidateKeyValue(k.KeyType, k.KeyValue); err != nil {
			violations = append(violations, apperrors.Violation{Field: "keyValue", Message: err.Error()})
		}
	}
	return violations
}
