package validators

import (
	"strings"
	"unicode"
)

// DigitsOnly remove tudo que não for dígito: "(11) 98888-7777" → "11988887777".
func DigitsOnly(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPhoneValid aceita números com DDD (10 ou 11 dígitos) e com DDI (12 ou 13).
func IsPhoneValid(raw string) bool {
	n := len(DigitsOnly(raw))
	return n >= 10 && n <= 13
}

const brazilCountryCode = "55"

// CanonicalPhone é a forma gravada e usada na busca de clientes: só
// dígitos, sem o DDI 55. "+55 (11) 98888-7777" → "11988887777".
func CanonicalPhone(raw string) string {
	digits := DigitsOnly(raw)
	if len(digits) >= 12 && strings.HasPrefix(digits, brazilCountryCode) {
		return digits[len(brazilCountryCode):]
	}
	return digits
}
