package reminder

import (
	"net/url"
	"strings"

	"github.com/BruksfildServices01/pet-control/internal/validators"
)

const (
	DefaultCountryCode = "55"
	whatsAppSendURL    = "https://web.whatsapp.com/send"
)

// NormalizePhone deixa só dígitos e põe o DDI padrão em números
// de até 11 dígitos.
func NormalizePhone(raw string) string {
	digits := validators.DigitsOnly(raw)
	if digits == "" {
		return ""
	}
	if len(digits) <= 11 {
		return DefaultCountryCode + digits
	}
	return digits
}

func WhatsAppLink(phone, text string) string {
	return whatsAppSendURL +
		"?phone=" + NormalizePhone(phone) +
		"&text=" + encodeComponent(text)
}

// espaço vira %20, não "+"
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
