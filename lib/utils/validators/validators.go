package validators

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)
var phoneRegex = regexp.MustCompile(`^[+]?[1-9][0-9]{0,15}$`)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// SanitizeInput обрезает пробелы и экранирует HTML-символы перед сохранением
func SanitizeInput(input string) string {
	return htmlEscaper.Replace(strings.TrimSpace(input))
}
