package telegram

import (
	"regexp"
	"strings"
)

const maxNameLength = 50

var (
	nameAllowedRe = regexp.MustCompile(`[^a-zA-Zа-яА-ЯёЁ\s]`)
	nameSpacesRe  = regexp.MustCompile(`\s+`)
)

// SanitizeName strips Telegram display names down to letters and single
// spaces, capped at 50 characters. Emojis, digits and decorations are common
// in Telegram names and have no place in the leaderboard.
func SanitizeName(name string) string {
	cleaned := nameAllowedRe.ReplaceAllString(name, "")
	cleaned = strings.TrimSpace(nameSpacesRe.ReplaceAllString(cleaned, " "))
	runes := []rune(cleaned)
	if len(runes) > maxNameLength {
		return string(runes[:maxNameLength])
	}
	return cleaned
}

// NormalizePhone ensures the leading plus Telegram sometimes omits on shared
// contacts.
func NormalizePhone(phone string) string {
	if phone == "" || strings.HasPrefix(phone, "+") {
		return phone
	}
	return "+" + phone
}
