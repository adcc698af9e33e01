package service

import (
	"strings"

	"receipt-desk/internal/models"
)

// ResolveCompany maps a free-text guess onto the registry. A company matches
// when either lowercased name contains the other; the first match in registry
// order wins. Blank guesses and blank names never match.
func ResolveCompany(guess string, registry []*models.Company) *models.Company {
	g := strings.ToLower(strings.TrimSpace(guess))
	if g == "" {
		return nil
	}

	for _, c := range registry {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name == "" {
			continue
		}
		if strings.Contains(name, g) || strings.Contains(g, name) {
			return c
		}
	}
	return nil
}
