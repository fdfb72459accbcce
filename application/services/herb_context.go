package services

import (
	"strings"

	"rootline-backend/domain/herbs"
	domainservices "rootline-backend/domain/services"
)

// BuildHerbContext flattens the ranked matches into the human-readable text
// block the prompt templates substitute as {{herb_context}}. One line per
// herb: name, traditions, actions, uses, cautions, and a CONTRAINDICATED
// marker when the intake's restrictions hit the herb's cautions.
func BuildHerbContext(matches []domainservices.HerbMatch) string {
	if len(matches) == 0 {
		return "No herbs in our knowledge base matched this intake."
	}

	var b strings.Builder
	for _, match := range matches {
		h := match.Herb

		b.WriteString("- ")
		b.WriteString(h.Name)
		b.WriteString(" (")
		b.WriteString(h.ScientificName)
		b.WriteString("), ")
		b.WriteString(traditionList(h.Traditions))
		b.WriteString(". Actions: ")
		b.WriteString(strings.Join(h.Actions, ", "))
		b.WriteString(". Uses: ")
		b.WriteString(strings.Join(h.Uses, ", "))
		b.WriteString(". Cautions: ")
		b.WriteString(strings.Join(h.Cautions, "; "))
		b.WriteString(".")
		if match.Contraindicated {
			b.WriteString(" CONTRAINDICATED for this intake based on the stated restrictions.")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// traditionList renders tradition display names as a comma-separated list.
func traditionList(traditions []herbs.Tradition) string {
	names := make([]string, 0, len(traditions))
	for _, t := range traditions {
		names = append(names, t.DisplayName())
	}
	return strings.Join(names, ", ")
}
