package services

import "strings"

// Placeholder is replaced by the word in each template.
const Placeholder = "{}"

// DefaultFiller pads the word list when fewer words than templates exist.
const DefaultFiller = "conocimiento"

// DefaultTemplates are the sentence templates used to build phrases.
var DefaultTemplates = []string{
	"El concepto de '{}' es fundamental en la sociedad actual.",
	"La historia demuestra que '{}' siempre ha sido importante.",
	"No puede existir progreso sin '{}'.",
	"Desde tiempos antiguos, '{}' ha guiado al ser humano.",
	"Reflexionar sobre '{}' nos ayuda a crecer.",
}

// GeneratePhrases pairs templates[i] with words[i]. Missing words are
// replaced by filler and surplus words are ignored, so the result always
// has len(templates) entries in template order.
func GeneratePhrases(words []string, templates []string, filler string) []string {
	phrases := make([]string, len(templates))
	for i, tmpl := range templates {
		word := filler
		if i < len(words) {
			word = words[i]
		}
		phrases[i] = strings.Replace(tmpl, Placeholder, word, 1)
	}
	return phrases
}
