// Package prompts holds the fixed prompt templates the intake orchestration
// renders before invoking the model provider, plus an optional on-disk
// override mechanism.
package prompts

import (
	"fmt"
	"strings"
	"sync"
)

// Section names for the four plan prompts.
const (
	SectionHerbalProtocol = "herbal_protocol"
	SectionDailyRituals   = "daily_rituals"
	SectionNourishment    = "nourishment"
	SectionMindAndSpirit  = "mind_spirit"
)

// SectionNames lists the plan sections in presentation order.
var SectionNames = []string{
	SectionHerbalProtocol,
	SectionDailyRituals,
	SectionNourishment,
	SectionMindAndSpirit,
}

// builtinTemplates are the shipped templates. Placeholders use {{key}}
// syntax and are substituted by Render; keys without a substitution render
// as empty text.
var builtinTemplates = map[string]string{
	SectionHerbalProtocol: `You are a careful, tradition-respecting herbal educator. A person shared this wellness intake:

Symptoms: {{symptoms}}
Goals: {{goals}}
Restrictions or sensitivities: {{restrictions}}
Traditions they want to draw from: {{traditions}}

These herbs from our knowledge base matched their intake:
{{herb_context}}

Write a gentle herbal protocol for them. For each recommended herb explain why it matched their situation, how it is traditionally prepared (tea, tincture, powder, food), and when in the day to take it. Respect every caution listed above, call out anything marked CONTRAINDICATED and suggest an alternative for it. Close with a reminder that this is education, not medical advice.`,

	SectionDailyRituals: `You are a wellness guide versed in African Diaspora, Ayurvedic and Traditional Chinese Medicine daily practices. A person shared this intake:

Symptoms: {{symptoms}}
Goals: {{goals}}
Traditions they want to draw from: {{traditions}}

Herbs matched to their intake:
{{herb_context}}

Design a simple morning and evening ritual (10 minutes each) that weaves in the matched herbs where appropriate. Keep the steps concrete and unhurried, and explain what each step is for in one sentence.`,

	SectionNourishment: `You are a cook who thinks in traditional food-as-medicine terms. A person shared this intake:

Symptoms: {{symptoms}}
Goals: {{goals}}
Restrictions or sensitivities: {{restrictions}}

Herbs matched to their intake:
{{herb_context}}

Suggest a week of simple nourishment guidance: foods to favor, foods to ease off, and two easy recipes that feature the matched herbs where they are food-safe. Honor the stated restrictions strictly.`,

	SectionMindAndSpirit: `You are a grounded mindfulness teacher who respects the traditions behind these herbs. A person shared this intake:

Symptoms: {{symptoms}}
Goals: {{goals}}

Herbs matched to their intake:
{{herb_context}}

Offer a short mind-and-spirit practice for their situation: one breath practice, one journaling prompt, and one reflection rooted in the traditions they selected ({{traditions}}). Keep the tone warm and plain.`,
}

// Library resolves section names to templates. Built-ins can be replaced at
// runtime by the override watcher; reads and swaps are guarded by the mutex.
type Library struct {
	mu        sync.RWMutex
	templates map[string]string
}

// NewLibrary creates a library with the built-in templates.
func NewLibrary() *Library {
	templates := make(map[string]string, len(builtinTemplates))
	for name, tmpl := range builtinTemplates {
		templates[name] = tmpl
	}
	return &Library{templates: templates}
}

// Template returns the current template for a section.
func (l *Library) Template(section string) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	tmpl, ok := l.templates[section]
	if !ok {
		return "", fmt.Errorf("unknown prompt section %q", section)
	}
	return tmpl, nil
}

// Render substitutes the map into the section's template. Placeholders with
// no substitution render as empty text so partial maps are safe.
func (l *Library) Render(section string, substitutions map[string]string) (string, error) {
	tmpl, err := l.Template(section)
	if err != nil {
		return "", err
	}
	return substitute(tmpl, substitutions), nil
}

// setTemplate swaps in an override for a known section. Unknown sections are
// rejected so a stray override file cannot invent prompts.
func (l *Library) setTemplate(section, tmpl string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.templates[section]; !ok {
		return fmt.Errorf("unknown prompt section %q", section)
	}
	l.templates[section] = tmpl
	return nil
}

// substitute replaces every {{key}} placeholder. Unknown keys become empty.
func substitute(tmpl string, substitutions map[string]string) string {
	var b strings.Builder
	b.Grow(len(tmpl))

	for {
		open := strings.Index(tmpl, "{{")
		if open < 0 {
			b.WriteString(tmpl)
			break
		}
		close := strings.Index(tmpl[open:], "}}")
		if close < 0 {
			b.WriteString(tmpl)
			break
		}

		b.WriteString(tmpl[:open])
		key := strings.TrimSpace(tmpl[open+2 : open+close])
		b.WriteString(substitutions[key])
		tmpl = tmpl[open+close+2:]
	}

	return b.String()
}
