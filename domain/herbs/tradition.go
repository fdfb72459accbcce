package herbs

import "fmt"

// Tradition identifies the herbal lineage a record belongs to.
type Tradition string

const (
	TraditionAfricanDiaspora Tradition = "african_diaspora"
	TraditionAyurvedic       Tradition = "ayurvedic"
	TraditionTCM             Tradition = "tcm"
)

// AllTraditions lists every recognized tradition in a fixed order.
var AllTraditions = []Tradition{
	TraditionAfricanDiaspora,
	TraditionAyurvedic,
	TraditionTCM,
}

// ParseTradition converts a wire value into a Tradition.
func ParseTradition(s string) (Tradition, error) {
	switch Tradition(s) {
	case TraditionAfricanDiaspora, TraditionAyurvedic, TraditionTCM:
		return Tradition(s), nil
	}
	return "", fmt.Errorf("unknown tradition %q", s)
}

// DisplayName returns the human-readable name for a tradition.
func (t Tradition) DisplayName() string {
	switch t {
	case TraditionAfricanDiaspora:
		return "African Diaspora"
	case TraditionAyurvedic:
		return "Ayurvedic"
	case TraditionTCM:
		return "Traditional Chinese Medicine"
	}
	return string(t)
}
