package script

import (
	"regexp"
	"strings"
)

// Etiquetas CAVABEN tal como se muestran.
const (
	LabelCaracteristica = "CARACTERÍSTICA"
	LabelVantagem       = "VANTAGEM"
	LabelBeneficio      = "BENEFÍCIO"
)

var cavabenLabels = []string{LabelCaracteristica, LabelVantagem, LabelBeneficio}

// Se evalúa sobre el texto plegado (sin acentos, en mayúsculas).
var cavabenRe = regexp.MustCompile(`\b(CARACTERISTICA|VANTAGEM|BENEFICIO):`)

var cavabenCanonical = map[string]string{
	"CARACTERISTICA": LabelCaracteristica,
	"VANTAGEM":       LabelVantagem,
	"BENEFICIO":      LabelBeneficio,
}

// Limpieza previa: "\n" literal (barra + n) a salto de línea y fuera los "**" de énfasis.
var cavabenCleaner = strings.NewReplacer(`\n`, "\n", "**", "")

// Cavaben argumento Característica / Vantagem / Benefício de un producto.
type Cavaben struct {
	Feature   Step   `json:"feature"`
	Advantage Step   `json:"advantage"`
	Benefit   Step   `json:"benefit"`
	Unlabeled string `json:"unlabeled,omitempty"`
}

// Structured indica si se reconoció al menos una etiqueta.
func (c Cavaben) Structured() bool {
	return c.Feature.Found || c.Advantage.Found || c.Benefit.Found
}

// Steps pasos en orden de presentación.
func (c Cavaben) Steps() []Step {
	return []Step{c.Feature, c.Advantage, c.Benefit}
}

// ParseCavaben extrae los tres pasos del campo cavaben. Las etiquetas se reconocen sin
// distinguir mayúsculas ni acentos (CARACTERISTICA y CARACTERÍSTICA son equivalentes).
func ParseCavaben(text string) Cavaben {
	clean := cavabenCleaner.Replace(text)
	tokens := scanFolded(cavabenRe, clean, cavabenCanonical)
	if len(tokens) == 0 {
		return Cavaben{
			Feature:   Step{Label: LabelCaracteristica},
			Advantage: Step{Label: LabelVantagem},
			Benefit:   Step{Label: LabelBeneficio},
			Unlabeled: strings.TrimSpace(clean),
		}
	}
	steps := firstSteps(clean, tokens, cavabenLabels)
	return Cavaben{
		Feature:   steps[LabelCaracteristica],
		Advantage: steps[LabelVantagem],
		Benefit:   steps[LabelBeneficio],
	}
}
