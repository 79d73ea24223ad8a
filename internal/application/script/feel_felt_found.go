package script

import (
	"regexp"
	"strings"
)

// Etiquetas del guion de objeciones.
const (
	LabelSentir    = "SENTIR"
	LabelSentiu    = "SENTIU"
	LabelDescobriu = "DESCOBRIU"
)

var feelFeltFoundLabels = []string{LabelSentir, LabelSentiu, LabelDescobriu}

var feelFeltFoundRe = regexp.MustCompile(`\b(SENTIR|SENTIU|DESCOBRIU):`)

// FeelFeltFound respuesta a una objeción en tres pasos.
// Si el texto no tiene ninguna etiqueta, Unlabeled contiene el texto completo.
type FeelFeltFound struct {
	Sentir    Step   `json:"sentir"`
	Sentiu    Step   `json:"sentiu"`
	Descobriu Step   `json:"descobriu"`
	Unlabeled string `json:"unlabeled,omitempty"`
}

// Structured indica si se reconoció al menos una etiqueta.
func (s FeelFeltFound) Structured() bool {
	return s.Sentir.Found || s.Sentiu.Found || s.Descobriu.Found
}

// Steps pasos en orden de presentación.
func (s FeelFeltFound) Steps() []Step {
	return []Step{s.Sentir, s.Sentiu, s.Descobriu}
}

// ParseFeelFeltFound extrae SENTIR / SENTIU / DESCOBRIU de la respuesta a una objeción.
// Cada paso toma la primera aparición de su etiqueta y termina en la siguiente etiqueta
// reconocida o al final del texto.
func ParseFeelFeltFound(text string) FeelFeltFound {
	tokens := scanExact(feelFeltFoundRe, text)
	if len(tokens) == 0 {
		return FeelFeltFound{
			Sentir:    Step{Label: LabelSentir},
			Sentiu:    Step{Label: LabelSentiu},
			Descobriu: Step{Label: LabelDescobriu},
			Unlabeled: strings.TrimSpace(text),
		}
	}
	steps := firstSteps(text, tokens, feelFeltFoundLabels)
	return FeelFeltFound{
		Sentir:    steps[LabelSentir],
		Sentiu:    steps[LabelSentiu],
		Descobriu: steps[LabelDescobriu],
	}
}
