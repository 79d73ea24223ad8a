// Package script extrae guiones estructurados de tres pasos desde campos de texto libre:
// SENTIR / SENTIU / DESCOBRIU en las respuestas a objeciones y
// CARACTERÍSTICA / VANTAGEM / BENEFÍCIO (CAVABEN) en los productos.
//
// Las funciones son puras y totales: nunca fallan; un paso ausente queda con Found=false.
package script

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Step paso del guion. Found distingue "no informado" de "informado pero vacío".
type Step struct {
	Label string `json:"label"`
	Text  string `json:"text"`
	Found bool   `json:"found"`
}

// token aparición de una etiqueta en el texto original: [start, end) cubre "ETIQUETA:".
type token struct {
	label      string
	start, end int
}

// firstSteps devuelve, para cada etiqueta, el texto desde su primera aparición hasta la
// siguiente etiqueta reconocida (de cualquier tipo) o el final.
func firstSteps(src string, tokens []token, labels []string) map[string]Step {
	out := make(map[string]Step, len(labels))
	for _, label := range labels {
		out[label] = Step{Label: label}
	}
	for i, tok := range tokens {
		if out[tok.label].Found {
			continue
		}
		end := len(src)
		if i+1 < len(tokens) {
			end = tokens[i+1].start
		}
		out[tok.label] = Step{Label: tok.label, Text: strings.TrimSpace(src[tok.end:end]), Found: true}
	}
	return out
}

// scanExact busca etiquetas exactas (sensible a mayúsculas).
func scanExact(re *regexp.Regexp, src string) []token {
	matches := re.FindAllStringSubmatchIndex(src, -1)
	tokens := make([]token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, token{label: src[m[2]:m[3]], start: m[0], end: m[1]})
	}
	return tokens
}

// scanFolded busca etiquetas sobre una versión sin acentos y en mayúsculas del texto y
// traduce las posiciones al texto original; canonical mapea la forma plegada a la etiqueta.
func scanFolded(re *regexp.Regexp, src string, canonical map[string]string) []token {
	folded, offsets := fold(src)
	matches := re.FindAllStringSubmatchIndex(folded, -1)
	tokens := make([]token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, token{
			label: canonical[folded[m[2]:m[3]]],
			start: offsets[m[0]],
			end:   offsets[m[1]],
		})
	}
	return tokens
}

// fold quita diacríticos y pasa a mayúsculas runa por runa. offsets[i] es la posición en
// src de la runa que produjo el byte i del resultado; offsets[len(resultado)] = len(src).
func fold(src string) (string, []int) {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	var b strings.Builder
	b.Grow(len(src))
	offsets := make([]int, 0, len(src)+1)
	for i, r := range src {
		var f string
		if r < utf8.RuneSelf {
			f = string(unicode.ToUpper(r))
		} else {
			s, _, err := transform.String(stripMarks, string(r))
			if err != nil {
				s = string(r)
			}
			f = strings.ToUpper(s)
		}
		for j := 0; j < len(f); j++ {
			offsets = append(offsets, i)
		}
		b.WriteString(f)
	}
	offsets = append(offsets, len(src))
	return b.String(), offsets
}
