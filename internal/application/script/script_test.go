package script_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/vendas-dashboard/internal/application/script"
)

// ──────────────────────────────────────────────────────────────────────────────
// SENTIR / SENTIU / DESCOBRIU
// ──────────────────────────────────────────────────────────────────────────────

func TestParseFeelFeltFound_TresPasos(t *testing.T) {
	s := script.ParseFeelFeltFound("SENTIR: a SENTIU: b DESCOBRIU: c")

	assert.True(t, s.Structured())
	assert.Equal(t, script.Step{Label: "SENTIR", Text: "a", Found: true}, s.Sentir)
	assert.Equal(t, script.Step{Label: "SENTIU", Text: "b", Found: true}, s.Sentiu)
	assert.Equal(t, script.Step{Label: "DESCOBRIU", Text: "c", Found: true}, s.Descobriu)
	assert.Empty(t, s.Unlabeled)
}

func TestParseFeelFeltFound_SinEtiquetasEsFallback(t *testing.T) {
	s := script.ParseFeelFeltFound("  Resposta livre sem estrutura.  ")

	assert.False(t, s.Structured())
	assert.Equal(t, "Resposta livre sem estrutura.", s.Unlabeled)
	for _, step := range s.Steps() {
		assert.False(t, step.Found)
		assert.Empty(t, step.Text)
	}
}

func TestParseFeelFeltFound_SinSentiu(t *testing.T) {
	s := script.ParseFeelFeltFound("SENTIR: entendo o receio DESCOBRIU: a economia paga a diferença")

	assert.Equal(t, "entendo o receio", s.Sentir.Text, "SENTIR debe cortar antes de DESCOBRIU")
	assert.False(t, s.Sentiu.Found)
	assert.Equal(t, "", s.Sentiu.Text)
	assert.Equal(t, "a economia paga a diferença", s.Descobriu.Text)
}

func TestParseFeelFeltFound_OrdenArbitrario(t *testing.T) {
	s := script.ParseFeelFeltFound("DESCOBRIU: c\nSENTIR: a\nSENTIU: b")

	assert.Equal(t, "a", s.Sentir.Text)
	assert.Equal(t, "b", s.Sentiu.Text)
	assert.Equal(t, "c", s.Descobriu.Text)
}

func TestParseFeelFeltFound_PasoPresenteVacio(t *testing.T) {
	s := script.ParseFeelFeltFound("SENTIR:   SENTIU: b")

	assert.True(t, s.Sentir.Found, "etiqueta presente aunque el texto esté en blanco")
	assert.Equal(t, "", s.Sentir.Text)
	assert.False(t, s.Descobriu.Found)
}

func TestParseFeelFeltFound_PrimeraAparicionGana(t *testing.T) {
	s := script.ParseFeelFeltFound("SENTIR: primeiro SENTIR: segundo")
	assert.Equal(t, "primeiro", s.Sentir.Text)
}

func TestParseFeelFeltFound_EjemploDelCatalogo(t *testing.T) {
	a := "SENTIR: Entendo que o investimento inicial pareça alto. SENTIU: Muitos clientes sentiam o mesmo antes de instalar. DESCOBRIU: Eles descobriram que a economia de energia (até 30% no ar condicionado) e a dispensa de forro pagam a diferença em 18 meses."
	s := script.ParseFeelFeltFound(a)

	assert.Equal(t, "Entendo que o investimento inicial pareça alto.", s.Sentir.Text)
	assert.Equal(t, "Muitos clientes sentiam o mesmo antes de instalar.", s.Sentiu.Text)
	assert.Contains(t, s.Descobriu.Text, "18 meses.")
}

func TestParseFeelFeltFound_TextoVacio(t *testing.T) {
	s := script.ParseFeelFeltFound("")
	assert.False(t, s.Structured())
	assert.Equal(t, "", s.Unlabeled)
}

// ──────────────────────────────────────────────────────────────────────────────
// CAVABEN
// ──────────────────────────────────────────────────────────────────────────────

func TestParseCavaben_InsensibleAAcentos(t *testing.T) {
	for _, in := range []string{"CARACTERISTICA: x", "CARACTERÍSTICA: x", "Característica: x"} {
		c := script.ParseCavaben(in)
		assert.Equal(t, "x", c.Feature.Text, in)
		assert.True(t, c.Feature.Found, in)
		assert.Equal(t, script.LabelCaracteristica, c.Feature.Label)
	}
}

func TestParseCavaben_TresPasosConservaAcentosDelValor(t *testing.T) {
	c := script.ParseCavaben("CARACTERÍSTICA: Aço Galvalume.\nVANTAGEM: Não enferruja.\nBENEFICIO: Obra dura 30 anos.")

	assert.Equal(t, "Aço Galvalume.", c.Feature.Text)
	assert.Equal(t, "Não enferruja.", c.Advantage.Text)
	assert.Equal(t, "Obra dura 30 anos.", c.Benefit.Text)
}

func TestParseCavaben_LimpiaSaltosLiteralesYEnfasis(t *testing.T) {
	c := script.ParseCavaben(`**CARACTERÍSTICA:** núcleo PIR\n**VANTAGEM:** isola\n**BENEFÍCIO:** conforto`)

	assert.Equal(t, "núcleo PIR", c.Feature.Text)
	assert.Equal(t, "isola", c.Advantage.Text)
	assert.Equal(t, "conforto", c.Benefit.Text)
}

func TestParseCavaben_PasoAusente(t *testing.T) {
	c := script.ParseCavaben("VANTAGEM: leve")

	assert.False(t, c.Feature.Found)
	assert.Equal(t, "leve", c.Advantage.Text)
	assert.False(t, c.Benefit.Found)
}

func TestParseCavaben_SinEtiquetas(t *testing.T) {
	c := script.ParseCavaben("texto corrido")
	assert.False(t, c.Structured())
	assert.Equal(t, "texto corrido", c.Unlabeled)

	empty := script.ParseCavaben("")
	assert.False(t, empty.Structured())
	assert.Equal(t, "", empty.Unlabeled)
}
