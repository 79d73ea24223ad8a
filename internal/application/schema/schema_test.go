package schema_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendas-dashboard/internal/application/schema"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Round-trip entidad -> fila -> entidad
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_RoundTrip(t *testing.T) {
	cases := []entity.Product{
		{
			ID:       "11",
			Name:     "Telha Termoacústica",
			Category: entity.CategoryCobertura,
			Desc:     "Isolamento térmico e acústico superior com núcleo de PIR.",
			Cavaben:  "CARACTERÍSTICA: Aço Galvalume. VANTAGEM: Não enferruja. BENEFÍCIO: Obra dura 30 anos.",
			Img:      "https://cdn/a.jpg",
			Images:   []string{"https://cdn/a.jpg", "https://cdn/b.jpg", "https://cdn/c.jpg"},
		},
		{
			ID:       "12",
			Name:     "Parafuso autobrocante",
			Category: entity.CategoryFixacao,
			Images:   []string{},
		},
	}
	for _, p := range cases {
		got := schema.ProductToInternal(schema.ProductToExternal(p, true))
		if diff := cmp.Diff(p, got); diff != "" {
			t.Fatalf("round-trip de %q (-quiere +obtuvo):\n%s", p.Name, diff)
		}
	}
}

func TestProductToExternal_RenombraDescYOmiteIDEnCreacion(t *testing.T) {
	p := entity.Product{ID: "9", Name: "Cumeeira", Category: entity.CategoryAcabamento, Desc: "Fechamento", Images: []string{}}

	rec := schema.ProductToExternal(p, false)

	assert.Equal(t, "Fechamento", rec["descr"])
	assert.NotContains(t, rec, "desc")
	assert.NotContains(t, rec, "id", "en inserción el id lo asigna el servidor")

	rec = schema.ProductToExternal(p, true)
	assert.Equal(t, "9", rec["id"])
}

func TestProductToExternal_NoCompartePorReferenciaLaGaleria(t *testing.T) {
	p := entity.Product{Name: "x", Category: entity.CategoryCobertura, Images: []string{"a"}}
	rec := schema.ProductToExternal(p, false)

	imgs := rec["images"].([]string)
	imgs[0] = "mutado"

	assert.Equal(t, "a", p.Images[0])
}

func TestObjection_RoundTrip(t *testing.T) {
	o := entity.Objection{
		ID:       "3",
		Category: entity.ObjectionConforto,
		Question: "O barulho de chuva incomoda?",
		Answer:   "SENTIR: Ninguém gosta. SENTIU: Em galpões antigos. DESCOBRIU: O núcleo reduz 30 dB.",
	}
	assert.Equal(t, o, schema.ObjectionToInternal(schema.ObjectionToExternal(o, true)))
}

func TestTask_RoundTrip(t *testing.T) {
	task := entity.DailyTask{
		ID:     "t-1",
		UserID: "u-1",
		Date:   "2026-10-15",
		Time:   "09:00",
		Title:  "Visitar obra",
		Desc:   "Levar amostras",
		Done:   true,
	}
	assert.Equal(t, task, schema.TaskToInternal(schema.TaskToExternal(task, true)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de la galería de imágenes
// ──────────────────────────────────────────────────────────────────────────────

func TestProductToInternal_ImagenesComoJSON(t *testing.T) {
	p := schema.ProductToInternal(repository.Record{"images": `["a","b"]`, "img": "ignorada"})
	assert.Equal(t, []string{"a", "b"}, p.Images)
}

func TestProductToInternal_SinImagenesUsaImgLegado(t *testing.T) {
	p := schema.ProductToInternal(repository.Record{"img": "x"})
	assert.Equal(t, []string{"x"}, p.Images)
}

func TestProductToInternal_SinNadaDevuelveListaVacia(t *testing.T) {
	p := schema.ProductToInternal(repository.Record{"name": "sem foto"})
	require.NotNil(t, p.Images)
	assert.Empty(t, p.Images)
}

func TestNormalizeImages_Casos(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		img  string
		want []string
	}{
		{"json inválido cae al img", `["a",`, "x", []string{"x"}},
		{"json que no es lista", `{"a":1}`, "x", []string{"x"}},
		{"json lista vacía", `[]`, "x", []string{"x"}},
		{"json lista vacía sin img", `[]`, "", []string{}},
		{"lista nativa de string", []string{"a", "b"}, "z", []string{"a", "b"}},
		{"lista nativa any", []any{"a", 3, "b"}, "", []string{"a", "b"}},
		{"lista nativa vacía", []any{}, "x", []string{"x"}},
		{"bytes json", []byte(`["m"]`), "", []string{"m"}},
		{"tipo inesperado", 42, "", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, schema.NormalizeImages(tc.raw, tc.img))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tipos de columna heterogéneos
// ──────────────────────────────────────────────────────────────────────────────

func TestToInternal_IDsNumericosYTimestamps(t *testing.T) {
	created := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	o := schema.ObjectionToInternal(repository.Record{"id": int64(42), "created_at": created})
	assert.Equal(t, "42", o.ID)
	assert.True(t, created.Equal(o.CreatedAt))

	task := schema.TaskToInternal(repository.Record{"id": float64(7), "created_at": "2026-10-15T12:00:00Z", "done": "true"})
	assert.Equal(t, "7", task.ID)
	assert.True(t, created.Equal(task.CreatedAt))
	assert.True(t, task.Done)
}

func TestProfileToInternal(t *testing.T) {
	p := schema.ProfileToInternal(repository.Record{"id": "u-9", "email": "ana@telhaco.com.br", "role": "manager"})
	assert.Equal(t, entity.RoleManager, p.Role)
	assert.Equal(t, repository.Record{"role": "supervisor"}, schema.ProfileRolePatch(entity.RoleSupervisor))
}
