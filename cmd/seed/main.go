// seed carga el catálogo de demostración (productos y objeciones) en una sola transacción.
// Las colecciones que ya tienen filas no se tocan.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"github.com/jhoicas/vendas-dashboard/internal/application/schema"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
	"github.com/jhoicas/vendas-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/vendas-dashboard/pkg/config"
	"github.com/jhoicas/vendas-dashboard/pkg/logger"
)

var demoProducts = []entity.Product{
	{Name: "Telha Termoacústica", Category: entity.CategoryCobertura, Desc: "Isolamento térmico e acústico superior com núcleo de PIR.", Img: "https://images.unsplash.com/photo-1518709414768-a88981a4515d?w=800"},
	{Name: "Telha Trapezoidal", Category: entity.CategoryCobertura, Desc: "Alta resistência mecânica para grandes vãos.", Img: "https://images.unsplash.com/photo-1628624747186-a9419477443f?w=800"},
	{Name: "Perfil U Enrijecido", Category: entity.CategoryEstrutura, Desc: "Leveza e resistência para estruturas metálicas.", Img: "https://images.unsplash.com/photo-1541888946425-d81bb19240f5?w=800"},
	{Name: "Cumeeira", Category: entity.CategoryAcabamento, Desc: "Fechamento perfeito para o encontro de águas.", Img: "https://images.unsplash.com/photo-1504917595217-d4dc5ebe6122?w=800"},
}

var demoObjections = []entity.Objection{
	{Category: entity.ObjectionCusto, Question: "A telha sanduíche é muito cara?", Answer: "SENTIR: Entendo que o investimento inicial pareça alto. SENTIU: Muitos clientes sentiam o mesmo antes de instalar. DESCOBRIU: Eles descobriram que a economia de energia (até 30% no ar condicionado) e a dispensa de forro pagam a diferença em 18 meses."},
	{Category: entity.ObjectionDurabilidade, Question: "Vai enferrujar rápido?", Answer: "SENTIR: É natural se preocupar com corrosão. SENTIU: Clientes no litoral tinham esse receio. DESCOBRIU: Com nosso tratamento Galvalume AZ150, a vida útil é 4x maior que a telha comum, com garantia de fábrica."},
	{Category: entity.ObjectionConforto, Question: "O barulho de chuva incomoda?", Answer: "SENTIR: Ninguém gosta de barulho de chuva no telhado. SENTIU: Em galpões antigos isso era um problema. DESCOBRIU: O núcleo de EPS/PIR reduz em até 30 decibéis o ruído. É como se tivesse uma laje de concreto."},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tx := postgres.NewTxRunner(pool, log.Component("seed"))
	err = tx.Run(ctx, func(remote repository.RemoteStore) error {
		n, err := seedCollection(ctx, remote, repository.CollectionProducts, productRecords())
		if err != nil {
			return err
		}
		log.Info().Int("rows", n).Str("collection", repository.CollectionProducts).Msg("seed")

		n, err = seedCollection(ctx, remote, repository.CollectionObjections, objectionRecords())
		if err != nil {
			return err
		}
		log.Info().Int("rows", n).Str("collection", repository.CollectionObjections).Msg("seed")
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("seed fallido")
		os.Exit(1)
	}
	log.Info().Msg("seed completo")
}

// seedCollection inserta recs si la colección está vacía. Devuelve cuántas filas insertó.
func seedCollection(ctx context.Context, remote repository.RemoteStore, collection string, recs []repository.Record) (int, error) {
	existing, err := remote.List(ctx, collection, repository.Query{})
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for _, rec := range recs {
		if _, err := remote.Insert(ctx, collection, rec); err != nil {
			return 0, err
		}
	}
	return len(recs), nil
}

func productRecords() []repository.Record {
	out := make([]repository.Record, 0, len(demoProducts))
	for _, p := range demoProducts {
		p.AddImages(p.Img)
		out = append(out, schema.ProductToExternal(p, false))
	}
	return out
}

func objectionRecords() []repository.Record {
	out := make([]repository.Record, 0, len(demoObjections))
	for _, o := range demoObjections {
		out = append(out, schema.ObjectionToExternal(o, false))
	}
	return out
}
