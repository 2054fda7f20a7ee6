package main

import (
	"context"
	"fmt"
	"os"

	"github.com/levenlabs/go-lflag"
	"github.com/solarquote/solarquote/pkg/catalog"
	"github.com/solarquote/solarquote/pkg/log"
)

// seed copies the built-in static catalog into Firestore. Point it at the
// emulator for local development or at a real project for production.
func main() {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		os.Setenv("FIRESTORE_EMULATOR_HOST", "127.0.0.1:8087")
	}
	f := catalog.ConfiguredFirestore()
	lflag.Configure()

	ctx := context.Background()

	if err := f.Init(ctx); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to init firestore", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Ctx(ctx).ErrorContext(ctx, "failed to close firestore", "error", err)
		}
	}()

	log.Ctx(ctx).InfoContext(ctx, "seeding catalog")

	src := catalog.NewStatic()

	var seeded int
	for _, category := range src.Categories() {
		rows, err := src.GetTariffTable(ctx, category)
		if err != nil {
			log.Ctx(ctx).ErrorContext(ctx, "failed to load static tariffs", "error", err)
			os.Exit(1)
		}
		for _, row := range rows {
			if err := f.UpsertTariffRow(ctx, category, row); err != nil {
				log.Ctx(ctx).ErrorContext(ctx, "failed to seed tariff row", "error", err)
				os.Exit(1)
			}
			seeded++
		}
		fmt.Printf("Seeded %d tariff rows for %s\n", len(rows), category)
	}

	for _, product := range src.Products() {
		if err := f.UpsertProduct(ctx, product); err != nil {
			log.Ctx(ctx).ErrorContext(ctx, "failed to seed product", "error", err)
			os.Exit(1)
		}
		seeded++
		fmt.Printf("Seeded product %s (%dW)\n", product.ID, product.WattageW)
	}

	// seed everything including inactive and special packages so the admin
	// data matches what the static provider filters at read time
	for _, pkg := range src.AllPackages() {
		if err := f.UpsertPackage(ctx, pkg); err != nil {
			log.Ctx(ctx).ErrorContext(ctx, "failed to seed package", "error", err)
			os.Exit(1)
		}
		seeded++
		fmt.Printf("Seeded package %s (%dx, RM%.0f)\n", pkg.ID, pkg.PanelQuantity, pkg.PriceRM)
	}

	log.Ctx(ctx).InfoContext(ctx, "seeded catalog successfully", "documents", seeded)
}
