package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/levenlabs/go-lflag"
	"github.com/solarquote/solarquote/pkg/log"
	"github.com/solarquote/solarquote/pkg/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreProvider implements Provider backed by Google Cloud Firestore.
// Each category is a document under the "catalog" collection with "tariffs",
// "packages" and "products" subcollections. Documents store their payload as
// a JSON string for portability, same as the rest of our Firestore data.
type FirestoreProvider struct {
	client    *firestore.Client
	projectID string
	database  string
}

var _ Provider = (*FirestoreProvider)(nil)

// ConfiguredFirestore sets up the Firestore provider.
// It registers flags for configuration.
func ConfiguredFirestore() *FirestoreProvider {
	projectID := lflag.String("firestore-project-id", "", "Google Cloud Project ID for Firestore")
	database := lflag.String("firestore-database", "", "Google Cloud Firestore Database")
	emulator := lflag.String("firestore-emulator", "", "Use Firestore emulator")

	f := &FirestoreProvider{}

	lflag.Do(func() {
		f.projectID = *projectID
		f.database = *database

		// set this because that's how firestore client expects it
		if *emulator != "" {
			os.Setenv("FIRESTORE_EMULATOR_HOST", *emulator)
		}
	})

	return f
}

// Init initializes the Firestore client.
// This must be called before using the provider methods.
func (f *FirestoreProvider) Init(ctx context.Context) error {
	projectID := f.projectID
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}
	database := f.database
	if database == "" {
		database = firestore.DefaultDatabaseID
	}
	client, err := firestore.NewClientWithDatabase(ctx, projectID, database)
	if err != nil {
		return fmt.Errorf("failed to create firestore client (project=%s, database=%s): %w", projectID, database, err)
	}
	f.client = client
	return nil
}

// Close closes the Firestore client connection.
func (f *FirestoreProvider) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func (f *FirestoreProvider) getCollection(category types.Category, name string) (*firestore.CollectionRef, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("invalid category: %q", category)
	}
	return f.client.Collection("catalog").Doc(string(category)).Collection(name), nil
}

// GetTariffTable reads the schedule for the category ordered ascending by
// usage.
func (f *FirestoreProvider) GetTariffTable(ctx context.Context, category types.Category) ([]types.TariffRow, error) {
	coll, err := f.getCollection(category, "tariffs")
	if err != nil {
		return nil, err
	}

	iter := coll.OrderBy("usageKWH", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var rows []types.TariffRow
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate tariffs: %w", err)
		}
		var row types.TariffRow
		if err := decodeJSONDoc(ctx, doc, &row); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty tariff schedule for category: %s", category)
	}
	return rows, nil
}

// GetPackages reads the active, non-special packages for the category and
// resolves each panel wattage from the linked product. Packages pointing at
// missing or inactive products are skipped with a warning.
func (f *FirestoreProvider) GetPackages(ctx context.Context, category types.Category) ([]types.PackageOption, error) {
	products, err := f.getProducts(ctx, category)
	if err != nil {
		return nil, err
	}

	coll, err := f.getCollection(category, "packages")
	if err != nil {
		return nil, err
	}

	iter := coll.Documents(ctx)
	defer iter.Stop()

	var out []types.PackageOption
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate packages: %w", err)
		}
		var p types.PackageOption
		if err := decodeJSONDoc(ctx, doc, &p); err != nil {
			return nil, err
		}
		if !p.Active || p.Special {
			continue
		}
		prod, ok := products[p.ProductID]
		if !ok || !prod.Active {
			log.Ctx(ctx).WarnContext(ctx, "package links missing or inactive product",
				slog.String("packageID", p.ID), slog.String("productID", p.ProductID))
			continue
		}
		p.PanelWattageW = prod.WattageW
		out = append(out, p)
	}
	return out, nil
}

func (f *FirestoreProvider) getProducts(ctx context.Context, category types.Category) (map[string]types.Product, error) {
	coll, err := f.getCollection(category, "products")
	if err != nil {
		return nil, err
	}

	iter := coll.Documents(ctx)
	defer iter.Stop()

	products := make(map[string]types.Product)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			if status.Code(err) == codes.NotFound {
				break
			}
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}
		var p types.Product
		if err := decodeJSONDoc(ctx, doc, &p); err != nil {
			return nil, err
		}
		products[p.ID] = p
	}
	return products, nil
}

// UpsertTariffRow writes one schedule row. The document ID is the usage key
// so re-seeding is idempotent.
func (f *FirestoreProvider) UpsertTariffRow(ctx context.Context, category types.Category, row types.TariffRow) error {
	coll, err := f.getCollection(category, "tariffs")
	if err != nil {
		return err
	}
	jsonBytes, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal tariff row: %w", err)
	}
	docID := fmt.Sprintf("%08.0f", row.UsageKWH)
	_, err = coll.Doc(docID).Set(ctx, map[string]interface{}{
		"json":     string(jsonBytes),
		"usageKWH": row.UsageKWH,
		"version":  types.CurrentTariffTableVersion,
	})
	if err != nil {
		return fmt.Errorf("failed to save tariff row: %w", err)
	}
	return nil
}

// UpsertProduct writes one product keyed by its ID.
func (f *FirestoreProvider) UpsertProduct(ctx context.Context, product types.Product) error {
	coll, err := f.getCollection(product.Category, "products")
	if err != nil {
		return err
	}
	jsonBytes, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}
	_, err = coll.Doc(product.ID).Set(ctx, map[string]interface{}{
		"json":    string(jsonBytes),
		"version": types.CurrentCatalogVersion,
	})
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

// UpsertPackage writes one package keyed by its ID.
func (f *FirestoreProvider) UpsertPackage(ctx context.Context, pkg types.PackageOption) error {
	coll, err := f.getCollection(pkg.Category, "packages")
	if err != nil {
		return err
	}
	jsonBytes, err := json.Marshal(pkg)
	if err != nil {
		return fmt.Errorf("failed to marshal package: %w", err)
	}
	_, err = coll.Doc(pkg.ID).Set(ctx, map[string]interface{}{
		"json":    string(jsonBytes),
		"version": types.CurrentCatalogVersion,
	})
	if err != nil {
		return fmt.Errorf("failed to save package: %w", err)
	}
	return nil
}

func decodeJSONDoc(ctx context.Context, doc *firestore.DocumentSnapshot, v interface{}) error {
	val, err := doc.DataAt("json")
	if err != nil {
		log.Ctx(ctx).WarnContext(ctx, "doc missing json field", slog.String("doc", doc.Ref.ID))
		return fmt.Errorf("document %s missing 'json' field: %w", doc.Ref.ID, err)
	}
	jsonStr, ok := val.(string)
	if !ok {
		return fmt.Errorf("document %s 'json' field is not a string", doc.Ref.ID)
	}
	if err := json.Unmarshal([]byte(jsonStr), v); err != nil {
		return fmt.Errorf("failed to unmarshal document %s: %w", doc.Ref.ID, err)
	}
	return nil
}
