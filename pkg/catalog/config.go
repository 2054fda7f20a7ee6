package catalog

import (
	"context"
	"fmt"

	"github.com/levenlabs/go-lflag"
)

// Configured sets up the catalog provider based on flags.
func Configured() Provider {
	provider := lflag.String("catalog-provider", "static", "Catalog provider to use (available: static, firestore)")

	var p struct{ Provider }

	fs := ConfiguredFirestore()

	lflag.Do(func() {
		switch *provider {
		case "static":
			p.Provider = NewStatic()
		case "firestore":
			if err := fs.Init(context.Background()); err != nil {
				panic(fmt.Sprintf("firestore init failed: %v", err))
			}
			p.Provider = fs
		default:
			panic(fmt.Sprintf("unknown catalog provider: %s", *provider))
		}
	})

	return &p
}
