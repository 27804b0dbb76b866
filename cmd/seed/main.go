package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/storefront-state/config"
	"github.com/oksasatya/storefront-state/internal/application"
	"github.com/oksasatya/storefront-state/internal/domain/entity"
	"github.com/oksasatya/storefront-state/internal/storage"
)

// Seeds demo snapshots into the configured state dir so the client starts
// with a populated cart and a signed-in buyer.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	adapter, err := storage.NewFileAdapter(cfg.StateDir)
	if err != nil {
		log.Fatalf("failed to open state dir: %v", err)
	}
	ctx := context.Background()

	buyer := entity.Identity{
		ID:    "seed-buyer",
		Email: "buyer@example.com",
		Role:  entity.RoleBuyer,
		Name:  "Demo Buyer",
	}
	if err := storage.SaveJSON(ctx, adapter, application.IdentitySnapshotKey, &buyer); err != nil {
		log.Fatalf("failed to seed identity: %v", err)
	}

	cart := []entity.CartItem{
		{
			ProductID: "prod-1001",
			Name:      "Wireless Headphones",
			UnitPrice: 89.99,
			Quantity:  1,
			StoreID:   "store-1",
			StoreName: "Audio House",
			Currency:  "USD",
		},
		{
			ProductID: "prod-1002",
			Name:      "USB-C Cable 2m",
			UnitPrice: 9.50,
			Quantity:  3,
			StoreID:   "store-2",
			StoreName: "Cable Corner",
			Currency:  "USD",
		},
	}
	if err := storage.SaveJSON(ctx, adapter, application.CartSnapshotKey, cart); err != nil {
		log.Fatalf("failed to seed cart: %v", err)
	}

	wishlist := []entity.WishlistItem{
		{ID: "prod-2001", Name: "Mechanical Keyboard", Price: 129.00, StoreID: "store-1"},
	}
	if err := storage.SaveJSON(ctx, adapter, application.WishlistSnapshotKey, wishlist); err != nil {
		log.Fatalf("failed to seed wishlist: %v", err)
	}

	fmt.Printf("seeded state dir %s: identity=%s cart_lines=%d wishlist=%d\n",
		cfg.StateDir, buyer.Email, len(cart), len(wishlist))
}
