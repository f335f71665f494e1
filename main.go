package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/riquelima/gourmetgo/auth"
	"github.com/riquelima/gourmetgo/cart"
	"github.com/riquelima/gourmetgo/config"
	cartControllers "github.com/riquelima/gourmetgo/controllers/cart"
	orderControllers "github.com/riquelima/gourmetgo/controllers/order"
	"github.com/riquelima/gourmetgo/models"
	"github.com/riquelima/gourmetgo/routes"
	"github.com/riquelima/gourmetgo/storage"
	"github.com/riquelima/gourmetgo/store"
	"github.com/riquelima/gourmetgo/worker"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	// Init datastore
	st := initStore(cfg)

	// Carts and login sessions live in a key-value storage, memory by
	// default, JSON files when STORAGE_DIR is set.
	kv := initStorage(cfg)
	carts := cart.NewManager(kv)
	authSvc := auth.NewService(st, kv, cfg.JWTSecret)

	hub := orderControllers.NewHub()

	// Background order simulator
	sim := worker.NewSimulator(st, hub, orderControllers.EventOrderCreated,
		cfg.SimulatorInterval, cfg.SimulatorChance)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sim.Run(ctx)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", cartControllers.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Register routes
	routes.SetupRoutes(r, routes.Deps{
		Store: st,
		Carts: carts,
		Auth:  authSvc,
		Hub:   hub,
	})

	log.Println("✅ Server running on port:", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func initStore(cfg config.Config) *store.Store {
	opts := []store.Option{store.WithLatency(cfg.MockDelay)}
	if cfg.StrictStatusFlow {
		opts = append(opts, store.WithPolicy(models.ForwardOnlyStatus{}))
	}

	st, err := store.Open(cfg.DatabaseDSN, opts...)
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}
	if err := st.Seed(cfg.MockPassword); err != nil {
		log.Fatalf("❌ Failed to seed database: %v", err)
	}
	log.Println("✅ Database ready")
	return st
}

func initStorage(cfg config.Config) storage.Storage {
	if cfg.StorageDir == "" {
		return storage.NewMemory()
	}
	kv, err := storage.NewFile(cfg.StorageDir)
	if err != nil {
		log.Fatalf("❌ Failed to open storage dir: %v", err)
	}
	log.Println("✅ Persisting carts and sessions to", cfg.StorageDir)
	return kv
}
