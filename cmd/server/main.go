package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/minhvu/tech-store-backend/internal/config"
	"github.com/minhvu/tech-store-backend/internal/database"
	"github.com/minhvu/tech-store-backend/internal/handler"
	"github.com/minhvu/tech-store-backend/internal/queue"
	"github.com/minhvu/tech-store-backend/internal/repository"
	"github.com/minhvu/tech-store-backend/internal/router"
	"github.com/minhvu/tech-store-backend/internal/schema"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer db.Close()

	// Bring the schema up to date and apply the seed catalog before the
	// listener starts, so reads never hit a half-migrated schema.  Failure
	// is logged but not fatal: a previous run may have left a serviceable
	// schema, and catalog reads should keep working in that case.
	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := schema.Init(initCtx, db); err != nil {
		log.Printf("schema init: %v (continuing)", err)
	} else {
		log.Printf("schema init: ok")
	}
	cancel()

	products := repository.NewProductRepo(db)
	users := repository.NewUserRepo(db)

	catalogH := handler.NewCatalogHandler(products)
	authH := handler.NewAuthHandler(cfg, users)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterBase(e)
	router.RegisterCatalog(e, catalogH)
	router.RegisterAuth(e, authH, config.LoadRateLimitConfig(), rdb)

	// Welcome-mail consumer runs for the life of the process and reconnects
	// on broker failures; it never takes the API down.
	go func() {
		if err := queue.StartRegistrationConsumer(); err != nil {
			log.Printf("registration consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
