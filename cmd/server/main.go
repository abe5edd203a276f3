package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shop_backend/internal/config"
	"shop_backend/internal/es"
	"shop_backend/internal/handlers"
	"shop_backend/internal/logging"
	"shop_backend/internal/mykafka"
	"shop_backend/internal/order"
	"shop_backend/internal/token"

	mwauth "shop_backend/internal/middleware/auth"
	loggingmw "shop_backend/internal/middleware/logging"
	httpserver "shop_backend/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	prod, err := mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	if err != nil {
		log.Printf("kafka disabled: %v", err)
		prod = &mykafka.Producer{}
	}

	esClient, err := es.NewClient(configuration)
	if err != nil {
		log.Fatal(err)
	}

	tokens := &token.Service{Secret: []byte(configuration.JWT_SECRET)}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		DB:         db,
		Auth:       &mwauth.Middleware{Tokens: tokens},
		Users:      &handlers.UserHandler{DB: db, Tokens: tokens, Producer: prod},
		Products:   &handlers.ProductHandler{DB: db, Producer: prod},
		Categories: &handlers.CategoryHandler{DB: db},
		Orders:     &handlers.OrderHandler{Svc: &order.Service{Repo: &order.GormRepo{DB: db}}, Tokens: tokens, Producer: prod},
		Messages:   &handlers.MessageHandler{DB: db, Producer: prod},
		Search:     &handlers.SearchHandler{ES: esClient, Index: configuration.ES_INDEX},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
