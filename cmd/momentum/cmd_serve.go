// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/AleutianAI/MomentumLocal/pkg/logging"
	"github.com/AleutianAI/MomentumLocal/services/planner/config"
	"github.com/AleutianAI/MomentumLocal/services/planner/middleware"
	"github.com/AleutianAI/MomentumLocal/services/planner/routes"
	"github.com/AleutianAI/MomentumLocal/services/planner/seed"
	"github.com/AleutianAI/MomentumLocal/services/planner/store"
	"github.com/AleutianAI/MomentumLocal/services/planner/store/badgerdb"
)

// initTracer wires the OTLP trace exporter when a collector endpoint
// is configured. Returns a nil cleanup when tracing is disabled.
func initTracer() (func(context.Context), error) {
	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint == "" {
		return nil, nil
	}

	ctx := context.Background()
	conn, err := grpc.NewClient(otelEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("momentum-planner")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}, nil
}

// openStore constructs the document store selected by the
// configuration.
func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.StorageBackend == config.BackendBadger {
		dbCfg := badgerdb.DefaultConfig()
		dbCfg.Path = cfg.DataDir
		dbCfg.Logger = slog.Default()
		db, err := badgerdb.Open(dbCfg)
		if err != nil {
			return nil, err
		}
		return store.NewBadgerStore(db)
	}
	return store.NewFileStore(cfg.DataDir)
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(logging.Config{
		Level:   logging.ParseLevel(cfg.LogLevel),
		LogDir:  cfg.LogDir,
		Service: "planner",
	})
	defer logger.Close()
	slog.SetDefault(logger.Slog())

	slog.Info("starting momentum",
		"version", Version,
		"port", cfg.Port,
		"backend", cfg.StorageBackend,
		"data_dir", cfg.DataDir,
	)

	cleanup, err := initTracer()
	if err != nil {
		log.Fatalf("Failed to setup the OTLP tracer: %v", err)
	}
	if cleanup != nil {
		defer cleanup(context.Background())
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StorageBackend, err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	if err := seed.NewSeeder(st).Run(context.Background()); err != nil {
		log.Fatalf("Failed to seed initial data: %v", err)
	}

	router := gin.Default()
	if cleanup != nil {
		router.Use(otelgin.Middleware("momentum-planner"))
	}
	router.Use(middleware.CORS(cfg.CORSOrigin))
	router.Use(middleware.Metrics())

	routes.SetupRoutes(router, st)

	slog.Info("listening", "addr", ":"+cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
