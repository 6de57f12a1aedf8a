package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "FlowVet/api/gen/v1"
	"FlowVet/internal/config"
	"FlowVet/internal/logger"
	"FlowVet/internal/query"
	"FlowVet/internal/validate"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
)

// QueryServiceServer serves the persisted flow and audit data over gRPC.
type QueryServiceServer struct {
	v1.UnimplementedQueryServiceServer
	querier query.Querier
	log     zerolog.Logger
}

func (s *QueryServiceServer) HealthCheck(ctx context.Context, req *v1.HealthCheckRequest) (*v1.HealthCheckResponse, error) {
	s.log.Info().Msg("Received HealthCheck request")
	return &v1.HealthCheckResponse{Status: "ok"}, nil
}

func (s *QueryServiceServer) AggregateFlows(ctx context.Context, req *v1.AggregationRequest) (*v1.QueryTotalCountsResponse, error) {
	s.log.Info().Str("task", req.TaskName).Msg("Received AggregateFlows request")
	return s.querier.AggregateFlows(ctx, req)
}

func (s *QueryServiceServer) TraceFlow(ctx context.Context, req *v1.TraceFlowRequest) (*v1.TraceFlowResponse, error) {
	s.log.Info().Str("task", req.TaskName).Interface("keys", req.FlowKeys).Msg("Received TraceFlow request")
	result, err := s.querier.TraceFlow(ctx, req)
	if err != nil {
		return nil, err
	}
	return &v1.TraceFlowResponse{Lifecycle: result}, nil
}

func (s *QueryServiceServer) RejectSummary(ctx context.Context, req *v1.RejectSummaryRequest) (*v1.RejectSummaryResponse, error) {
	s.log.Info().Str("field", req.Field).Msg("Received RejectSummary request")
	return s.querier.RejectSummary(ctx, req)
}

// ValidationServiceServer exposes the validator registry over gRPC.
type ValidationServiceServer struct {
	v1.UnimplementedValidationServiceServer
	log zerolog.Logger
}

func (s *ValidationServiceServer) Validate(ctx context.Context, req *v1.ValidateRequest) (*v1.ValidateResponse, error) {
	validator, err := validate.Lookup(req.Validator)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(req.Value); err != nil {
		return &v1.ValidateResponse{Valid: false, Reason: err.Error()}, nil
	}
	return &v1.ValidateResponse{Valid: true}, nil
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	zl = logger.WithComponent(zl, "fv-api")

	// Find the first enabled ClickHouse writer config
	var chCfg *config.ClickHouseConfig
	for _, writerDef := range cfg.Engine.Writers {
		if writerDef.Enabled && writerDef.Type == "clickhouse" {
			chCfg = &writerDef.ClickHouse
			break
		}
	}
	if chCfg == nil {
		zl.Fatal().Msg("No enabled ClickHouse writer found in config. API server cannot start.")
	}

	// Initialize querier with the found config
	querier, err := query.NewClickHouseQuerier(*chCfg)
	if err != nil {
		zl.Fatal().Err(err).Msg("Failed to create querier")
	}

	queryService := &QueryServiceServer{querier: querier, log: zl}
	validationService := &ValidationServiceServer{log: zl}

	// Run gRPC server
	grpcServer := grpc.NewServer()
	v1.RegisterQueryServiceServer(grpcServer, queryService)
	v1.RegisterValidationServiceServer(grpcServer, validationService)

	lis, err := net.Listen("tcp", cfg.API.GrpcListenAddr)
	if err != nil {
		zl.Fatal().Err(err).Str("addr", cfg.API.GrpcListenAddr).Msg("Failed to listen")
	}
	go func() {
		zl.Info().Str("addr", cfg.API.GrpcListenAddr).Msg("gRPC API server starting")
		if err := grpcServer.Serve(lis); err != nil {
			zl.Fatal().Err(err).Msg("Failed to serve gRPC")
		}
	}()

	// Run HTTP server
	httpServer := &http.Server{
		Addr:    cfg.API.HTTPListenAddr,
		Handler: newRouter(queryService, validationService),
	}

	go func() {
		zl.Info().Str("addr", cfg.API.HTTPListenAddr).Msg("HTTP API server starting")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info().Msg("Servers shutting down...")

	grpcServer.GracefulStop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		zl.Error().Err(err).Msg("HTTP server forced to shutdown")
	}

	zl.Info().Msg("All servers exited")
}
