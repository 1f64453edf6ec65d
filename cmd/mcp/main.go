// Product Flow MCP server.
//
// Exposes the idea backlog and knowledge base to AI assistants over stdio.
// All tools are read-only; the API server remains the only writer.
package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/mark3labs/mcp-go/server"

	"github.com/routeburn/product-flow/internal/mcp"
	"github.com/routeburn/product-flow/internal/repository"
	"github.com/routeburn/product-flow/internal/services"
	"github.com/routeburn/product-flow/pkg/config"
	"github.com/routeburn/product-flow/pkg/database"
	"github.com/routeburn/product-flow/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	// The logger writes to stderr; stdout belongs to the MCP transport.
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := database.OpenPostgres(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	ideaRepo := repository.NewIdeaRepository(db, cfg.StoreTimeout)
	portfolioRepo := repository.NewPortfolioRepository(db, cfg.StoreTimeout)
	kbRepo := repository.NewKBRepository(db, cfg.StoreTimeout)

	s := mcp.New(mcp.Dependencies{
		Ideas:      services.NewIdeaService(ideaRepo),
		Portfolios: services.NewPortfolioService(portfolioRepo),
		KB:         services.NewKBService(kbRepo),
	})

	log.Info("MCP server starting on stdio")
	if err := server.ServeStdio(s); err != nil {
		log.Fatal("MCP server exited", zap.Error(err))
	}
}
