package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/routeburn/product-flow/internal/models"
	"github.com/routeburn/product-flow/internal/services"
)

// ListPortfoliosTool handles the list_portfolios MCP tool.
type ListPortfoliosTool struct {
	portfolios services.PortfolioService
}

func NewListPortfoliosTool(portfolios services.PortfolioService) *ListPortfoliosTool {
	return &ListPortfoliosTool{portfolios: portfolios}
}

// Definition returns the MCP tool definition for list_portfolios.
func (t *ListPortfoliosTool) Definition() mcp.Tool {
	return mcp.NewTool("list_portfolios",
		mcp.WithDescription(
			"List all portfolios with their organization, owners, and products. "+
				"Use the portfolio and product codes from here with the idea and knowledge base tools.",
		),
	)
}

type portfolioSummary struct {
	Code             string           `json:"code"`
	OrganizationName string           `json:"organizationName"`
	Name             string           `json:"name"`
	Owners           []string         `json:"owners"`
	Products         []models.Product `json:"products"`
}

// Handle processes the list_portfolios tool call.
func (t *ListPortfoliosTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := t.portfolios.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing portfolios: %v", err)), nil
	}

	summaries := make([]portfolioSummary, 0, len(items))
	for _, pf := range items {
		products := pf.ParseProducts()
		if products == nil {
			products = []models.Product{}
		}
		owners := []string(pf.Owners)
		if owners == nil {
			owners = []string{}
		}
		summaries = append(summaries, portfolioSummary{
			Code:             pf.Code,
			OrganizationName: pf.OrganizationName,
			Name:             pf.Name,
			Owners:           owners,
			Products:         products,
		})
	}

	return jsonResult(map[string]any{
		"count":      len(summaries),
		"portfolios": summaries,
	}), nil
}
