package tools

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/routeburn/product-flow/internal/models"
	"github.com/routeburn/product-flow/internal/services"
	appErr "github.com/routeburn/product-flow/pkg/errors"
)

// ListIdeasTool handles the list_ideas MCP tool.
type ListIdeasTool struct {
	ideas services.IdeaService
}

func NewListIdeasTool(ideas services.IdeaService) *ListIdeasTool {
	return &ListIdeasTool{ideas: ideas}
}

// Definition returns the MCP tool definition for list_ideas.
func (t *ListIdeasTool) Definition() mcp.Tool {
	return mcp.NewTool("list_ideas",
		mcp.WithDescription(
			"List product ideas for a given portfolio and product, in ascending idea number order. "+
				"Returns a compact summary per idea; use get_idea for full details.",
		),
		mcp.WithString("portfolioCode",
			mcp.Required(),
			mcp.Description("Portfolio code the product belongs to"),
		),
		mcp.WithString("productCode",
			mcp.Required(),
			mcp.Description("Product code whose backlog to list"),
		),
		mcp.WithString("status",
			mcp.Description("Optional filter: backlog, firstLevel, secondLevel, scaling, or failed"),
		),
	)
}

type ideaSummary struct {
	IdeaNumber       int    `json:"ideaNumber"`
	Name             string `json:"name"`
	ValidationStatus string `json:"validationStatus"`
	Upvotes          int    `json:"upvotes"`
}

// Handle processes the list_ideas tool call.
func (t *ListIdeasTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pf := req.GetString("portfolioCode", "")
	pc := req.GetString("productCode", "")
	if pf == "" || pc == "" {
		return mcp.NewToolResultError("'portfolioCode' and 'productCode' are required"), nil
	}

	status := req.GetString("status", "")
	if status != "" && !models.ValidationStatus(status).Known() {
		return mcp.NewToolResultError(fmt.Sprintf("unknown status %q", status)), nil
	}

	items, err := t.ideas.List(ctx, pf, pc)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing ideas: %v", err)), nil
	}

	summaries := make([]ideaSummary, 0, len(items))
	for _, idea := range items {
		if status != "" && string(idea.ValidationStatus) != status {
			continue
		}
		summaries = append(summaries, ideaSummary{
			IdeaNumber:       idea.IdeaNumber,
			Name:             idea.Name,
			ValidationStatus: string(idea.ValidationStatus),
			Upvotes:          idea.Upvotes,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].IdeaNumber < summaries[j].IdeaNumber })

	return jsonResult(map[string]any{
		"portfolioCode": pf,
		"productCode":   pc,
		"count":         len(summaries),
		"ideas":         summaries,
	}), nil
}

// GetIdeaTool handles the get_idea MCP tool.
type GetIdeaTool struct {
	ideas services.IdeaService
}

func NewGetIdeaTool(ideas services.IdeaService) *GetIdeaTool {
	return &GetIdeaTool{ideas: ideas}
}

// Definition returns the MCP tool definition for get_idea.
func (t *GetIdeaTool) Definition() mcp.Tool {
	return mcp.NewTool("get_idea",
		mcp.WithDescription(
			"Get one product idea by its number within a portfolio and product, "+
				"including hypothesis, source, and full status history.",
		),
		mcp.WithString("portfolioCode",
			mcp.Required(),
			mcp.Description("Portfolio code the product belongs to"),
		),
		mcp.WithString("productCode",
			mcp.Required(),
			mcp.Description("Product code the idea belongs to"),
		),
		mcp.WithNumber("ideaNumber",
			mcp.Required(),
			mcp.Description("Idea number within the product"),
		),
	)
}

type ideaDetail struct {
	IdeaNumber       int                         `json:"ideaNumber"`
	Name             string                      `json:"name"`
	Hypothesis       string                      `json:"hypothesis"`
	ValidationStatus string                      `json:"validationStatus"`
	Source           string                      `json:"source,omitempty"`
	Upvotes          int                         `json:"upvotes"`
	PortfolioCode    string                      `json:"portfolioCode"`
	ProductCode      string                      `json:"productCode"`
	StatusHistory    []models.StatusHistoryEntry `json:"statusHistory"`
	CreatedAt        time.Time                   `json:"createdAt"`
	UpdatedAt        time.Time                   `json:"updatedAt"`
}

// Handle processes the get_idea tool call. An unknown idea number is an
// answer, not a failure: the assistant gets a plain statement it can relay.
func (t *GetIdeaTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pf := req.GetString("portfolioCode", "")
	pc := req.GetString("productCode", "")
	n := intArg(req, "ideaNumber", 0)
	if pf == "" || pc == "" || n == 0 {
		return mcp.NewToolResultError("'portfolioCode', 'productCode', and 'ideaNumber' are required"), nil
	}

	idea, err := t.ideas.GetByNumber(ctx, pf, pc, n)
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return mcp.NewToolResultText(fmt.Sprintf("Idea #%d not found in %s/%s", n, pf, pc)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("fetching idea: %v", err)), nil
	}

	history := models.ParseStatusHistory(idea.StatusHistory)
	if history == nil {
		history = []models.StatusHistoryEntry{}
	}
	return jsonResult(ideaDetail{
		IdeaNumber:       idea.IdeaNumber,
		Name:             idea.Name,
		Hypothesis:       idea.Hypothesis,
		ValidationStatus: string(idea.ValidationStatus),
		Source:           string(idea.Source),
		Upvotes:          idea.Upvotes,
		PortfolioCode:    idea.PortfolioCode,
		ProductCode:      idea.ProductCode,
		StatusHistory:    history,
		CreatedAt:        idea.CreatedAt,
		UpdatedAt:        idea.UpdatedAt,
	}), nil
}
