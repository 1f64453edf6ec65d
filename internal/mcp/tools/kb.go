package tools

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/routeburn/product-flow/internal/services"
	appErr "github.com/routeburn/product-flow/pkg/errors"
)

// ListKBDocumentsTool handles the list_kb_documents MCP tool.
type ListKBDocumentsTool struct {
	docs services.KBService
}

func NewListKBDocumentsTool(docs services.KBService) *ListKBDocumentsTool {
	return &ListKBDocumentsTool{docs: docs}
}

// Definition returns the MCP tool definition for list_kb_documents.
func (t *ListKBDocumentsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_kb_documents",
		mcp.WithDescription(
			"List knowledge base documents for a given portfolio and product, newest first. "+
				"Returns titles and ids; use get_kb_document for content.",
		),
		mcp.WithString("portfolioCode",
			mcp.Required(),
			mcp.Description("Portfolio code the product belongs to"),
		),
		mcp.WithString("productCode",
			mcp.Required(),
			mcp.Description("Product code whose documents to list"),
		),
	)
}

type kbSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	UpdatedAt string `json:"updatedAt"`
}

// Handle processes the list_kb_documents tool call.
func (t *ListKBDocumentsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pf := req.GetString("portfolioCode", "")
	pc := req.GetString("productCode", "")
	if pf == "" || pc == "" {
		return mcp.NewToolResultError("'portfolioCode' and 'productCode' are required"), nil
	}

	items, err := t.docs.List(ctx, pf, pc)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing documents: %v", err)), nil
	}

	summaries := make([]kbSummary, 0, len(items))
	for _, doc := range items {
		summaries = append(summaries, kbSummary{
			ID:        doc.ID.String(),
			Title:     doc.Title,
			UpdatedAt: doc.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	return jsonResult(map[string]any{
		"portfolioCode": pf,
		"productCode":   pc,
		"count":         len(summaries),
		"documents":     summaries,
	}), nil
}

// GetKBDocumentTool handles the get_kb_document MCP tool.
type GetKBDocumentTool struct {
	docs services.KBService
}

func NewGetKBDocumentTool(docs services.KBService) *GetKBDocumentTool {
	return &GetKBDocumentTool{docs: docs}
}

// Definition returns the MCP tool definition for get_kb_document.
func (t *GetKBDocumentTool) Definition() mcp.Tool {
	return mcp.NewTool("get_kb_document",
		mcp.WithDescription("Get one knowledge base document by id, including its full content."),
		mcp.WithString("documentId",
			mcp.Required(),
			mcp.Description("Document id from list_kb_documents"),
		),
	)
}

// Handle processes the get_kb_document tool call.
func (t *GetKBDocumentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr := req.GetString("documentId", "")
	if idStr == "" {
		return mcp.NewToolResultError("'documentId' is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid document id %q", idStr)), nil
	}

	doc, err := t.docs.Get(ctx, id)
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return mcp.NewToolResultText(fmt.Sprintf("Document %s not found", idStr)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("fetching document: %v", err)), nil
	}

	return jsonResult(map[string]any{
		"id":            doc.ID.String(),
		"title":         doc.Title,
		"content":       doc.Content,
		"portfolioCode": doc.PortfolioCode,
		"productCode":   doc.ProductCode,
		"createdAt":     doc.CreatedAt,
		"updatedAt":     doc.UpdatedAt,
	}), nil
}
