// Package mcp wires the MCP tool handlers and creates the server instance.
//
// This is the composition root: it takes the already-constructed services
// and registers the read-only tools against them. No business logic lives
// here, only wiring.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/routeburn/product-flow/internal/mcp/tools"
	"github.com/routeburn/product-flow/internal/services"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Dependencies holds the services the tools read from.
type Dependencies struct {
	Ideas      services.IdeaService
	Portfolios services.PortfolioService
	KB         services.KBService
}

// New creates and configures the MCP server with all tools registered.
func New(dep Dependencies) *server.MCPServer {
	s := server.NewMCPServer(
		"product-flow",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	listIdeas := tools.NewListIdeasTool(dep.Ideas)
	s.AddTool(listIdeas.Definition(), listIdeas.Handle)

	getIdea := tools.NewGetIdeaTool(dep.Ideas)
	s.AddTool(getIdea.Definition(), getIdea.Handle)

	listPortfolios := tools.NewListPortfoliosTool(dep.Portfolios)
	s.AddTool(listPortfolios.Definition(), listPortfolios.Handle)

	listDocs := tools.NewListKBDocumentsTool(dep.KB)
	s.AddTool(listDocs.Definition(), listDocs.Handle)

	getDoc := tools.NewGetKBDocumentTool(dep.KB)
	s.AddTool(getDoc.Definition(), getDoc.Handle)

	return s
}

func serverInstructions() string {
	return "Read-only access to the product idea backlog and knowledge base. " +
		"Start with list_portfolios to discover portfolio and product codes, " +
		"then use list_ideas, get_idea, list_kb_documents, and get_kb_document. " +
		"These tools never modify anything."
}
