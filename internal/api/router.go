package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/routeburn/product-flow/internal/api/handlers"
	mw "github.com/routeburn/product-flow/internal/api/middleware"
)

type Dependencies struct {
	HMACSecret        []byte
	AuthHandler       *handlers.AuthHandler
	PortfoliosHandler *handlers.PortfoliosHandler
	IdeasHandler      *handlers.IdeasHandler
	KBHandler         *handlers.KBHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// Built-in middleware
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(10, 20))
	r.Use(chimid.Compress(5))

	// Health endpoints
	hh := handlers.NewHealthHandler()
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	r.Route("/api/v1", func(api chi.Router) {
		// Auth routes (public)
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/login", dep.AuthHandler.Login)
			ar.Post("/logout", dep.AuthHandler.Logout)
		})

		// Everything else sits behind the studio session cookie.
		api.Group(func(protected chi.Router) {
			protected.Use(mw.Session(dep.HMACSecret))

			protected.Get("/auth/me", dep.AuthHandler.Me)

			protected.Route("/portfolios", func(pr chi.Router) {
				pr.Get("/", dep.PortfoliosHandler.List)
				pr.Post("/", dep.PortfoliosHandler.Create)
				pr.Get("/{portfolioCode}", dep.PortfoliosHandler.Get)
				pr.Post("/{portfolioCode}/products", dep.PortfoliosHandler.AddProduct)
				pr.Post("/{portfolioCode}/owners", dep.PortfoliosHandler.AddOwner)

				pr.Route("/{portfolioCode}/products/{productCode}", func(pp chi.Router) {
					pp.Route("/ideas", func(ir chi.Router) {
						ir.Get("/", dep.IdeasHandler.List)
						ir.Post("/", dep.IdeasHandler.Create)
						ir.Get("/funnel", dep.IdeasHandler.Funnel)
						ir.Get("/{ideaNumber}", dep.IdeasHandler.Get)
					})
					pp.Route("/kb", func(kr chi.Router) {
						kr.Get("/", dep.KBHandler.List)
						kr.Post("/", dep.KBHandler.Create)
					})
				})
			})

			protected.Route("/ideas", func(ir chi.Router) {
				ir.Patch("/{id}", dep.IdeasHandler.Update)
				ir.Post("/{id}/upvote", dep.IdeasHandler.Upvote)
			})

			protected.Route("/kb", func(kr chi.Router) {
				kr.Get("/{id}", dep.KBHandler.Get)
				kr.Patch("/{id}", dep.KBHandler.Update)
				kr.Delete("/{id}", dep.KBHandler.Delete)
			})
		})
	})

	return r
}
