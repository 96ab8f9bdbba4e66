// Package mockapi is a development stand-in for the marketplace backend. It
// serves the same routes and response envelopes from an in-memory fixture
// store, so the client and controllers can run without the real service.
package mockapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/logger"
)

type Server struct {
	router *echo.Echo
	store  *Store
	tokens *tokenIssuer
}

func NewServer(jwtSecret string) *Server {
	svc := &Server{
		router: echo.New(),
		store:  NewSeededStore(),
		tokens: newTokenIssuer(jwtSecret),
	}
	svc.router.HideBanner = true
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	api := svc.router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", svc.register)
	auth.POST("/login", svc.login)
	auth.GET("/profile", svc.profile, svc.authMiddleware)
	auth.POST("/logout", svc.logout, svc.authMiddleware)
	auth.POST("/refresh", svc.refresh, svc.authMiddleware)

	market := api.Group("/market", svc.authMiddleware)
	market.GET("/posts", svc.listPosts)
	market.POST("/posts", svc.createPost)
	market.GET("/posts/:id", svc.getPost)
	market.PUT("/posts/:id", svc.updatePost)
	market.DELETE("/posts/:id", svc.deletePost)
	market.POST("/posts/:id/approve", svc.approvePost, svc.adminMiddleware)
	market.POST("/posts/:id/interest", svc.expressInterest)
	market.GET("/posts/:id/interests", svc.postInterests)
	market.POST("/interests/:id/accept", svc.acceptInterest)
	market.GET("/stats", svc.marketStats)
	market.GET("/needs", svc.listNeeds)

	sacco := api.Group("/sacco", svc.authMiddleware)
	sacco.GET("/saccos", svc.listSaccos)
	sacco.POST("/saccos", svc.createSacco, svc.adminMiddleware)
	sacco.GET("/saccos/:id", svc.getSacco)
	sacco.PUT("/saccos/:id", svc.updateSacco, svc.adminMiddleware)
	sacco.POST("/saccos/:id/deactivate", svc.deactivateSacco, svc.adminMiddleware)
	sacco.POST("/saccos/:id/join", svc.joinSacco)
	sacco.GET("/saccos/:id/members", svc.saccoMembers)
	sacco.GET("/saccos/:id/loans", svc.saccoLoans)
	sacco.GET("/saccos/:id/loan-applications", svc.loanApplications)
	sacco.POST("/saccos/:id/loan-applications", svc.applyForLoan)
	sacco.PUT("/loan-applications/:id/status", svc.updateLoanStatus, svc.adminMiddleware)
	sacco.GET("/memberships", svc.memberships)

	agro := api.Group("/agroclimate", svc.authMiddleware)
	agro.GET("/regions", svc.listRegions)
	agro.POST("/regions", svc.createRegion, svc.adminMiddleware)
	agro.GET("/regions/:id/weather", svc.regionWeather)
	agro.GET("/regions/:id/recommendations", svc.regionRecommendations)
	agro.GET("/recommendations", svc.allRecommendations)
	agro.POST("/recommendations", svc.createRecommendation, svc.adminMiddleware)

	dashboard := api.Group("/dashboard", svc.authMiddleware)
	dashboard.GET("/user/overview", svc.userOverview)
	dashboard.GET("/admin/overview", svc.adminOverview, svc.adminMiddleware)

	return svc
}

func (svc *Server) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *Server) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Handler exposes the router for httptest servers.
func (svc *Server) Handler() http.Handler {
	return svc.router
}
