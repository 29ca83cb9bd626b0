// Package router assembles the gin engine: middleware, observability
// endpoints and the versioned API routes.
package router

import (
	"net/http"
	"net/url"
	"strings"

	docs "github.com/atelier-luz/backend/api"
	"github.com/atelier-luz/backend/internal/config"
	v1 "github.com/atelier-luz/backend/internal/controllers/v1"
	"github.com/atelier-luz/backend/internal/events"
	"github.com/atelier-luz/backend/internal/httperror"
	"github.com/atelier-luz/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

func Config(cfg config.Config) (*gin.Engine, error) {
	apiURL, err := url.Parse(cfg.APIURL)
	if err != nil {
		return nil, err
	}

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperror.NewFromString("This HTTP method is not allowed for the endpoint you called"))
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if cfg.CORSAllowOrigins != "" {
		log.Debug().Str("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(cfg.CORSAllowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	if err := registerPrometheusMetrics(); err != nil {
		return nil, err
	}
	r.Use(MetricsMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", apiURL.String()).Str("Host", apiURL.Host).Str("Path", apiURL.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = apiURL.Host
	docs.SwaggerInfo.BasePath = apiURL.Path
	docs.SwaggerInfo.Title = "Atelier Luz"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for Atelier Luz, the back-office of a photography studio."

	return r, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows tests to attach the routes to their
// own engine.
func AttachRoutes(cfg config.Config, group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 setup
	apiV1 := group.Group("/v1")
	{
		apiV1.GET("", GetV1)
		apiV1.OPTIONS("", OptionsV1)
		apiV1.GET("/events", events.Stream(events.Default))
	}

	v1.RegisterContractRoutes(apiV1.Group("/contracts"))
	v1.RegisterInstallmentRoutes(apiV1.Group("/installments"))
	v1.RegisterEnvelopeRoutes(apiV1.Group("/envelopes"))
	v1.RegisterBudgetRoutes(apiV1.Group("/budget"))
	v1.RegisterProductRoutes(apiV1.Group("/products"))
	v1.RegisterOrderRoutes(apiV1.Group("/orders"))
	v1.RegisterDashboardRoutes(apiV1.Group("/dashboard"))
	v1.RegisterCalendarRoutes(apiV1.Group("/calendar"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"/docs/index.html"` // Swagger API documentation
	Version string `json:"version" example:"/version"`      // Endpoint returning the version of the backend
	V1      string `json:"v1" example:"/v1"`                // List endpoint for all v1 endpoints
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    "/docs/index.html",
			Version: "/version",
			V1:      "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Contracts    string `json:"contracts" example:"/v1/contracts"`       // URL of contract list endpoint
	Installments string `json:"installments" example:"/v1/installments"` // URL of installment list endpoint
	Envelopes    string `json:"envelopes" example:"/v1/envelopes"`       // URL of envelope list endpoint
	Budget       string `json:"budget" example:"/v1/budget"`             // URL of the budget summary endpoint
	Products     string `json:"products" example:"/v1/products"`         // URL of product list endpoint
	Orders       string `json:"orders" example:"/v1/orders"`             // URL of order list endpoint
	Dashboard    string `json:"dashboard" example:"/v1/dashboard"`       // URL of the dashboard endpoint
	Calendar     string `json:"calendar" example:"/v1/calendar"`         // URL of the calendar endpoint
	Events       string `json:"events" example:"/v1/events"`             // URL of the websocket event stream
}

// GetV1 returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Contracts:    "/v1/contracts",
			Installments: "/v1/installments",
			Envelopes:    "/v1/envelopes",
			Budget:       "/v1/budget",
			Products:     "/v1/products",
			Orders:       "/v1/orders",
			Dashboard:    "/v1/dashboard",
			Calendar:     "/v1/calendar",
			Events:       "/v1/events",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
