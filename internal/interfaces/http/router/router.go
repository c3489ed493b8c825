// Package router mounts the HTTP handlers on a gin engine.
package router

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// DefaultBasePath is the prefix of every API route
const DefaultBasePath = "/api"

// RouteRegistrar mounts a handler's routes on a group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration
type Router struct {
	engine      *gin.Engine
	basePath    string
	registrars  []RouteRegistrar
	rootRoutes  map[string]gin.HandlerFunc
	swagger     bool
	middlewares []gin.HandlerFunc
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithBasePath sets the API prefix
func WithBasePath(path string) RouterOption {
	return func(r *Router) {
		r.basePath = path
	}
}

// WithSwagger serves the API docs under /swagger when enabled
func WithSwagger(enabled bool) RouterOption {
	return func(r *Router) {
		r.swagger = enabled
	}
}

// WithGroupMiddleware adds middleware that only applies to the API group
func WithGroupMiddleware(middlewares ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.middlewares = append(r.middlewares, middlewares...)
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		basePath:   DefaultBasePath,
		rootRoutes: make(map[string]gin.HandlerFunc),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a RouteRegistrar mounted under the base path
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Root adds a GET route outside the base path, such as /health
func (r *Router) Root(path string, handler gin.HandlerFunc) *Router {
	r.rootRoutes[path] = handler
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	paths := make([]string, 0, len(r.rootRoutes))
	for path := range r.rootRoutes {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		r.engine.GET(path, r.rootRoutes[path])
	}

	if r.swagger {
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.engine.Group(r.basePath, r.middlewares...)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Rota não encontrada."})
	})
}

// BasePath returns the API prefix
func (r *Router) BasePath() string {
	return r.basePath
}

// RouteFunc adapts a plain function to RouteRegistrar
type RouteFunc func(rg *gin.RouterGroup)

// RegisterRoutes implements RouteRegistrar
func (f RouteFunc) RegisterRoutes(rg *gin.RouterGroup) {
	f(rg)
}
