package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vfg2006/ads-ops-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Middlewares específicos da rota
}

type Router struct {
	mux *chi.Mux
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) *Router {
	mux := chi.NewRouter()
	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Método não permitido", nil)
	})

	router := &Router{mux: mux}
	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// AddRoutes registra as rotas aplicando os middlewares na ordem declarada
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.mux.With(route.Middlewares...).Method(route.Method, route.Path, route.Handler)
	}
}

// Param devolve o parâmetro de rota
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
