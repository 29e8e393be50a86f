package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

// Transport holds the middlewares mounted by the router. Global ones apply to
// every route, Auth only to the journal API.
type Transport struct {
	Global []Middleware
	Auth   Middleware
}

func NewTransport(auth Middleware, global ...Middleware) *Transport {
	return &Transport{
		Global: global,
		Auth:   auth,
	}
}

func (t *Transport) GetMiddlewares() []interface{} {
	var handlers []interface{}
	for _, middleware := range t.Global {
		handlers = append(handlers, middleware.Middleware())
	}
	return handlers
}

func (t *Transport) RegisterMiddleware(middleware Middleware) {
	t.Global = append(t.Global, middleware)
}
