package locale

import (
	"context"

	"github.com/labstack/echo/v4"
)

const HeaderContentLanguage = "Content-Language"

// ContextKey is the echo.Context key holding the resolved language code.
const ContextKey = "lang"

type ctxKey struct{}

func ToContext(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKey{}, lang)
}

// FromContext returns the language stored by Middleware, if any.
func FromContext(ctx context.Context) (string, bool) {
	lang, ok := ctx.Value(ctxKey{}).(string)
	return lang, ok
}

// Middleware resolves the request language from the URL path and sets the
// Content-Language header.
func Middleware(t *Table) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			lang := t.Resolve(req.URL.Path)

			c.SetRequest(req.WithContext(ToContext(req.Context(), lang)))
			c.Set(ContextKey, lang)
			c.Response().Header().Set(HeaderContentLanguage, lang)

			return next(c)
		}
	}
}
