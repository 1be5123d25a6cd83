package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
)

// corsHeaders are the cross-origin headers the API answers with. The
// method list matches the routes the API actually serves; sgpctl talks
// same-origin, so the open origin only matters for browser tooling.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":   "*",
	"Access-Control-Allow-Methods":  "GET, POST, PUT, DELETE, OPTIONS",
	"Access-Control-Allow-Headers":  "Content-Type, Authorization, X-Request-ID",
	"Access-Control-Expose-Headers": "X-Request-ID",
	"Access-Control-Max-Age":        "86400",
}

// CORS answers preflight requests and stamps the cross-origin headers
// on every response.
func CORS() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		for k, v := range corsHeaders {
			c.Response.Header.Set(k, v)
		}

		if string(c.Method()) == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next(ctx)
	}
}
