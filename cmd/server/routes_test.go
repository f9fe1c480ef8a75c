package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"paletto-cards.backend/internal/interfaces/http/handlers"
)

func TestRegisterAPIRoutes_Table(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerAPIRoutes(r, routeDeps{
		memberHandler: handlers.NewMemberHandler(nil),
		authHandler:   handlers.NewAuthHandler(nil),
		exportHandler: handlers.NewExportHandler(nil),
		sessionAuth:   func(c *gin.Context) { c.Next() },
	})

	want := map[string]bool{
		"GET /api/members":           false,
		"GET /api/members/:id":       false,
		"GET /api/members/:id/vcard": false,
		"POST /api/members":          false,
		"PUT /api/members/:id":       false,
		"DELETE /api/members/:id":    false,
		"POST /api/auth":             false,
		"PUT /api/auth":              false,
		"GET /metrics":               false,
	}
	for _, route := range r.Routes() {
		key := route.Method + " " + route.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for key, seen := range want {
		if !seen {
			t.Errorf("route not registered: %s", key)
		}
	}
}
