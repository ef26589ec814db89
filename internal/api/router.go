package api

import (
	"net/http"

	"findoc-analyzer/internal/api/handler"
	"findoc-analyzer/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "findoc-analyzer/docs" // swagger docs registration
)

func RegisterRoutes(r *router.Router, h *handler.AnalyzeHandler) {
	r.GET("/", h.Root)
	r.POST("/analyze", h.Analyze)
	r.GET("/history", h.History)
	r.GET("/swagger/*", func(w http.ResponseWriter, req *http.Request) {
		httpSwagger.WrapHandler(w, req)
	})
}
