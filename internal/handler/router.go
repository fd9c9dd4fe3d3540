package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Admin    *AdminAuth
	Contact  *ContactHandler
	Document *DocumentHandler
	News     *NewsHandler
	Site     *SiteHandler
	Health   *HealthHandler
}

type RouterOptions struct {
	AllowedOrigins []string
	SSL            bool
}

// NewRouter wires every route. Unmatched requests reach Site.Fallback through
// NoRoute, so the catch-all can never shadow an API route.
func NewRouter(h Handlers, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(), gin.Recovery())

	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if opts.SSL {
		// TLS is terminated by the proxy in front of this server.
		secureConfig.SSLRedirect = true
		secureConfig.SSLProxyHeaders = map[string]string{"X-Forwarded-Proto": "https"}
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	r.Use(secure.New(secureConfig))

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: opts.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		}))
	}

	r.GET("/", h.Site.GetIndex)
	r.GET("/health", h.Health.GetHealth)

	api := r.Group("/api")
	{
		api.POST("/contact", h.Contact.PostContact)
		api.GET("/documents/:doc", h.Document.GetDocument)
		api.GET("/news", h.News.GetNews)
	}

	pages := r.Group("/admin", h.Admin.RequirePage())
	{
		pages.GET("", h.Site.GetAdminPage)
		pages.GET("/upload", h.Site.GetAdminPage)
	}

	admin := r.Group("/admin", h.Admin.RequireAPI())
	{
		admin.POST("/upload", h.Document.PostUpload)
		admin.POST("/news", h.News.PostNews)
	}

	r.NoRoute(h.Site.Fallback)

	return r
}
