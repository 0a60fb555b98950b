package api

import (
	"planora/cmd/middleware"
	"planora/internal/service"
	"planora/pkg/routes"

	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"
)

type Routers struct {
	Service service.Service
	Views   middleware.ViewStore
}

func NewRouters(r *Routers) *ginext.Engine {
	app := ginext.New("release")

	app.Use(middleware.LoggingMiddleware())
	app.Use(cors.Default())
	apiGroup := app.Group("/v1")

	// List reads serve their default render from the view cache; the
	// mutation handlers below drop these entries through the entity→view
	// dependency graph.
	apiGroup.GET("/events", middleware.CacheView(r.Views, routes.AdminEvents), r.Service.ListEvents)
	apiGroup.POST("/events", r.Service.CreateEvent)
	apiGroup.GET("/events/:id", r.Service.GetEvent)
	apiGroup.PUT("/events/:id", r.Service.UpdateEvent)
	apiGroup.DELETE("/events/:id", r.Service.DeleteEvent)
	apiGroup.PUT("/events/:id/suspend", r.Service.SuspendEvent)
	apiGroup.PUT("/events/:id/unsuspend", r.Service.UnsuspendEvent)
	apiGroup.GET("/events/:id/gallery", r.Service.EventGallery)

	apiGroup.GET("/customers", middleware.CacheView(r.Views, routes.AdminCustomers), r.Service.ListCustomers)
	apiGroup.POST("/customers", r.Service.CreateCustomer)
	apiGroup.GET("/customers/:id", r.Service.GetCustomer)
	apiGroup.PUT("/customers/:id", r.Service.UpdateCustomer)
	apiGroup.DELETE("/customers/:id", r.Service.DeleteCustomer)

	apiGroup.GET("/organizers", middleware.CacheView(r.Views, routes.AdminOrganizers), r.Service.ListOrganizers)
	apiGroup.POST("/organizers", r.Service.CreateOrganizer)
	apiGroup.GET("/organizers/:id", r.Service.GetOrganizer)
	apiGroup.PUT("/organizers/:id", r.Service.UpdateOrganizer)
	apiGroup.DELETE("/organizers/:id", r.Service.DeleteOrganizer)
	apiGroup.PUT("/organizers/:id/suspend", r.Service.SuspendOrganizer)
	apiGroup.PUT("/organizers/:id/unsuspend", r.Service.UnsuspendOrganizer)

	apiGroup.GET("/event-types", middleware.CacheView(r.Views, routes.AdminEventTypes), r.Service.ListEventTypes)
	apiGroup.POST("/event-types", r.Service.CreateEventType)

	apiGroup.POST("/media", r.Service.UploadMedia)

	return app
}
