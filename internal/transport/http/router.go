package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"shop_backend/internal/handlers"

	mwauth "shop_backend/internal/middleware/auth"
)

type Deps struct {
	DB         *gorm.DB
	Auth       *mwauth.Middleware
	Users      *handlers.UserHandler
	Products   *handlers.ProductHandler
	Categories *handlers.CategoryHandler
	Orders     *handlers.OrderHandler
	Messages   *handlers.MessageHandler
	Search     *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	users := api.Group("/users")
	users.POST("/register", d.Users.Register)
	users.POST("/signin", d.Users.SignIn)
	users.PUT("/profile", d.Users.UpdateProfile, d.Auth.RequireLogin)
	users.GET("", d.Users.GetUsers, d.Auth.AdminOnly)
	users.GET("/:id", d.Users.GetUser)

	products := api.Group("/products")
	products.GET("", d.Products.GetProducts)
	products.GET("/categories", d.Categories.GetCategories)
	products.GET("/search", d.Search.Handler)
	products.GET("/:id", d.Products.GetProduct)
	products.POST("", d.Products.CreateProduct, d.Auth.AdminOnly)
	products.PATCH("/:id", d.Products.PatchProduct, d.Auth.AdminOnly)
	products.DELETE("/:id", d.Products.DeleteProduct, d.Auth.AdminOnly)

	orders := api.Group("/orders")
	orders.POST("", d.Orders.CreateOrder, d.Auth.RequireLogin)
	orders.GET("/userOrderList", d.Orders.UserOrderList, d.Auth.RequireLogin)
	// no auth middleware here: the handler checks existence before identity
	orders.GET("/:id", d.Orders.GetOrder)

	messages := api.Group("/message")
	messages.GET("/all", d.Messages.GetAll, d.Auth.AdminOnly)
	messages.POST("", d.Messages.Create, d.Auth.RequireLogin)
}
