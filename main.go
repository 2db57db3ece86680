package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"tableside/internal/cart"
	"tableside/internal/catalog"
	"tableside/internal/config"
	"tableside/internal/database"
	"tableside/internal/handlers"
	"tableside/internal/middleware"
	"tableside/internal/notify"
	"tableside/internal/orders"
	"tableside/internal/storage"
)

func main() {
	config.Load()

	var store storage.Store
	if config.AppEnv.MongoURI != "" {
		client, err := database.Connect(config.AppEnv.MongoURI)
		if err != nil {
			log.Fatal(err)
		}
		db := client.Database(config.AppEnv.DBName)
		log.Println("MongoDB connected to:", db.Name())
		store = storage.NewMongo(db)
	} else {
		log.Println("MONGO_URI not set, using in-memory storage")
		store = storage.NewMemory()
	}

	notifier := notify.NewChannel()
	defer notifier.Close()

	ctx := context.Background()

	catalogStore := catalog.NewStore(store, notifier)
	catalogStore.Load(ctx)
	if err := catalogStore.Watch(ctx); err != nil {
		log.Fatal(err)
	}

	orderStore := orders.NewStore(store, notifier)
	orderStore.Load(ctx)
	if err := orderStore.Watch(ctx); err != nil {
		log.Fatal(err)
	}

	sessions := cart.NewSessions()

	r := gin.Default()

	r.GET("/products", handlers.GetProducts(catalogStore))
	r.GET("/categories", handlers.GetCategories(catalogStore))

	r.GET("/cart", handlers.GetCart(sessions))
	r.POST("/cart/items", handlers.AddCartItem(sessions, catalogStore))
	r.PUT("/cart/items/:id", handlers.SetCartQuantity(sessions))
	r.DELETE("/cart/items/:id", handlers.RemoveCartItem(sessions))
	r.PUT("/cart/table", handlers.SetCartTable(sessions))
	r.DELETE("/cart", handlers.ClearCart(sessions))

	r.POST("/checkout", handlers.Checkout(sessions, orderStore))
	r.GET("/orders/last", handlers.GetLastOrder(orderStore))
	r.GET("/orders/:id", handlers.GetOrder(orderStore))
	r.GET("/events", handlers.Events(notifier))

	r.POST("/admin/login", handlers.AdminLogin(config.AppEnv))

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		admin.GET("/products", handlers.GetAllProducts(catalogStore))
		admin.POST("/products", handlers.CreateProduct(catalogStore))
		admin.PUT("/products/:id", handlers.UpdateProduct(catalogStore))
		admin.DELETE("/products/:id", handlers.DeleteProduct(catalogStore))
		admin.PATCH("/products/:id/availability", handlers.ToggleAvailability(catalogStore))

		admin.GET("/categories", handlers.GetAllCategories(catalogStore))
		admin.POST("/categories", handlers.CreateCategory(catalogStore))

		admin.GET("/orders", handlers.GetOrders(orderStore))
		admin.PATCH("/orders/:id/status", handlers.UpdateOrderStatus(orderStore))
		admin.DELETE("/orders", handlers.ClearOrders(orderStore))
	}

	r.Run(":" + config.AppEnv.Port)
}
