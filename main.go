package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"order-api/controllers"
	"order-api/infra"
	"order-api/models"
	"order-api/repositories"
	"order-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB) *gin.Engine {

	userRepository := repositories.NewUserRepository(db)
	userService := services.NewUserService(userRepository)
	userController := controllers.NewUserController(userService)

	orderRepository := repositories.NewOrderRepository(db)
	orderService := services.NewOrderService(orderRepository)
	orderController := controllers.NewOrderController(orderService)

	orderItemRepository := repositories.NewOrderItemRepository(db)
	orderItemService := services.NewOrderItemService(orderItemRepository)
	orderItemController := controllers.NewOrderItemController(orderItemService)

	r := gin.Default()
	r.Use(cors.Default())

	userRouter := r.Group("/users")
	orderRouter := r.Group("/orders")
	orderItemRouter := r.Group("/order-items")

	userRouter.GET("", userController.FindAll)
	userRouter.GET("/:id", userController.FindById)
	userRouter.POST("", userController.Create)
	userRouter.DELETE("/:id", userController.Delete)

	orderRouter.GET("", orderController.FindAll)
	orderRouter.POST("", orderController.Create)
	orderRouter.DELETE("/:id", orderController.Delete)

	orderItemRouter.GET("", orderItemController.FindAll)
	orderItemRouter.POST("", orderItemController.Create)
	orderItemRouter.DELETE("/:id", orderItemController.Delete)

	return r
}

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.User{}, &models.Order{}, &models.OrderItem{}); err != nil {
			panic("Failed to migrate database")
		}
	}

	r := setupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
