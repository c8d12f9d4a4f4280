package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"order-api/infra"
	"order-api/models"
	"order-api/repositories"
	"order-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// setupTestAPI wires the full repository→service→controller stack onto a
// fresh in-memory SQLite database and returns a router ready for httptest.
func setupTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("DB_NAME", "")
	gin.SetMode(gin.TestMode)

	db := infra.SetupDB()
	if err := db.AutoMigrate(&models.User{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	userController := NewUserController(services.NewUserService(repositories.NewUserRepository(db)))
	orderController := NewOrderController(services.NewOrderService(repositories.NewOrderRepository(db)))
	orderItemController := NewOrderItemController(services.NewOrderItemService(repositories.NewOrderItemRepository(db)))

	r := gin.New()

	userRouter := r.Group("/users")
	userRouter.GET("", userController.FindAll)
	userRouter.GET("/:id", userController.FindById)
	userRouter.POST("", userController.Create)
	userRouter.DELETE("/:id", userController.Delete)

	orderRouter := r.Group("/orders")
	orderRouter.GET("", orderController.FindAll)
	orderRouter.POST("", orderController.Create)
	orderRouter.DELETE("/:id", orderController.Delete)

	orderItemRouter := r.Group("/order-items")
	orderItemRouter.GET("", orderItemController.FindAll)
	orderItemRouter.POST("", orderItemController.Create)
	orderItemRouter.DELETE("/:id", orderItemController.Delete)

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	wrapper := map[string]json.RawMessage{}
	if err := json.Unmarshal(w.Body.Bytes(), &wrapper); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	data, ok := wrapper["data"]
	if !ok {
		t.Fatalf("Response has no data field: %s", w.Body.String())
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("Failed to decode data field: %v", err)
	}
}
