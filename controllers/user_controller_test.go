package controllers

import (
	"net/http"
	"testing"

	"order-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserController_Create(t *testing.T) {
	r, _ := setupTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/users", map[string]interface{}{
		"name":  "Alice",
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	decodeData(t, w, &user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserController_Create_InvalidInput(t *testing.T) {
	r, _ := setupTestAPI(t)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing email", map[string]interface{}{"name": "Alice"}},
		{"bad email", map[string]interface{}{"name": "Alice", "email": "nope"}},
		{"short name", map[string]interface{}{"name": "A", "email": "a@example.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/users", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUserController_Create_DuplicateEmail(t *testing.T) {
	r, _ := setupTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/users", map[string]interface{}{
		"name": "Alice", "email": "alice@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/users", map[string]interface{}{
		"name": "Second Alice", "email": "alice@example.com",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUserController_FindById(t *testing.T) {
	r, _ := setupTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/users", map[string]interface{}{
		"name": "Alice", "email": "alice@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.User
	decodeData(t, w, &created)

	w = doJSON(t, r, http.MethodGet, "/users/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/users/0b7f7b1e-57a1-4a8b-9a51-6ef7b54b1111", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/users/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserController_Delete_ReturnsSnapshot(t *testing.T) {
	r, db := setupTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/users", map[string]interface{}{
		"name": "Alice", "email": "alice@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.User
	decodeData(t, w, &created)

	w = doJSON(t, r, http.MethodPost, "/orders", map[string]interface{}{
		"userId":    created.ID,
		"status":    "pending",
		"totalCost": "20.00",
		"items":     []map[string]interface{}{{"quantity": 2, "unitPrice": "10.00"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/users/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var snapshot models.User
	decodeData(t, w, &snapshot)
	assert.Equal(t, created.ID, snapshot.ID)
	require.Len(t, snapshot.Orders, 1)
	assert.Len(t, snapshot.Orders[0].Items, 1)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	w = doJSON(t, r, http.MethodDelete, "/users/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
