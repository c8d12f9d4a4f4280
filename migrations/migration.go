package main

import (
	"order-api/infra"
	"order-api/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	// 親→子の順でテーブルを作る
	if err := db.AutoMigrate(&models.User{}, &models.Order{}, &models.OrderItem{}); err != nil {
		panic("Failed to migrate database")
	}
}
