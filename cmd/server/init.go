package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"loke_store/config"
	bannermodels "loke_store/internal/api/banner/models"
	buildermodels "loke_store/internal/api/builder/models"
	catalogmodels "loke_store/internal/api/catalog/models"
	contentmodels "loke_store/internal/api/content/models"
	"loke_store/internal/database"
	"loke_store/internal/global"
	"loke_store/internal/logger"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Sections = "content_sections"
	global.MongoDB_ColNames.Videos = "content_videos"
	global.MongoDB_ColNames.Products = "catalog_products"
	global.MongoDB_ColNames.Categories = "catalog_categories"
	global.MongoDB_ColNames.Coupons = "catalog_coupons"
	global.MongoDB_ColNames.Banners = "hero_banners"
	global.MongoDB_ColNames.BuilderQuotes = "builder_quotes"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatal("Failed to load server configuration")
	}
	logrus.Info("Initialized server configuration")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	client, err := database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	global.MongoDB_Session = client
	logrus.Info("Initialized MongoDB connection")
}

// InitDatabaseSchema đảm bảo database, collections và indexes tồn tại.
// Index được đọc từ tag `index` trên các model.
func InitDatabaseSchema(ctx context.Context) {
	log := logger.GetAppLogger()

	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		log.Fatalf("Failed to ensure database and collections: %v", err)
	}

	// Model tương ứng với từng collection, dùng để tạo index
	indexModels := map[string]interface{}{
		global.MongoDB_ColNames.Sections:      contentmodels.Section{},
		global.MongoDB_ColNames.Videos:        contentmodels.Video{},
		global.MongoDB_ColNames.Products:      catalogmodels.Product{},
		global.MongoDB_ColNames.Categories:    catalogmodels.Category{},
		global.MongoDB_ColNames.Coupons:       catalogmodels.Coupon{},
		global.MongoDB_ColNames.Banners:       bannermodels.HeroBanner{},
		global.MongoDB_ColNames.BuilderQuotes: buildermodels.BuilderQuote{},
	}

	for colName, model := range indexModels {
		collection, exist := global.RegistryCollections.Get(colName)
		if !exist {
			log.Fatalf("Collection %s not found in registry", colName)
		}
		if err := database.CreateIndexes(ctx, collection, model); err != nil {
			log.Fatalf("Failed to create indexes for %s: %v", colName, err)
		}
	}

	log.Info("Database schema initialized")
}
