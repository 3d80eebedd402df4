package global

import (
	"loke_store/config"
	"loke_store/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Sections      string // Tên collection cho section nội dung (playlist video)
	Videos        string // Tên collection cho video
	Products      string // Tên collection cho sản phẩm
	Categories    string // Tên collection cho danh mục sản phẩm
	Coupons       string // Tên collection cho mã giảm giá
	Banners       string // Tên collection cho hero banner
	BuilderQuotes string // Tên collection cho báo giá PC builder
}

// Các biến toàn cục
var Validate *validator.Validate                                           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                          // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                             // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
