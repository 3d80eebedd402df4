package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductStatus định nghĩa trạng thái của sản phẩm
const (
	ProductStatusActive   = "active"   // Đang bán
	ProductStatusHidden   = "hidden"   // Ẩn khỏi storefront
	ProductStatusArchived = "archived" // Ngừng kinh doanh
)

// Product đại diện cho một sản phẩm trong catalog
type Product struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của sản phẩm

	// ===== THÔNG TIN CƠ BẢN =====
	Name        string `json:"name" bson:"name" index:"text"`                        // Tên sản phẩm
	Slug        string `json:"slug" bson:"slug" index:"unique"`                      // Slug dùng trên URL, duy nhất
	SKU         string `json:"sku,omitempty" bson:"sku,omitempty" index:"unique"`    // Mã SKU, duy nhất (sparse)
	Description string `json:"description,omitempty" bson:"description,omitempty"`   // Mô tả sản phẩm

	// ===== GIÁ VÀ TỒN KHO =====
	Price     int64 `json:"price" bson:"price"`                             // Giá niêm yết (VND)
	SalePrice int64 `json:"salePrice,omitempty" bson:"salePrice,omitempty"` // Giá khuyến mãi, 0 nếu không giảm
	Stock     int64 `json:"stock" bson:"stock"`                             // Số lượng tồn kho

	// ===== PHÂN LOẠI =====
	CategoryID primitive.ObjectID `json:"categoryId,omitempty" bson:"categoryId,omitempty" index:"single:1"` // Danh mục chứa sản phẩm
	Images     []string           `json:"images,omitempty" bson:"images,omitempty"`                           // Danh sách URL ảnh sản phẩm

	// ===== TRẠNG THÁI =====
	Status string `json:"status" bson:"status" index:"single:1" default:"active"` // Trạng thái: active, hidden, archived

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
