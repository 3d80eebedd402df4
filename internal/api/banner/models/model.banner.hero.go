package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HeroBanner đại diện cho một banner hero trên trang chủ storefront
type HeroBanner struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của banner

	Title    string `json:"title" bson:"title"`                                       // Tiêu đề banner
	Subtitle string `json:"subtitle,omitempty" bson:"subtitle,omitempty"`             // Phụ đề
	ImageURL string `json:"imageUrl" bson:"imageUrl"`                                 // URL ảnh banner
	LinkURL  string `json:"linkUrl,omitempty" bson:"linkUrl,omitempty"`               // URL đích khi click
	Order    int    `json:"order" bson:"order" index:"single:1"`                      // Vị trí hiển thị
	Visible  bool   `json:"visible" bson:"visible" index:"single:1" default:"true"`   // Banner có hiển thị không

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
