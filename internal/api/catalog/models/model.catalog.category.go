package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category đại diện cho một danh mục sản phẩm.
// parentId rỗng nghĩa là danh mục gốc.
type Category struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của danh mục

	Name     string             `json:"name" bson:"name" index:"text"`                                    // Tên danh mục
	Slug     string             `json:"slug" bson:"slug" index:"unique"`                                  // Slug dùng trên URL, duy nhất
	ParentID primitive.ObjectID `json:"parentId,omitempty" bson:"parentId,omitempty" index:"single:1"`    // Danh mục cha (rỗng nếu là gốc)
	Image    string             `json:"image,omitempty" bson:"image,omitempty"`                           // URL ảnh đại diện
	Visible  bool               `json:"visible" bson:"visible" index:"single:1" default:"true"`           // Danh mục có hiển thị trên storefront không

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
