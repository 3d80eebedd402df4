package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiscountType định nghĩa kiểu giảm giá của coupon
const (
	DiscountTypePercent = "percent" // Giảm theo phần trăm
	DiscountTypeFixed   = "fixed"   // Giảm số tiền cố định
)

// Coupon đại diện cho một mã giảm giá
type Coupon struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của coupon

	// ===== ĐIỀU KIỆN ÁP DỤNG =====
	Code          string `json:"code" bson:"code" index:"unique"`                            // Mã giảm giá, duy nhất
	DiscountType  string `json:"discountType" bson:"discountType" default:"percent"`         // Kiểu giảm: percent, fixed
	DiscountValue int64  `json:"discountValue" bson:"discountValue"`                         // Giá trị giảm (% hoặc VND tùy kiểu)
	MinOrderValue int64  `json:"minOrderValue,omitempty" bson:"minOrderValue,omitempty"`     // Giá trị đơn hàng tối thiểu

	// ===== GIỚI HẠN SỬ DỤNG =====
	UsageLimit int64 `json:"usageLimit,omitempty" bson:"usageLimit,omitempty"` // Số lần dùng tối đa, 0 là không giới hạn
	UsedCount  int64 `json:"usedCount" bson:"usedCount"`                       // Số lần đã dùng

	// ===== HIỆU LỰC =====
	StartsAt  int64 `json:"startsAt,omitempty" bson:"startsAt,omitempty"`           // Thời điểm bắt đầu hiệu lực
	ExpiresAt int64 `json:"expiresAt,omitempty" bson:"expiresAt,omitempty"`         // Thời điểm hết hiệu lực
	Active    bool  `json:"active" bson:"active" index:"single:1" default:"true"`   // Coupon có đang bật không

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
