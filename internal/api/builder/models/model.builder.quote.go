package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuoteStatus định nghĩa trạng thái của báo giá
const (
	QuoteStatusDraft    = "draft"    // Khách đang chọn linh kiện
	QuoteStatusSent     = "sent"     // Đã gửi báo giá cho khách
	QuoteStatusAccepted = "accepted" // Khách đồng ý
	QuoteStatusRejected = "rejected" // Khách từ chối
)

// QuoteComponent là một linh kiện trong cấu hình báo giá
type QuoteComponent struct {
	Category  string             `json:"category" bson:"category"`                             // Loại linh kiện (cpu, mainboard, ram, ...)
	ProductID primitive.ObjectID `json:"productId,omitempty" bson:"productId,omitempty"`       // Sản phẩm tương ứng trong catalog (nếu có)
	Name      string             `json:"name" bson:"name"`                                     // Tên linh kiện tại thời điểm báo giá
	Price     int64              `json:"price" bson:"price"`                                   // Đơn giá tại thời điểm báo giá (VND)
	Quantity  int64              `json:"quantity" bson:"quantity"`                             // Số lượng
}

// BuilderQuote đại diện cho một báo giá cấu hình PC.
// Snapshot tên và giá linh kiện được giữ nguyên trong quote để báo giá
// không thay đổi khi catalog thay đổi.
type BuilderQuote struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của báo giá

	// ===== THÔNG TIN KHÁCH HÀNG =====
	CustomerName  string `json:"customerName" bson:"customerName"`                           // Tên khách hàng
	CustomerEmail string `json:"customerEmail,omitempty" bson:"customerEmail,omitempty"`     // Email khách hàng
	CustomerPhone string `json:"customerPhone,omitempty" bson:"customerPhone,omitempty"`     // Số điện thoại khách hàng

	// ===== CẤU HÌNH =====
	Components []QuoteComponent `json:"components" bson:"components"`               // Danh sách linh kiện
	TotalPrice int64            `json:"totalPrice" bson:"totalPrice"`               // Tổng giá (VND)
	Note       string           `json:"note,omitempty" bson:"note,omitempty"`       // Ghi chú

	// ===== TRẠNG THÁI =====
	Status string `json:"status" bson:"status" index:"single:1" default:"draft"` // Trạng thái: draft, sent, accepted, rejected

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
