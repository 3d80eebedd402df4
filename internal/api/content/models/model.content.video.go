package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoStatus định nghĩa trạng thái của video trong thư viện
const (
	VideoStatusReady      = "ready"      // Sẵn sàng phát
	VideoStatusProcessing = "processing" // Đang xử lý (transcode/optimize)
	VideoStatusArchived   = "archived"   // Đã archive, không hiển thị
)

// Video đại diện cho một video trong thư viện video của cửa hàng.
// Video được tham chiếu từ các section qua VideoRef; trường isUsed là
// materialized view của việc video có xuất hiện trong ít nhất một section
// hay không, và chỉ được cập nhật bằng cách quét lại các section.
type Video struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của video

	// ===== THÔNG TIN HIỂN THỊ =====
	Title             string `json:"title" bson:"title" index:"text"`                                        // Tiêu đề video
	ThumbnailURL      string `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`                   // URL thumbnail
	DurationFormatted string `json:"durationFormatted,omitempty" bson:"durationFormatted,omitempty"`         // Thời lượng đã format (vd: "1:25")

	// ===== VIDEO ASSETS =====
	SourceURL    string `json:"sourceUrl,omitempty" bson:"sourceUrl,omitempty"`       // URL video gốc
	OptimizedURL string `json:"optimizedUrl,omitempty" bson:"optimizedUrl,omitempty"` // URL video đã optimize (ưu tiên khi phát)

	// ===== TRẠNG THÁI =====
	Status string `json:"status" bson:"status" index:"single:1" default:"ready"` // Trạng thái: ready, processing, archived
	IsUsed bool   `json:"isUsed" bson:"isUsed" index:"single:1"`                 // Video có đang được dùng trong section nào không

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
