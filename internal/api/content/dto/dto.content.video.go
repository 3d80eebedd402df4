package contentdto

// VideoCreateInput dữ liệu đầu vào khi thêm video vào thư viện
type VideoCreateInput struct {
	Title             string `json:"title" validate:"required,max=200"`
	ThumbnailURL      string `json:"thumbnailUrl,omitempty" validate:"omitempty,url"`
	SourceURL         string `json:"sourceUrl,omitempty" validate:"omitempty,url"`
	OptimizedURL      string `json:"optimizedUrl,omitempty" validate:"omitempty,url"`
	DurationFormatted string `json:"durationFormatted,omitempty" validate:"omitempty,max=20"`
	Status            string `json:"status,omitempty" validate:"omitempty,oneof=ready processing archived"`
}

// VideoUpdateInput dữ liệu đầu vào khi cập nhật video trong thư viện.
// Không cho phép client sửa isUsed: trường này chỉ được cập nhật bởi
// usage reconciler khi video được thêm/xóa khỏi section.
type VideoUpdateInput struct {
	Title             string `json:"title,omitempty" validate:"omitempty,max=200"`
	ThumbnailURL      string `json:"thumbnailUrl,omitempty" validate:"omitempty,url"`
	SourceURL         string `json:"sourceUrl,omitempty" validate:"omitempty,url"`
	OptimizedURL      string `json:"optimizedUrl,omitempty" validate:"omitempty,url"`
	DurationFormatted string `json:"durationFormatted,omitempty" validate:"omitempty,max=20"`
	Status            string `json:"status,omitempty" validate:"omitempty,oneof=ready processing archived"`
}
