package contentdto

import (
	contentmodels "loke_store/internal/api/content/models"
)

// SectionCreateInput dữ liệu đầu vào khi tạo section
type SectionCreateInput struct {
	Title           string                 `json:"title" validate:"required,max=100"`
	Description     string                 `json:"description,omitempty" validate:"omitempty,max=500"`
	LayoutType      string                 `json:"layoutType" validate:"required,oneof=card full-video slider grid masonry reels"`
	GridConfig      map[string]interface{} `json:"gridConfig,omitempty"`
	SliderConfig    map[string]interface{} `json:"sliderConfig,omitempty"`
	Order           *int                   `json:"order,omitempty" validate:"omitempty,min=0"` // nil: hệ thống tự gán vị trí cuối
	Visible         *bool                  `json:"visible,omitempty"`                          // nil: mặc định true
	BackgroundColor string                 `json:"backgroundColor,omitempty" validate:"omitempty,max=50"`
	TextColor       string                 `json:"textColor,omitempty" validate:"omitempty,max=50"`
	Padding         string                 `json:"padding,omitempty" validate:"omitempty,max=50"`
	MaxWidth        string                 `json:"maxWidth,omitempty" validate:"omitempty,max=50"`
}

// SectionUpdateInput dữ liệu đầu vào khi cập nhật section.
// Tất cả field là con trỏ để phân biệt field vắng mặt với zero value
// (ví dụ visible=false). Chỉ field non-nil được ghi vào DB.
type SectionUpdateInput struct {
	Title           *string                `json:"title,omitempty" validate:"omitempty,max=100"`
	Description     *string                `json:"description,omitempty" validate:"omitempty,max=500"`
	LayoutType      *string                `json:"layoutType,omitempty" validate:"omitempty,oneof=card full-video slider grid masonry reels"`
	GridConfig      map[string]interface{} `json:"gridConfig,omitempty"`
	SliderConfig    map[string]interface{} `json:"sliderConfig,omitempty"`
	Order           *int                   `json:"order,omitempty" validate:"omitempty,min=0"`
	Visible         *bool                  `json:"visible,omitempty"`
	BackgroundColor *string                `json:"backgroundColor,omitempty" validate:"omitempty,max=50"`
	TextColor       *string                `json:"textColor,omitempty" validate:"omitempty,max=50"`
	Padding         *string                `json:"padding,omitempty" validate:"omitempty,max=50"`
	MaxWidth        *string                `json:"maxWidth,omitempty" validate:"omitempty,max=50"`
}

// Fields chuyển input thành map các field cần update (chỉ field non-nil).
// Key là tên field trong MongoDB, trùng với allow-list của SectionService.UpdateFields.
func (in *SectionUpdateInput) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.LayoutType != nil {
		fields["layoutType"] = *in.LayoutType
	}
	if in.GridConfig != nil {
		fields["gridConfig"] = in.GridConfig
	}
	if in.SliderConfig != nil {
		fields["sliderConfig"] = in.SliderConfig
	}
	if in.Order != nil {
		fields["order"] = *in.Order
	}
	if in.Visible != nil {
		fields["visible"] = *in.Visible
	}
	if in.BackgroundColor != nil {
		fields["backgroundColor"] = *in.BackgroundColor
	}
	if in.TextColor != nil {
		fields["textColor"] = *in.TextColor
	}
	if in.Padding != nil {
		fields["padding"] = *in.Padding
	}
	if in.MaxWidth != nil {
		fields["maxWidth"] = *in.MaxWidth
	}
	return fields
}

// SectionsReorderInput dữ liệu đầu vào khi sắp xếp lại toàn bộ section.
// Vị trí trong mảng là order mới: sectionIds[i] → order=i.
type SectionsReorderInput struct {
	SectionIDs []string `json:"sectionIds" validate:"required,min=1,dive,len=24,hexadecimal"`
}

// SectionVideoAddInput dữ liệu đầu vào khi thêm video vào section
type SectionVideoAddInput struct {
	VideoID     string                            `json:"videoId" validate:"required,len=24,hexadecimal"`
	Title       string                            `json:"title,omitempty" validate:"omitempty,max=200"`
	Description string                            `json:"description,omitempty" validate:"omitempty,max=500"`
	Settings    *contentmodels.VideoSettingsPatch `json:"settings,omitempty"` // Các field có mặt sẽ override settings mặc định
}

// SectionVideoUpdateInput dữ liệu đầu vào khi cập nhật một video ref trong section.
// Settings được merge vào settings hiện tại, không thay thế toàn bộ.
type SectionVideoUpdateInput struct {
	Title       *string                           `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string                           `json:"description,omitempty" validate:"omitempty,max=500"`
	Order       *int                              `json:"order,omitempty" validate:"omitempty,min=0"`
	Settings    *contentmodels.VideoSettingsPatch `json:"settings,omitempty"`
}

// SectionVideoOrderItem một cặp localId → order trong payload sắp xếp video
type SectionVideoOrderItem struct {
	LocalID string `json:"localId" validate:"required,len=24,hexadecimal"`
	Order   int    `json:"order" validate:"min=0"`
}

// SectionVideosReorderInput dữ liệu đầu vào khi sắp xếp lại video trong section.
// Caller nên gửi đủ toàn bộ video của section; ref không được nhắc tới
// giữ nguyên order cũ và được sắp xếp chung theo order tăng dần.
type SectionVideosReorderInput struct {
	Items []SectionVideoOrderItem `json:"items" validate:"required,min=1,dive"`
}

// PublicVideo là video đã resolve cho storefront
type PublicVideo struct {
	LocalID           string                     `json:"localId"`
	VideoID           string                     `json:"videoId"`
	Title             string                     `json:"title"`
	Description       string                     `json:"description,omitempty"`
	URL               string                     `json:"url"`
	ThumbnailURL      string                     `json:"thumbnailUrl,omitempty"`
	DurationFormatted string                     `json:"durationFormatted,omitempty"`
	Order             int                        `json:"order"`
	Settings          contentmodels.VideoSettings `json:"settings"`
}

// PublicSection là section đã resolve cho storefront, chỉ chứa video phát được
type PublicSection struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description,omitempty"`
	LayoutType      string                 `json:"layoutType"`
	GridConfig      map[string]interface{} `json:"gridConfig,omitempty"`
	SliderConfig    map[string]interface{} `json:"sliderConfig,omitempty"`
	Order           int                    `json:"order"`
	BackgroundColor string                 `json:"backgroundColor,omitempty"`
	TextColor       string                 `json:"textColor,omitempty"`
	Padding         string                 `json:"padding,omitempty"`
	MaxWidth        string                 `json:"maxWidth,omitempty"`
	Videos          []PublicVideo          `json:"videos"`
}
