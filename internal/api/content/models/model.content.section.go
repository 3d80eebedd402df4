package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LayoutType định nghĩa các kiểu hiển thị của section trên storefront
const (
	LayoutTypeCard      = "card"       // Thẻ video đơn
	LayoutTypeFullVideo = "full-video" // Video full-width
	LayoutTypeSlider    = "slider"     // Carousel trượt ngang
	LayoutTypeGrid      = "grid"       // Lưới cố định
	LayoutTypeMasonry   = "masonry"    // Lưới masonry
	LayoutTypeReels     = "reels"      // Dạng reels dọc
)

// VideoSettings chứa các cờ playback cho một video trong section
type VideoSettings struct {
	Autoplay    bool `json:"autoplay" bson:"autoplay"`       // Tự động phát
	Loop        bool `json:"loop" bson:"loop"`               // Lặp lại
	Muted       bool `json:"muted" bson:"muted"`             // Tắt tiếng
	Controls    bool `json:"controls" bson:"controls"`       // Hiển thị controls
	PlaysInline bool `json:"playsInline" bson:"playsInline"` // Phát inline trên mobile
}

// DefaultVideoSettings trả về settings mặc định cho video mới thêm vào section
func DefaultVideoSettings() VideoSettings {
	return VideoSettings{
		Autoplay:    false,
		Loop:        false,
		Muted:       true,
		Controls:    true,
		PlaysInline: true,
	}
}

// VideoSettingsPatch là partial update cho VideoSettings.
// Dùng con trỏ để phân biệt field vắng mặt với giá trị false:
// chỉ field non-nil được merge vào settings hiện tại.
type VideoSettingsPatch struct {
	Autoplay    *bool `json:"autoplay,omitempty"`
	Loop        *bool `json:"loop,omitempty"`
	Muted       *bool `json:"muted,omitempty"`
	Controls    *bool `json:"controls,omitempty"`
	PlaysInline *bool `json:"playsInline,omitempty"`
}

// Apply merge các field non-nil của patch vào settings
func (p *VideoSettingsPatch) Apply(settings VideoSettings) VideoSettings {
	if p == nil {
		return settings
	}
	if p.Autoplay != nil {
		settings.Autoplay = *p.Autoplay
	}
	if p.Loop != nil {
		settings.Loop = *p.Loop
	}
	if p.Muted != nil {
		settings.Muted = *p.Muted
	}
	if p.Controls != nil {
		settings.Controls = *p.Controls
	}
	if p.PlaysInline != nil {
		settings.PlaysInline = *p.PlaysInline
	}
	return settings
}

// VideoRef là subdocument tham chiếu một video trong playlist của section.
// localId là định danh duy nhất trong phạm vi section, gán lúc thêm video và
// dùng để địa chỉ hóa khi xóa/sắp xếp/cập nhật. order là vị trí zero-based
// và zero-gap (0..n-1) trong section.
type VideoRef struct {
	LocalID     primitive.ObjectID `json:"localId" bson:"localId"`                           // Định danh trong phạm vi section
	VideoID     primitive.ObjectID `json:"videoId" bson:"videoId"`                           // ID video trong thư viện
	Title       string             `json:"title,omitempty" bson:"title,omitempty"`           // Tiêu đề override (section-local)
	Description string             `json:"description,omitempty" bson:"description,omitempty"` // Mô tả override
	Order       int                `json:"order" bson:"order"`                               // Vị trí trong section (0..n-1)
	Settings    VideoSettings      `json:"settings" bson:"settings"`                         // Cờ playback
}

// Section đại diện cho một khối hiển thị video trên trang chủ storefront.
// order là vị trí zero-based và zero-gap (0..m-1) trên toàn bộ các section.
type Section struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của section

	// ===== NỘI DUNG =====
	Title       string `json:"title" bson:"title"`                                 // Tiêu đề section
	Description string `json:"description,omitempty" bson:"description,omitempty"` // Mô tả

	// ===== LAYOUT =====
	LayoutType   string                 `json:"layoutType" bson:"layoutType" default:"card"`        // Kiểu hiển thị: card, full-video, slider, grid, masonry, reels
	GridConfig   map[string]interface{} `json:"gridConfig,omitempty" bson:"gridConfig,omitempty"`   // Cấu hình cho layout grid/masonry
	SliderConfig map[string]interface{} `json:"sliderConfig,omitempty" bson:"sliderConfig,omitempty"` // Cấu hình cho layout slider/reels

	// ===== PLAYLIST =====
	Videos []VideoRef `json:"videos" bson:"videos"` // Danh sách video trong section

	// ===== HIỂN THỊ =====
	Order   int  `json:"order" bson:"order" index:"single:1"` // Vị trí section trên trang (0..m-1)
	Visible bool `json:"visible" bson:"visible" default:"true"` // Có hiển thị trên storefront không

	// ===== PRESENTATION =====
	BackgroundColor string `json:"backgroundColor,omitempty" bson:"backgroundColor,omitempty"` // Màu nền
	TextColor       string `json:"textColor,omitempty" bson:"textColor,omitempty"`             // Màu chữ
	Padding         string `json:"padding,omitempty" bson:"padding,omitempty"`                 // Padding (CSS)
	MaxWidth        string `json:"maxWidth,omitempty" bson:"maxWidth,omitempty"`               // Chiều rộng tối đa (CSS)

	// ===== TIMESTAMPS =====
	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
