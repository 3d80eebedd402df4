package bannerdto

// HeroBannerCreateInput dữ liệu đầu vào khi tạo banner
type HeroBannerCreateInput struct {
	Title    string `json:"title" validate:"required,max=200"`
	Subtitle string `json:"subtitle,omitempty" validate:"omitempty,max=500"`
	ImageURL string `json:"imageUrl" validate:"required,url"`
	LinkURL  string `json:"linkUrl,omitempty" validate:"omitempty,url"`
	Order    int    `json:"order,omitempty" validate:"omitempty,min=0"`
	Visible  *bool  `json:"visible,omitempty"` // nil: mặc định true
}

// HeroBannerUpdateInput dữ liệu đầu vào khi cập nhật banner
type HeroBannerUpdateInput struct {
	Title    string `json:"title,omitempty" validate:"omitempty,max=200"`
	Subtitle string `json:"subtitle,omitempty" validate:"omitempty,max=500"`
	ImageURL string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	LinkURL  string `json:"linkUrl,omitempty" validate:"omitempty,url"`
	Order    int    `json:"order,omitempty" validate:"omitempty,min=0"`
	Visible  *bool  `json:"visible,omitempty"`
}
