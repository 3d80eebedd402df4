package catalogdto

// CategoryCreateInput dữ liệu đầu vào khi tạo danh mục
type CategoryCreateInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Slug     string `json:"slug" validate:"required,max=100,lowercase"`
	ParentID string `json:"parentId,omitempty" transform:"str_objectid,optional"`
	Image    string `json:"image,omitempty" validate:"omitempty,url"`
	Visible  *bool  `json:"visible,omitempty"` // nil: mặc định true
}

// CategoryUpdateInput dữ liệu đầu vào khi cập nhật danh mục
type CategoryUpdateInput struct {
	Name     string `json:"name,omitempty" validate:"omitempty,max=100"`
	Slug     string `json:"slug,omitempty" validate:"omitempty,max=100,lowercase"`
	ParentID string `json:"parentId,omitempty" transform:"str_objectid,optional"`
	Image    string `json:"image,omitempty" validate:"omitempty,url"`
	Visible  *bool  `json:"visible,omitempty"`
}
