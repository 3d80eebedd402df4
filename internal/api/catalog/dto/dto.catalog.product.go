package catalogdto

// ProductCreateInput dữ liệu đầu vào khi tạo sản phẩm
type ProductCreateInput struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Slug        string   `json:"slug" validate:"required,max=200,lowercase"`
	SKU         string   `json:"sku,omitempty" validate:"omitempty,max=100"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price       int64    `json:"price" validate:"min=0"`
	SalePrice   int64    `json:"salePrice,omitempty" validate:"omitempty,min=0"`
	Stock       int64    `json:"stock" validate:"min=0"`
	CategoryID  string   `json:"categoryId,omitempty" transform:"str_objectid,optional"`
	Images      []string `json:"images,omitempty" validate:"omitempty,dive,url"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=active hidden archived"`
}

// ProductUpdateInput dữ liệu đầu vào khi cập nhật sản phẩm
type ProductUpdateInput struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,max=200"`
	Slug        string   `json:"slug,omitempty" validate:"omitempty,max=200,lowercase"`
	SKU         string   `json:"sku,omitempty" validate:"omitempty,max=100"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price       int64    `json:"price,omitempty" validate:"omitempty,min=0"`
	SalePrice   int64    `json:"salePrice,omitempty" validate:"omitempty,min=0"`
	Stock       int64    `json:"stock,omitempty" validate:"omitempty,min=0"`
	CategoryID  string   `json:"categoryId,omitempty" transform:"str_objectid,optional"`
	Images      []string `json:"images,omitempty" validate:"omitempty,dive,url"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=active hidden archived"`
}
