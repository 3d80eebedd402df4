package builderdto

// QuoteComponentInput là một linh kiện trong payload báo giá
type QuoteComponentInput struct {
	Category  string `json:"category" validate:"required,max=50"`
	ProductID string `json:"productId,omitempty" transform:"str_objectid,optional"`
	Name      string `json:"name" validate:"required,max=200"`
	Price     int64  `json:"price" validate:"min=0"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// BuilderQuoteCreateInput dữ liệu đầu vào khi tạo báo giá cấu hình PC
type BuilderQuoteCreateInput struct {
	CustomerName  string                `json:"customerName" validate:"required,max=200"`
	CustomerEmail string                `json:"customerEmail,omitempty" validate:"omitempty,email"`
	CustomerPhone string                `json:"customerPhone,omitempty" validate:"omitempty,max=20"`
	Components    []QuoteComponentInput `json:"components" validate:"required,min=1,dive"`
	TotalPrice    int64                 `json:"totalPrice" validate:"min=0"`
	Note          string                `json:"note,omitempty" validate:"omitempty,max=2000"`
	Status        string                `json:"status,omitempty" validate:"omitempty,oneof=draft sent accepted rejected"`
}

// BuilderQuoteUpdateInput dữ liệu đầu vào khi cập nhật báo giá.
// Chuyển trạng thái (draft → sent → accepted/rejected) cũng đi qua update này.
type BuilderQuoteUpdateInput struct {
	CustomerName  string                `json:"customerName,omitempty" validate:"omitempty,max=200"`
	CustomerEmail string                `json:"customerEmail,omitempty" validate:"omitempty,email"`
	CustomerPhone string                `json:"customerPhone,omitempty" validate:"omitempty,max=20"`
	Components    []QuoteComponentInput `json:"components,omitempty" validate:"omitempty,min=1,dive"`
	TotalPrice    int64                 `json:"totalPrice,omitempty" validate:"omitempty,min=0"`
	Note          string                `json:"note,omitempty" validate:"omitempty,max=2000"`
	Status        string                `json:"status,omitempty" validate:"omitempty,oneof=draft sent accepted rejected"`
}
