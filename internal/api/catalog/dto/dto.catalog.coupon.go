package catalogdto

// CouponCreateInput dữ liệu đầu vào khi tạo mã giảm giá
type CouponCreateInput struct {
	Code          string `json:"code" validate:"required,max=50,uppercase"`
	DiscountType  string `json:"discountType" validate:"required,oneof=percent fixed"`
	DiscountValue int64  `json:"discountValue" validate:"required,min=1"`
	MinOrderValue int64  `json:"minOrderValue,omitempty" validate:"omitempty,min=0"`
	UsageLimit    int64  `json:"usageLimit,omitempty" validate:"omitempty,min=0"`
	StartsAt      int64  `json:"startsAt,omitempty" validate:"omitempty,min=0"`
	ExpiresAt     int64  `json:"expiresAt,omitempty" validate:"omitempty,min=0"`
	Active        *bool  `json:"active,omitempty"` // nil: mặc định true
}

// CouponUpdateInput dữ liệu đầu vào khi cập nhật mã giảm giá.
// Không cho sửa code và usedCount qua update.
type CouponUpdateInput struct {
	DiscountType  string `json:"discountType,omitempty" validate:"omitempty,oneof=percent fixed"`
	DiscountValue int64  `json:"discountValue,omitempty" validate:"omitempty,min=1"`
	MinOrderValue int64  `json:"minOrderValue,omitempty" validate:"omitempty,min=0"`
	UsageLimit    int64  `json:"usageLimit,omitempty" validate:"omitempty,min=0"`
	StartsAt      int64  `json:"startsAt,omitempty" validate:"omitempty,min=0"`
	ExpiresAt     int64  `json:"expiresAt,omitempty" validate:"omitempty,min=0"`
	Active        *bool  `json:"active,omitempty"`
}
