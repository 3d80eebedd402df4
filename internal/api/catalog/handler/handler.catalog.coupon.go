package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "loke_store/internal/api/base/handler"
	catalogdto "loke_store/internal/api/catalog/dto"
	catalogmodels "loke_store/internal/api/catalog/models"
	catalogsvc "loke_store/internal/api/catalog/service"
	"loke_store/internal/common"
)

// CouponHandler xử lý các request liên quan đến mã giảm giá
type CouponHandler struct {
	*basehdl.BaseHandler[catalogmodels.Coupon, catalogdto.CouponCreateInput, catalogdto.CouponUpdateInput]
	CouponService *catalogsvc.CouponService
}

// NewCouponHandler tạo mới CouponHandler
func NewCouponHandler() (*CouponHandler, error) {
	couponService, err := catalogsvc.NewCouponService()
	if err != nil {
		return nil, fmt.Errorf("failed to create coupon service: %v", err)
	}
	hdl := &CouponHandler{CouponService: couponService}
	hdl.BaseHandler = basehdl.NewBaseHandler[catalogmodels.Coupon, catalogdto.CouponCreateInput, catalogdto.CouponUpdateInput](couponService.BaseServiceMongoImpl)
	return hdl, nil
}

// FindOneByCode tìm coupon theo mã qua URL param :code
func (h *CouponHandler) FindOneByCode(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		code := c.Params("code")
		if code == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"Mã giảm giá không được để trống trong URL params",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.CouponService.FindOneByCode(c.Context(), code)
		h.HandleResponse(c, data, err)
		return nil
	})
}
