package bannerhdl

import (
	"fmt"

	basehdl "loke_store/internal/api/base/handler"
	bannerdto "loke_store/internal/api/banner/dto"
	bannermodels "loke_store/internal/api/banner/models"
	bannersvc "loke_store/internal/api/banner/service"
)

// HeroBannerHandler xử lý các request liên quan đến banner trang chủ
type HeroBannerHandler struct {
	*basehdl.BaseHandler[bannermodels.HeroBanner, bannerdto.HeroBannerCreateInput, bannerdto.HeroBannerUpdateInput]
	HeroBannerService *bannersvc.HeroBannerService
}

// NewHeroBannerHandler tạo mới HeroBannerHandler
func NewHeroBannerHandler() (*HeroBannerHandler, error) {
	heroBannerService, err := bannersvc.NewHeroBannerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create hero banner service: %v", err)
	}
	hdl := &HeroBannerHandler{HeroBannerService: heroBannerService}
	hdl.BaseHandler = basehdl.NewBaseHandler[bannermodels.HeroBanner, bannerdto.HeroBannerCreateInput, bannerdto.HeroBannerUpdateInput](heroBannerService.BaseServiceMongoImpl)
	return hdl, nil
}
