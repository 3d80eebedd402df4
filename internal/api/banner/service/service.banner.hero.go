package bannersvc

import (
	"fmt"

	basesvc "loke_store/internal/api/base/service"
	bannermodels "loke_store/internal/api/banner/models"
	"loke_store/internal/common"
	"loke_store/internal/global"
)

// HeroBannerService là service quản lý banner trang chủ
type HeroBannerService struct {
	*basesvc.BaseServiceMongoImpl[bannermodels.HeroBanner]
}

// NewHeroBannerService tạo mới HeroBannerService
func NewHeroBannerService() (*HeroBannerService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Banners)
	if !exist {
		return nil, fmt.Errorf("failed to get hero_banners collection: %v", common.ErrNotFound)
	}

	return &HeroBannerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[bannermodels.HeroBanner](collection),
	}, nil
}
