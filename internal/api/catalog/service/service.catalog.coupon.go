package catalogsvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "loke_store/internal/api/base/service"
	catalogmodels "loke_store/internal/api/catalog/models"
	"loke_store/internal/common"
	"loke_store/internal/global"
)

// CouponService là service quản lý mã giảm giá
type CouponService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Coupon]
}

// NewCouponService tạo mới CouponService
func NewCouponService() (*CouponService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Coupons)
	if !exist {
		return nil, fmt.Errorf("failed to get catalog_coupons collection: %v", common.ErrNotFound)
	}

	return &CouponService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Coupon](collection),
	}, nil
}

// FindOneByCode tìm coupon theo mã (không phân biệt hoa thường)
func (s *CouponService) FindOneByCode(ctx context.Context, code string) (catalogmodels.Coupon, error) {
	return s.FindOne(ctx, bson.M{"code": strings.ToUpper(strings.TrimSpace(code))}, nil)
}
