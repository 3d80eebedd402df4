package catalogsvc

import (
	"fmt"

	basesvc "loke_store/internal/api/base/service"
	catalogmodels "loke_store/internal/api/catalog/models"
	"loke_store/internal/common"
	"loke_store/internal/global"
)

// ProductService là service quản lý sản phẩm
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get catalog_products collection: %v", common.ErrNotFound)
	}

	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](collection),
	}, nil
}
