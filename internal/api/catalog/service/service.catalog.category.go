package catalogsvc

import (
	"fmt"

	basesvc "loke_store/internal/api/base/service"
	catalogmodels "loke_store/internal/api/catalog/models"
	"loke_store/internal/common"
	"loke_store/internal/global"
)

// CategoryService là service quản lý danh mục sản phẩm
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Category]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get catalog_categories collection: %v", common.ErrNotFound)
	}

	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Category](collection),
	}, nil
}
