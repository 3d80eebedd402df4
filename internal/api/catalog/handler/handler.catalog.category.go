package cataloghdl

import (
	"fmt"

	basehdl "loke_store/internal/api/base/handler"
	catalogdto "loke_store/internal/api/catalog/dto"
	catalogmodels "loke_store/internal/api/catalog/models"
	catalogsvc "loke_store/internal/api/catalog/service"
)

// CategoryHandler xử lý các request liên quan đến danh mục sản phẩm
type CategoryHandler struct {
	*basehdl.BaseHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
	CategoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo mới CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	hdl := &CategoryHandler{CategoryService: categoryService}
	hdl.BaseHandler = basehdl.NewBaseHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](categoryService.BaseServiceMongoImpl)
	return hdl, nil
}
