package buildersvc

import (
	"fmt"

	basesvc "loke_store/internal/api/base/service"
	buildermodels "loke_store/internal/api/builder/models"
	"loke_store/internal/common"
	"loke_store/internal/global"
)

// BuilderQuoteService là service quản lý báo giá cấu hình PC
type BuilderQuoteService struct {
	*basesvc.BaseServiceMongoImpl[buildermodels.BuilderQuote]
}

// NewBuilderQuoteService tạo mới BuilderQuoteService
func NewBuilderQuoteService() (*BuilderQuoteService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BuilderQuotes)
	if !exist {
		return nil, fmt.Errorf("failed to get builder_quotes collection: %v", common.ErrNotFound)
	}

	return &BuilderQuoteService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[buildermodels.BuilderQuote](collection),
	}, nil
}
