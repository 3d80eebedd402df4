package contenthdl

import (
	"fmt"

	basehdl "loke_store/internal/api/base/handler"
	contentdto "loke_store/internal/api/content/dto"
	contentmodels "loke_store/internal/api/content/models"
	contentsvc "loke_store/internal/api/content/service"
)

// VideoHandler xử lý các request liên quan đến thư viện Video
type VideoHandler struct {
	*basehdl.BaseHandler[contentmodels.Video, contentdto.VideoCreateInput, contentdto.VideoUpdateInput]
	VideoService *contentsvc.VideoService
}

// NewVideoHandler tạo mới VideoHandler
func NewVideoHandler() (*VideoHandler, error) {
	videoService, err := contentsvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	hdl := &VideoHandler{VideoService: videoService}
	hdl.BaseHandler = basehdl.NewBaseHandler[contentmodels.Video, contentdto.VideoCreateInput, contentdto.VideoUpdateInput](videoService.BaseServiceMongoImpl)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{"password", "token", "secret", "key", "hash"},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}
