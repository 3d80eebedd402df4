package contentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "loke_store/internal/api/base/service"
	contentmodels "loke_store/internal/api/content/models"
	"loke_store/internal/common"
	"loke_store/internal/global"
)

// VideoService là service quản lý thư viện video
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Video]
}

// NewVideoService tạo mới VideoService
func NewVideoService() (*VideoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get content_videos collection: %v", common.ErrNotFound)
	}

	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Video](collection),
	}, nil
}

// SetUsed cập nhật cờ isUsed của video.
// No-op khi video không tồn tại: cờ usage chỉ là materialized view,
// video đã bị xóa thì không có gì để đánh dấu.
func (s *VideoService) SetUsed(ctx context.Context, videoID primitive.ObjectID, used bool) error {
	_, err := s.Collection().UpdateOne(ctx,
		bson.M{"_id": videoID},
		bson.M{"$set": bson.M{"isUsed": used}},
	)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}
