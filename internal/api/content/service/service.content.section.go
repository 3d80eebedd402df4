package contentsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "loke_store/internal/api/base/service"
	contentdto "loke_store/internal/api/content/dto"
	contentmodels "loke_store/internal/api/content/models"
	"loke_store/internal/common"
	"loke_store/internal/global"
)

// Các field được phép cập nhật qua UpdateFields. Playlist (videos) và
// timestamps chỉ được sửa qua các operation chuyên biệt.
var sectionUpdatableFields = map[string]bool{
	"title":           true,
	"description":     true,
	"layoutType":      true,
	"gridConfig":      true,
	"sliderConfig":    true,
	"order":           true,
	"visible":         true,
	"backgroundColor": true,
	"textColor":       true,
	"padding":         true,
	"maxWidth":        true,
}

// SectionService là service quản lý section và playlist video trong section.
// Mọi thao tác ghi đều giữ hai bất biến thứ tự: order của section là 0..m-1
// trên toàn bộ section, order của video ref là 0..n-1 trong từng section.
type SectionService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Section]
	videos     *VideoService
	reconciler *UsageReconciler
}

// NewSectionService tạo mới SectionService cùng VideoService và UsageReconciler đi kèm
func NewSectionService() (*SectionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Sections)
	if !exist {
		return nil, fmt.Errorf("failed to get content_sections collection: %v", common.ErrNotFound)
	}

	videoService, err := NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}

	svc := &SectionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Section](collection),
		videos:               videoService,
	}
	svc.reconciler = NewUsageReconciler(svc, videoService)

	return svc, nil
}

// Videos trả về VideoService dùng chung (cho handler)
func (s *SectionService) Videos() *VideoService {
	return s.videos
}

// ====================================
// SECTION OPERATIONS
// ====================================

// Create tạo section mới. Nếu caller không chỉ định order, section được xếp
// cuối danh sách (1 + max order hiện có, 0 khi chưa có section nào).
func (s *SectionService) Create(ctx context.Context, section contentmodels.Section, order *int) (contentmodels.Section, error) {
	var zero contentmodels.Section

	if order != nil {
		section.Order = *order
	} else {
		existing, err := s.Find(ctx, bson.M{}, nil)
		if err != nil {
			return zero, err
		}
		section.Order = nextSectionOrder(existing)
	}

	if section.Videos == nil {
		section.Videos = []contentmodels.VideoRef{}
	}

	return s.InsertOne(ctx, section)
}

// List trả về các section theo order tăng dần.
// visibleOnly=true chỉ trả về section đang hiển thị (dùng cho storefront).
func (s *SectionService) List(ctx context.Context, visibleOnly bool) ([]contentmodels.Section, error) {
	filter := bson.M{}
	if visibleOnly {
		filter["visible"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	return s.Find(ctx, filter, opts)
}

// UpdateFields cập nhật một phần section theo allow-list.
// Field ngoài allow-list bị bỏ qua trong im lặng (không lỗi).
func (s *SectionService) UpdateFields(ctx context.Context, sectionID primitive.ObjectID, fields map[string]interface{}) (contentmodels.Section, error) {
	set := make(map[string]interface{})
	for key, value := range fields {
		if sectionUpdatableFields[key] {
			set[key] = value
		}
	}

	if len(set) == 0 {
		// Không có field hợp lệ nào, trả về section hiện tại
		return s.FindOneById(ctx, sectionID)
	}

	return s.UpdateById(ctx, sectionID, &basesvc.UpdateData{Set: set})
}

// Delete xóa section và dọn dẹp hệ quả:
//  1. Reconcile cờ isUsed cho từng video trong section (loại section này khỏi
//     phạm vi quét vì document chưa bị xóa tại thời điểm quét)
//  2. Xóa document section
//  3. Nén lại order của các section còn lại về 0..m-1
func (s *SectionService) Delete(ctx context.Context, sectionID primitive.ObjectID) error {
	section, err := s.FindOneById(ctx, sectionID)
	if err != nil {
		return err
	}

	for _, ref := range section.Videos {
		if err := s.reconciler.OnVideoRemovedFromSection(ctx, ref.VideoID, sectionID); err != nil {
			return err
		}
	}

	if err := s.DeleteById(ctx, sectionID); err != nil {
		return err
	}

	return s.compactSectionOrders(ctx)
}

// Reorder sắp xếp lại toàn bộ section: orderedIDs[i] nhận order=i.
// Trả về lỗi validation nếu có id không tồn tại.
func (s *SectionService) Reorder(ctx context.Context, orderedIDs []primitive.ObjectID) error {
	// Id trùng lặp phải bị chặn trước khi ghi: $in của FindManyByIds gộp các id
	// trùng nên lọt qua bước so khớp số lượng, và vòng ghi sẽ gán cùng một section
	// hai order khác nhau, để lại khoảng hở trong dãy 0..m-1
	if dup, ok := firstDuplicateID(orderedIDs); ok {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Section '%s' xuất hiện nhiều lần trong danh sách sắp xếp", dup.Hex()),
			common.StatusBadRequest,
			nil,
		)
	}

	existing, err := s.FindManyByIds(ctx, orderedIDs)
	if err != nil {
		return err
	}
	if len(existing) != len(orderedIDs) {
		found := make(map[primitive.ObjectID]bool, len(existing))
		for _, sec := range existing {
			found[sec.ID] = true
		}
		for _, id := range orderedIDs {
			if !found[id] {
				return common.NewError(
					common.ErrCodeValidationInput,
					fmt.Sprintf("Section '%s' không tồn tại", id.Hex()),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}

	for i, id := range orderedIDs {
		_, err := s.Collection().UpdateOne(ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{"order": i, "updatedAt": time.Now().UnixMilli()}},
		)
		if err != nil {
			return common.ConvertMongoError(err)
		}
	}

	return nil
}

// compactSectionOrders nén order của toàn bộ section về 0..m-1 theo thứ tự hiện tại
func (s *SectionService) compactSectionOrders(ctx context.Context) error {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	sections, err := s.Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}

	for _, fix := range sectionOrderFixes(sections) {
		_, err := s.Collection().UpdateOne(ctx,
			bson.M{"_id": fix.ID},
			bson.M{"$set": bson.M{"order": fix.Order, "updatedAt": time.Now().UnixMilli()}},
		)
		if err != nil {
			return common.ConvertMongoError(err)
		}
	}

	return nil
}

// CountContainingVideo đếm số section (ngoài excludeSectionID) đang tham chiếu video.
// Implement sectionScanner cho UsageReconciler.
func (s *SectionService) CountContainingVideo(ctx context.Context, videoID primitive.ObjectID, excludeSectionID primitive.ObjectID) (int64, error) {
	return s.CountDocuments(ctx, bson.M{
		"_id":            bson.M{"$ne": excludeSectionID},
		"videos.videoId": videoID,
	})
}

// ====================================
// PLAYLIST OPERATIONS
// ====================================

// AddVideo thêm một video vào cuối playlist của section.
// Mỗi video chỉ xuất hiện một lần trong một section: thêm trùng videoId trả
// về lỗi conflict và playlist giữ nguyên. Sau khi thêm thành công, cờ isUsed
// của video được bật vô điều kiện (video chắc chắn đang được dùng).
func (s *SectionService) AddVideo(ctx context.Context, sectionID primitive.ObjectID, videoID primitive.ObjectID, title, description string, settings *contentmodels.VideoSettingsPatch) (contentmodels.Section, error) {
	var zero contentmodels.Section

	section, err := s.FindOneById(ctx, sectionID)
	if err != nil {
		return zero, err
	}

	if containsVideo(section.Videos, videoID) {
		return zero, common.ErrVideoAlreadyInSection
	}

	ref := contentmodels.VideoRef{
		LocalID:     primitive.NewObjectID(),
		VideoID:     videoID,
		Title:       title,
		Description: description,
		Order:       nextRefOrder(section.Videos),
		Settings:    settings.Apply(contentmodels.DefaultVideoSettings()),
	}

	updated, err := s.persistVideos(ctx, sectionID, append(section.Videos, ref))
	if err != nil {
		return zero, err
	}

	if err := s.videos.SetUsed(ctx, videoID, true); err != nil {
		return zero, err
	}

	return updated, nil
}

// RemoveVideo gỡ một video ref khỏi section theo localId.
// Order của các ref còn lại được nén về 0..n-1 (giữ thứ tự tương đối),
// sau đó reconcile cờ isUsed của video vừa gỡ.
func (s *SectionService) RemoveVideo(ctx context.Context, sectionID primitive.ObjectID, localID primitive.ObjectID) (contentmodels.Section, error) {
	var zero contentmodels.Section

	section, err := s.FindOneById(ctx, sectionID)
	if err != nil {
		return zero, err
	}

	removed, remaining, found := removeRefByLocalID(section.Videos, localID)
	if !found {
		return zero, common.ErrSectionVideoNotFound
	}

	updated, err := s.persistVideos(ctx, sectionID, compactRefOrders(remaining))
	if err != nil {
		return zero, err
	}

	if err := s.reconciler.OnVideoRemovedFromSection(ctx, removed.VideoID, sectionID); err != nil {
		return zero, err
	}

	return updated, nil
}

// ReorderVideos sắp xếp lại playlist theo map localId → order.
// Chỉ ref được nhắc tới trong payload nhận order mới; ref vắng mặt giữ order
// cũ và được sắp xếp chung theo order tăng dần. localId không tồn tại trong
// section bị bỏ qua trong im lặng.
func (s *SectionService) ReorderVideos(ctx context.Context, sectionID primitive.ObjectID, orderByLocalID map[primitive.ObjectID]int) (contentmodels.Section, error) {
	var zero contentmodels.Section

	section, err := s.FindOneById(ctx, sectionID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Section '%s' không tồn tại", sectionID.Hex()),
				common.StatusBadRequest,
				err,
			)
		}
		return zero, err
	}

	return s.persistVideos(ctx, sectionID, applyRefOrderMap(section.Videos, orderByLocalID))
}

// UpdateVideo cập nhật một phần video ref trong section theo localId.
// Settings được merge từng field vào settings hiện tại, không thay thế toàn bộ.
func (s *SectionService) UpdateVideo(ctx context.Context, sectionID primitive.ObjectID, localID primitive.ObjectID, patch contentdto.SectionVideoUpdateInput) (contentmodels.Section, error) {
	var zero contentmodels.Section

	section, err := s.FindOneById(ctx, sectionID)
	if err != nil {
		return zero, err
	}

	found := false
	for i := range section.Videos {
		if section.Videos[i].LocalID != localID {
			continue
		}
		found = true
		if patch.Title != nil {
			section.Videos[i].Title = *patch.Title
		}
		if patch.Description != nil {
			section.Videos[i].Description = *patch.Description
		}
		if patch.Order != nil {
			section.Videos[i].Order = *patch.Order
		}
		section.Videos[i].Settings = patch.Settings.Apply(section.Videos[i].Settings)
		break
	}
	if !found {
		return zero, common.ErrSectionVideoNotFound
	}

	return s.persistVideos(ctx, sectionID, section.Videos)
}

// persistVideos ghi lại toàn bộ mảng videos của section
func (s *SectionService) persistVideos(ctx context.Context, sectionID primitive.ObjectID, refs []contentmodels.VideoRef) (contentmodels.Section, error) {
	if refs == nil {
		refs = []contentmodels.VideoRef{}
	}
	return s.UpdateById(ctx, sectionID, &basesvc.UpdateData{
		Set: map[string]interface{}{"videos": refs},
	})
}

// ====================================
// PRESENTATION
// ====================================

// ListPublicSections trả về các section hiển thị được cho storefront:
// section visible theo order tăng dần, mỗi section chỉ chứa video resolve
// được (video còn tồn tại và có URL phát được); section không còn video nào
// bị loại bỏ. Read này không bao giờ trả lỗi vì dữ liệu xấu — ref hỏng bị
// bỏ qua trong im lặng để storefront luôn render được.
func (s *SectionService) ListPublicSections(ctx context.Context) ([]contentdto.PublicSection, error) {
	sections, err := s.List(ctx, true)
	if err != nil {
		return nil, err
	}

	// Gom toàn bộ videoId để resolve một lần
	idSet := make(map[primitive.ObjectID]bool)
	var ids []primitive.ObjectID
	for _, sec := range sections {
		for _, ref := range sec.Videos {
			if !idSet[ref.VideoID] {
				idSet[ref.VideoID] = true
				ids = append(ids, ref.VideoID)
			}
		}
	}

	videosByID := make(map[primitive.ObjectID]contentmodels.Video)
	if len(ids) > 0 {
		videos, err := s.videos.FindManyByIds(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, v := range videos {
			videosByID[v.ID] = v
		}
	}

	result := make([]contentdto.PublicSection, 0, len(sections))
	for _, sec := range sections {
		resolved := resolvePublicSection(sec, videosByID)
		if len(resolved.Videos) == 0 {
			continue
		}
		result = append(result, resolved)
	}

	return result, nil
}

// resolvePublicSection build PublicSection từ section và map video đã resolve
func resolvePublicSection(sec contentmodels.Section, videosByID map[primitive.ObjectID]contentmodels.Video) contentdto.PublicSection {
	out := contentdto.PublicSection{
		ID:              sec.ID.Hex(),
		Title:           sec.Title,
		Description:     sec.Description,
		LayoutType:      sec.LayoutType,
		GridConfig:      sec.GridConfig,
		SliderConfig:    sec.SliderConfig,
		Order:           sec.Order,
		BackgroundColor: sec.BackgroundColor,
		TextColor:       sec.TextColor,
		Padding:         sec.Padding,
		MaxWidth:        sec.MaxWidth,
		Videos:          []contentdto.PublicVideo{},
	}

	for _, ref := range sec.Videos {
		video, ok := videosByID[ref.VideoID]
		if !ok {
			// Ref trỏ tới video đã bị xóa khỏi thư viện
			continue
		}
		url := playableURL(video)
		if url == "" {
			continue
		}
		out.Videos = append(out.Videos, contentdto.PublicVideo{
			LocalID:           ref.LocalID.Hex(),
			VideoID:           ref.VideoID.Hex(),
			Title:             effectiveTitle(ref, video),
			Description:       ref.Description,
			URL:               url,
			ThumbnailURL:      video.ThumbnailURL,
			DurationFormatted: video.DurationFormatted,
			Order:             ref.Order,
			Settings:          ref.Settings,
		})
	}

	return out
}
