package contenthdl

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "loke_store/internal/api/base/handler"
	contentdto "loke_store/internal/api/content/dto"
	contentmodels "loke_store/internal/api/content/models"
	contentsvc "loke_store/internal/api/content/service"
	"loke_store/internal/common"
	"loke_store/internal/logger"
	"loke_store/internal/utility"
)

// SectionHandler xử lý các request liên quan đến Section và playlist video.
// Các thao tác ghi đi qua endpoint chuyên biệt thay vì CRUD generic vì chúng
// phải giữ bất biến thứ tự và cờ isUsed; các thao tác đọc admin dùng lại
// BaseHandler.
type SectionHandler struct {
	*basehdl.BaseHandler[contentmodels.Section, contentdto.SectionCreateInput, contentdto.SectionUpdateInput]
	SectionService *contentsvc.SectionService
	publicCache    *utility.Cache // Cache ngắn hạn cho storefront read
}

const publicSectionsCacheKey = "public_sections"

// NewSectionHandler tạo mới SectionHandler
func NewSectionHandler() (*SectionHandler, error) {
	sectionService, err := contentsvc.NewSectionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create section service: %v", err)
	}
	hdl := &SectionHandler{
		SectionService: sectionService,
		publicCache:    utility.NewCache(30*time.Second, 30*time.Second),
	}
	hdl.BaseHandler = basehdl.NewBaseHandler[contentmodels.Section, contentdto.SectionCreateInput, contentdto.SectionUpdateInput](sectionService.BaseServiceMongoImpl)
	return hdl, nil
}

// invalidatePublicCache xóa cache storefront sau mỗi thao tác ghi
func (h *SectionHandler) invalidatePublicCache() {
	h.publicCache.Delete(publicSectionsCacheKey)
}

// parseSectionID đọc và validate param :id, trả về lỗi validation nếu sai định dạng
func (h *SectionHandler) parseSectionID(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}

// CreateSection tạo section mới.
// Khác InsertOne generic: order không gửi lên sẽ được hệ thống tự gán vị trí
// cuối danh sách, visible mặc định true.
func (h *SectionHandler) CreateSection(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input contentdto.SectionCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		section := contentmodels.Section{
			Title:           input.Title,
			Description:     input.Description,
			LayoutType:      input.LayoutType,
			GridConfig:      input.GridConfig,
			SliderConfig:    input.SliderConfig,
			Visible:         true,
			BackgroundColor: input.BackgroundColor,
			TextColor:       input.TextColor,
			Padding:         input.Padding,
			MaxWidth:        input.MaxWidth,
		}
		if input.Visible != nil {
			section.Visible = *input.Visible
		}

		data, err := h.SectionService.Create(c.Context(), section, input.Order)
		if err == nil {
			h.invalidatePublicCache()
			logger.LogCRUD("create", "section", data.ID.Hex(), c, nil)
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateSection cập nhật một phần section theo id.
// Chỉ field có mặt trong body được ghi đè; visible=false vẫn được áp dụng
// nhờ input dùng con trỏ.
func (h *SectionHandler) UpdateSection(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		sectionID, err := h.parseSectionID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input contentdto.SectionUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.SectionService.UpdateFields(c.Context(), sectionID, input.Fields())
		if err == nil {
			h.invalidatePublicCache()
			logger.LogCRUD("update", "section", sectionID.Hex(), c, nil)
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteSection xóa section theo id, kèm reconcile cờ isUsed của các video
// trong section và nén lại order của các section còn lại
func (h *SectionHandler) DeleteSection(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		sectionID, err := h.parseSectionID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.SectionService.Delete(c.Context(), sectionID)
		if err == nil {
			h.invalidatePublicCache()
			logger.LogCRUD("delete", "section", sectionID.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// ReorderSections sắp xếp lại toàn bộ section theo danh sách id gửi lên:
// sectionIds[i] nhận order=i
func (h *SectionHandler) ReorderSections(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input contentdto.SectionsReorderInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ids := utility.StringArray2ObjectIDArray(input.SectionIDs)

		err := h.SectionService.Reorder(c.Context(), ids)
		if err == nil {
			h.invalidatePublicCache()
			logger.LogCRUD("reorder", "section", "", c, map[string]interface{}{
				"count": len(ids),
			})
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// AddVideo thêm video vào cuối playlist của section.
// Thêm trùng videoId trả về lỗi conflict 409.
func (h *SectionHandler) AddVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		sectionID, err := h.parseSectionID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input contentdto.SectionVideoAddInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.SectionService.AddVideo(
			c.Context(),
			sectionID,
			utility.String2ObjectID(input.VideoID),
			input.Title,
			input.Description,
			input.Settings,
		)
		if err == nil {
			h.invalidatePublicCache()
			logger.LogCRUD("update", "section", sectionID.Hex(), c, map[string]interface{}{
				"action":  "add_video",
				"videoId": input.VideoID,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// RemoveVideo gỡ video ref khỏi section theo localId
func (h *SectionHandler) RemoveVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		sectionID, err := h.parseSectionID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		localID := c.Params("localId")
		if !primitive.IsValidObjectID(localID) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("localId '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", localID),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.SectionService.RemoveVideo(c.Context(), sectionID, utility.String2ObjectID(localID))
		if err == nil {
			h.invalidatePublicCache()
			logger.LogCRUD("update", "section", sectionID.Hex(), c, map[string]interface{}{
				"action":  "remove_video",
				"localId": localID,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ReorderVideos sắp xếp lại playlist của section theo map localId → order.
// Ref không được nhắc tới trong payload giữ nguyên order cũ.
func (h *SectionHandler) ReorderVideos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		sectionID, err := h.parseSectionID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input contentdto.SectionVideosReorderInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		orderByLocalID := make(map[primitive.ObjectID]int, len(input.Items))
		for _, item := range input.Items {
			orderByLocalID[utility.String2ObjectID(item.LocalID)] = item.Order
		}

		data, err := h.SectionService.ReorderVideos(c.Context(), sectionID, orderByLocalID)
		if err == nil {
			h.invalidatePublicCache()
			logger.LogCRUD("update", "section", sectionID.Hex(), c, map[string]interface{}{
				"action": "reorder_videos",
				"count":  len(input.Items),
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateVideoRef cập nhật một phần video ref trong section theo localId
func (h *SectionHandler) UpdateVideoRef(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		sectionID, err := h.parseSectionID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		localID := c.Params("localId")
		if !primitive.IsValidObjectID(localID) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("localId '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", localID),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		var input contentdto.SectionVideoUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.SectionService.UpdateVideo(c.Context(), sectionID, utility.String2ObjectID(localID), input)
		if err == nil {
			h.invalidatePublicCache()
			logger.LogCRUD("update", "section", sectionID.Hex(), c, map[string]interface{}{
				"action":  "update_video_ref",
				"localId": localID,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ListPublicSections trả về các section hiển thị được cho storefront.
// Endpoint công khai, không qua auth; ref hỏng và section rỗng bị loại bỏ
// trong im lặng.
func (h *SectionHandler) ListPublicSections(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		if cached, ok := h.publicCache.Get(publicSectionsCacheKey); ok {
			h.HandleResponse(c, cached, nil)
			return nil
		}

		data, err := h.SectionService.ListPublicSections(c.Context())
		if err == nil {
			h.publicCache.Set(publicSectionsCacheKey, data)
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}
