package builderhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "loke_store/internal/api/base/handler"
	basesvc "loke_store/internal/api/base/service"
	builderdto "loke_store/internal/api/builder/dto"
	buildermodels "loke_store/internal/api/builder/models"
	buildersvc "loke_store/internal/api/builder/service"
	"loke_store/internal/common"
	"loke_store/internal/logger"
	"loke_store/internal/utility"
)

// BuilderQuoteHandler xử lý các request liên quan đến báo giá cấu hình PC.
// Insert và update dùng endpoint riêng vì danh sách components cần map thủ
// công (productId dạng chuỗi nằm trong phần tử mảng, transform generic không
// với tới được).
type BuilderQuoteHandler struct {
	*basehdl.BaseHandler[buildermodels.BuilderQuote, builderdto.BuilderQuoteCreateInput, builderdto.BuilderQuoteUpdateInput]
	BuilderQuoteService *buildersvc.BuilderQuoteService
}

// NewBuilderQuoteHandler tạo mới BuilderQuoteHandler
func NewBuilderQuoteHandler() (*BuilderQuoteHandler, error) {
	builderQuoteService, err := buildersvc.NewBuilderQuoteService()
	if err != nil {
		return nil, fmt.Errorf("failed to create builder quote service: %v", err)
	}
	hdl := &BuilderQuoteHandler{BuilderQuoteService: builderQuoteService}
	hdl.BaseHandler = basehdl.NewBaseHandler[buildermodels.BuilderQuote, builderdto.BuilderQuoteCreateInput, builderdto.BuilderQuoteUpdateInput](builderQuoteService.BaseServiceMongoImpl)
	return hdl, nil
}

// mapComponents chuyển danh sách linh kiện từ DTO sang model
func mapComponents(inputs []builderdto.QuoteComponentInput) []buildermodels.QuoteComponent {
	components := make([]buildermodels.QuoteComponent, 0, len(inputs))
	for _, in := range inputs {
		components = append(components, buildermodels.QuoteComponent{
			Category:  in.Category,
			ProductID: utility.String2ObjectID(in.ProductID),
			Name:      in.Name,
			Price:     in.Price,
			Quantity:  in.Quantity,
		})
	}
	return components
}

// CreateQuote tạo báo giá mới
func (h *BuilderQuoteHandler) CreateQuote(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input builderdto.BuilderQuoteCreateInput
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

		quote := buildermodels.BuilderQuote{
			CustomerName:  input.CustomerName,
			CustomerEmail: input.CustomerEmail,
			CustomerPhone: input.CustomerPhone,
			Components:    mapComponents(input.Components),
			TotalPrice:    input.TotalPrice,
			Note:          input.Note,
			Status:        input.Status,
		}

		data, err := h.BuilderQuoteService.InsertOne(c.Context(), quote)
		if err == nil {
			logger.LogCRUD("create", "builder_quote", data.ID.Hex(), c, nil)
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateQuote cập nhật một phần báo giá theo id, bao gồm chuyển trạng thái
func (h *BuilderQuoteHandler) UpdateQuote(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		var input builderdto.BuilderQuoteUpdateInput
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

		set := make(map[string]interface{})
		if input.CustomerName != "" {
			set["customerName"] = input.CustomerName
		}
		if input.CustomerEmail != "" {
			set["customerEmail"] = input.CustomerEmail
		}
		if input.CustomerPhone != "" {
			set["customerPhone"] = input.CustomerPhone
		}
		if len(input.Components) > 0 {
			set["components"] = mapComponents(input.Components)
		}
		if input.TotalPrice > 0 {
			set["totalPrice"] = input.TotalPrice
		}
		if input.Note != "" {
			set["note"] = input.Note
		}
		if input.Status != "" {
			set["status"] = input.Status
		}

		if len(set) == 0 {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Không có dữ liệu nào để cập nhật",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.BuilderQuoteService.UpdateById(c.Context(), utility.String2ObjectID(id), &basesvc.UpdateData{Set: set})
		if err == nil {
			logger.LogCRUD("update", "builder_quote", id, c, nil)
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}
