// Package router đăng ký các route thuộc domain Builder (báo giá cấu hình PC).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	builderhdl "loke_store/internal/api/builder/handler"
	"loke_store/internal/api/middleware"
	apirouter "loke_store/internal/api/router"
)

// Register đăng ký tất cả route builder lên v1.
// Insert và update dùng endpoint riêng (map components thủ công); phần đọc và
// xóa dùng CRUD generic.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	quoteHandler, err := builderhdl.NewBuilderQuoteHandler()
	if err != nil {
		return fmt.Errorf("create builder quote handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/builder/quotes", quoteHandler, apirouter.ReadOnlyConfig)

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, "/builder/quotes", "POST", "/insert-one", auth, quoteHandler.CreateQuote)
	apirouter.RegisterRouteWithMiddleware(v1, "/builder/quotes", "PUT", "/update-by-id/:id", auth, quoteHandler.UpdateQuote)
	apirouter.RegisterRouteWithMiddleware(v1, "/builder/quotes", "DELETE", "/delete-by-id/:id", auth, quoteHandler.DeleteById)

	return nil
}
