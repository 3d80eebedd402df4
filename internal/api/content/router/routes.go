// Package router đăng ký các route thuộc domain Content: Sections, Videos.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contenthdl "loke_store/internal/api/content/handler"
	"loke_store/internal/api/middleware"
	apirouter "loke_store/internal/api/router"
)

// Register đăng ký tất cả route content lên v1.
//
// Section chỉ dùng CRUD generic cho phần đọc admin; mọi thao tác ghi đi qua
// endpoint chuyên biệt để giữ bất biến thứ tự (order 0..n-1) và cờ isUsed.
// Route /public/sections là endpoint công khai cho storefront, không qua auth.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	videoHandler, err := contenthdl.NewVideoHandler()
	if err != nil {
		return fmt.Errorf("create video handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/content/videos", videoHandler, apirouter.ReadWriteConfig)

	sectionHandler, err := contenthdl.NewSectionHandler()
	if err != nil {
		return fmt.Errorf("create section handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/content/sections", sectionHandler, apirouter.ReadOnlyConfig)

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, "/content/sections", "POST", "/insert-one", auth, sectionHandler.CreateSection)
	apirouter.RegisterRouteWithMiddleware(v1, "/content/sections", "PUT", "/update-by-id/:id", auth, sectionHandler.UpdateSection)
	apirouter.RegisterRouteWithMiddleware(v1, "/content/sections", "DELETE", "/delete-by-id/:id", auth, sectionHandler.DeleteSection)
	apirouter.RegisterRouteWithMiddleware(v1, "/content/sections", "POST", "/reorder", auth, sectionHandler.ReorderSections)

	// Playlist: route cố định (/videos/reorder) phải đăng ký trước route có
	// param :localId để không bị nuốt bởi wildcard
	apirouter.RegisterRouteWithMiddleware(v1, "/content/sections", "PUT", "/:id/videos/reorder", auth, sectionHandler.ReorderVideos)
	apirouter.RegisterRouteWithMiddleware(v1, "/content/sections", "POST", "/:id/videos", auth, sectionHandler.AddVideo)
	apirouter.RegisterRouteWithMiddleware(v1, "/content/sections", "PUT", "/:id/videos/:localId", auth, sectionHandler.UpdateVideoRef)
	apirouter.RegisterRouteWithMiddleware(v1, "/content/sections", "DELETE", "/:id/videos/:localId", auth, sectionHandler.RemoveVideo)

	// Storefront đọc section công khai, không cần token
	apirouter.RegisterRouteWithMiddleware(v1, "/public", "GET", "/sections", nil, sectionHandler.ListPublicSections)

	return nil
}
