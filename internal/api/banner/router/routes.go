// Package router đăng ký các route thuộc domain Banner.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	bannerhdl "loke_store/internal/api/banner/handler"
	apirouter "loke_store/internal/api/router"
)

// Register đăng ký tất cả route banner lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	heroBannerHandler, err := bannerhdl.NewHeroBannerHandler()
	if err != nil {
		return fmt.Errorf("create hero banner handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/banners", heroBannerHandler, apirouter.ReadWriteConfig)

	return nil
}
