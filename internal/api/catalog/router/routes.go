// Package router đăng ký các route thuộc domain Catalog: Products, Categories, Coupons.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "loke_store/internal/api/catalog/handler"
	"loke_store/internal/api/middleware"
	apirouter "loke_store/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("create product handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/catalog/products", productHandler, apirouter.ReadWriteConfig)

	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("create category handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/catalog/categories", categoryHandler, apirouter.ReadWriteConfig)

	couponHandler, err := cataloghdl.NewCouponHandler()
	if err != nil {
		return fmt.Errorf("create coupon handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/catalog/coupons", couponHandler, apirouter.ReadWriteConfig)

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	apirouter.RegisterRouteWithMiddleware(v1, "/catalog/coupons", "GET", "/find-by-code/:code", auth, couponHandler.FindOneByCode)

	return nil
}
