package handler

import (
	"net/http"

	"backend/internal/catalog"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static reference data: packages and amenities.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	cat := router.Group("/api/catalog")
	{
		cat.GET("/packages", h.ListPackages)
		cat.GET("/packages/:type", h.GetPackage)
		cat.GET("/amenities", h.ListAmenities)
		cat.GET("/amenities/chargeable", h.ListChargeableAmenities)
	}
}

// ListPackages lists all guest packages
// @Summary      List packages
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.GuestPackage}
// @Router       /api/catalog/packages [get]
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, catalog.Packages()))
}

// GetPackage looks up one package by type
// @Summary      Get package
// @Tags         catalog
// @Produce      json
// @Param        type  path      string  true  "BASIC, FAMILY, PREMIUM, LUXURY or EVENT"
// @Success      200   {object}  response.Response{data=model.GuestPackage}
// @Failure      404   {object}  response.Response
// @Router       /api/catalog/packages/{type} [get]
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	pkg, err := catalog.PackageFor(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, pkg))
}

// ListAmenities lists amenities, optionally by category
// @Summary      List amenities
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  false  "FUN, FOOD, WELLNESS, FACILITY, SPORTS or SAFETY"
// @Success      200       {object}  response.Response{data=[]model.Amenity}
// @Router       /api/catalog/amenities [get]
func (h *CatalogHandler) ListAmenities(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, response.Success(http.StatusOK, catalog.AmenitiesByCategory(category)))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, catalog.Amenities()))
}

// ListChargeableAmenities lists the amenities with a per-use price
// @Summary      List chargeable amenities
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.Amenity}
// @Router       /api/catalog/amenities/chargeable [get]
func (h *CatalogHandler) ListChargeableAmenities(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, catalog.AmenitiesWithCharge()))
}
