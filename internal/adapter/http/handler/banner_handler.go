package handler

import (
	"io"

	"rewards-banner-service/internal/adapter/http/dto"
	"rewards-banner-service/internal/adapter/http/middleware"
	"rewards-banner-service/internal/core/ports"
	"rewards-banner-service/pkg/apperror"
	"rewards-banner-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// BannerHandler serves banner publishing and lookup endpoints.
type BannerHandler struct {
	bannerSvc ports.BannerService
}

// NewBannerHandler creates a new BannerHandler.
func NewBannerHandler(bannerSvc ports.BannerService) *BannerHandler {
	return &BannerHandler{bannerSvc: bannerSvc}
}

// Publish handles POST /api/v1/banners. The body is the raw banner JSON.
// Keys that the lookup routes could not address are rejected up front.
func (h *BannerHandler) Publish(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	if key, found := dto.PublisherKeyOf(body); found && !dto.ValidPublisherKey(key) {
		response.Error(c, apperror.Validation("invalid publisher key"))
		return
	}

	banner, err := h.bannerSvc.Publish(c.Request.Context(), body)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewBannerResponse(banner))
}

// Get handles GET /api/v1/banners/:publisher_key.
func (h *BannerHandler) Get(c *gin.Context) {
	var uri dto.PublisherKeyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("invalid publisher key"))
		return
	}

	banner, err := h.bannerSvc.Get(c.Request.Context(), uri.PublisherKey)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewBannerResponse(banner))
}

// Delete handles DELETE /api/v1/banners/:publisher_key.
func (h *BannerHandler) Delete(c *gin.Context) {
	var uri dto.PublisherKeyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("invalid publisher key"))
		return
	}

	if err := h.bannerSvc.Remove(c.Request.Context(), uri.PublisherKey); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "banner removed"})
}

// GetParcel handles GET /api/v1/banners/:publisher_key/parcel and returns
// the binary record. The record does not carry links.
func (h *BannerHandler) GetParcel(c *gin.Context) {
	var uri dto.PublisherKeyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("invalid publisher key"))
		return
	}

	buf, err := h.bannerSvc.EncodeParcel(c.Request.Context(), uri.PublisherKey)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Parcel(c, buf)
}

// DecodeParcel handles POST /api/v1/banners/parcel. The body is a binary
// record; the response is the decoded banner view.
func (h *BannerHandler) DecodeParcel(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	banner, err := h.bannerSvc.DecodeParcel(body)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewBannerResponse(banner))
}

// readBody reads the whole request body, writing the error response itself
// when it cannot.
func readBody(c *gin.Context) ([]byte, bool) {
	if c.Request.Body == nil {
		response.Error(c, apperror.Validation("request body is required"))
		return nil, false
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		if middleware.IsBodyTooLarge(err) {
			response.Error(c, apperror.PayloadTooLarge())
		} else {
			response.Error(c, apperror.Validation("cannot read request body"))
		}
		return nil, false
	}
	if len(body) == 0 {
		response.Error(c, apperror.Validation("request body is required"))
		return nil, false
	}
	return body, true
}
