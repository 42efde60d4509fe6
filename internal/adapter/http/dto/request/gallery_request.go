package request

import (
	"errors"
	"strings"
)

var ErrInvalidGalleryIndex = errors.New("invalid gallery index")

type GalleryOpenRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

func (r GalleryOpenRequest) ResolveItemID() string {
	return strings.TrimSpace(r.ItemID)
}

type GalleryJumpRequest struct {
	Index *int `json:"index" binding:"required"`
}

func (r GalleryJumpRequest) ResolveIndex() (int, error) {
	if r.Index == nil || *r.Index < 0 {
		return 0, ErrInvalidGalleryIndex
	}
	return *r.Index, nil
}
