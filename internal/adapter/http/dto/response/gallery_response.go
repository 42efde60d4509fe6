package response

import "clima_hogar/internal/usecase"

type GalleryResponse struct {
	Open         bool     `json:"open"`
	ItemID       string   `json:"item_id,omitempty"`
	Images       []string `json:"images"`
	Index        int      `json:"index"`
	CurrentImage string   `json:"current_image,omitempty"`
	Navigable    bool     `json:"navigable"`
}

func FromGalleryView(v usecase.GalleryView) GalleryResponse {
	res := GalleryResponse{
		Open:      v.Open,
		ItemID:    v.ItemID,
		Images:    v.Images,
		Index:     v.Index,
		Navigable: v.Navigable,
	}
	if res.Images == nil {
		res.Images = []string{}
	}
	if v.Open && v.Index < len(v.Images) {
		res.CurrentImage = v.Images[v.Index]
	}
	return res
}
