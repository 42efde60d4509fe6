package response

import (
	"testing"

	"clima_hogar/internal/usecase"
)

func TestFromGalleryView(t *testing.T) {
	res := FromGalleryView(usecase.GalleryView{
		Open:      true,
		ItemID:    "fb-anwo-9000",
		Images:    []string{"/img/a1.webp", "/img/a2.webp"},
		Index:     1,
		Navigable: true,
	})
	if res.CurrentImage != "/img/a2.webp" {
		t.Fatalf("unexpected current image: %q", res.CurrentImage)
	}

	closed := FromGalleryView(usecase.GalleryView{})
	if closed.Open || closed.CurrentImage != "" {
		t.Fatalf("unexpected closed view: %+v", closed)
	}
	if closed.Images == nil {
		t.Fatalf("images must serialize as [], not null")
	}
}
