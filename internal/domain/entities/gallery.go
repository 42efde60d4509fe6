package entities

// GallerySelection is the image-modal state machine for one UI session:
// closed, or open on one item at one image index.
//
// Invariant: whenever Open is true and the gallery is non-empty, Index is
// strictly below the gallery length. Navigation wraps in both directions, so
// an out-of-range index is unreachable through the transitions below.
type GallerySelection struct {
	Open   bool          `json:"open"`
	Item   EquipmentItem `json:"item,omitzero"`
	Index  int           `json:"index"`
	length int
}

// OpenOn enters open(item, 0). Opening with an empty gallery is rejected;
// callers hide the zoom affordance for image-less items.
func (g *GallerySelection) OpenOn(item EquipmentItem, galleryLen int) bool {
	if galleryLen <= 0 {
		return false
	}
	g.Open = true
	g.Item = item
	g.Index = 0
	g.length = galleryLen
	return true
}

// Next advances one image, wrapping to the first after the last.
func (g *GallerySelection) Next() {
	if !g.Open || g.length <= 0 {
		return
	}
	g.Index = (g.Index + 1) % g.length
}

// Previous steps one image back, wrapping to the last before the first.
func (g *GallerySelection) Previous() {
	if !g.Open || g.length <= 0 {
		return
	}
	g.Index = (g.Index - 1 + g.length) % g.length
}

// JumpTo moves straight to index j when 0 <= j < len.
func (g *GallerySelection) JumpTo(j int) bool {
	if !g.Open || j < 0 || j >= g.length {
		return false
	}
	g.Index = j
	return true
}

func (g *GallerySelection) Close() {
	*g = GallerySelection{}
}

// Navigable reports whether prev/next controls apply. Galleries of one image
// expose only close.
func (g *GallerySelection) Navigable() bool {
	return g.Open && g.length > 1
}

// Len is the gallery length captured when the modal opened.
func (g *GallerySelection) Len() int {
	return g.length
}
