package usecase

import (
	"context"
	"errors"
	"log"
)

var (
	ErrGalleryEmpty      = errors.New("item has no gallery images")
	ErrGalleryClosed     = errors.New("gallery is not open")
	ErrGalleryIndexRange = errors.New("gallery index out of range")
)

// GalleryView is the modal state reported back to the UI.
type GalleryView struct {
	Open      bool
	ItemID    string
	Images    []string
	Index     int
	Navigable bool
}

// IGalleryUseCase drives the per-session image modal state machine.

type IGalleryUseCase interface {
	Open(ctx context.Context, sessionID, itemID string) (GalleryView, error)
	Next(ctx context.Context, sessionID string) (GalleryView, error)
	Previous(ctx context.Context, sessionID string) (GalleryView, error)
	JumpTo(ctx context.Context, sessionID string, index int) (GalleryView, error)
	Close(ctx context.Context, sessionID string) (GalleryView, error)
	Current(ctx context.Context, sessionID string) (GalleryView, error)
}

type GalleryUseCase struct {
	registry *SessionRegistry
	catalog  ICatalogUseCase
}

var _ IGalleryUseCase = (*GalleryUseCase)(nil)

func NewGalleryUseCase(registry *SessionRegistry, catalog ICatalogUseCase) *GalleryUseCase {
	return &GalleryUseCase{registry: registry, catalog: catalog}
}

func (u *GalleryUseCase) Open(ctx context.Context, sessionID, itemID string) (GalleryView, error) {
	s, ok := u.registry.Get(sessionID)
	if !ok {
		return GalleryView{}, ErrSessionNotFound
	}

	item, err := u.catalog.ItemByID(ctx, itemID)
	if err != nil {
		return GalleryView{}, err
	}
	images := u.catalog.ImagesFor(item)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Gallery.OpenOn(item, len(images)) {
		log.Printf("[gallery][usecase] open rejected, empty gallery session_id=%s item_id=%s", sessionID, itemID)
		return GalleryView{}, ErrGalleryEmpty
	}
	s.GalleryImages = images
	return viewOf(s), nil
}

func (u *GalleryUseCase) Next(ctx context.Context, sessionID string) (GalleryView, error) {
	return u.navigate(sessionID, func(s *Session) error {
		s.Gallery.Next()
		return nil
	})
}

func (u *GalleryUseCase) Previous(ctx context.Context, sessionID string) (GalleryView, error) {
	return u.navigate(sessionID, func(s *Session) error {
		s.Gallery.Previous()
		return nil
	})
}

func (u *GalleryUseCase) JumpTo(ctx context.Context, sessionID string, index int) (GalleryView, error) {
	return u.navigate(sessionID, func(s *Session) error {
		if !s.Gallery.JumpTo(index) {
			return ErrGalleryIndexRange
		}
		return nil
	})
}

func (u *GalleryUseCase) Close(ctx context.Context, sessionID string) (GalleryView, error) {
	s, ok := u.registry.Get(sessionID)
	if !ok {
		return GalleryView{}, ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Gallery.Close()
	s.GalleryImages = nil
	return viewOf(s), nil
}

func (u *GalleryUseCase) Current(ctx context.Context, sessionID string) (GalleryView, error) {
	s, ok := u.registry.Get(sessionID)
	if !ok {
		return GalleryView{}, ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return viewOf(s), nil
}

func (u *GalleryUseCase) navigate(sessionID string, step func(*Session) error) (GalleryView, error) {
	s, ok := u.registry.Get(sessionID)
	if !ok {
		return GalleryView{}, ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Gallery.Open {
		return GalleryView{}, ErrGalleryClosed
	}
	if err := step(s); err != nil {
		return GalleryView{}, err
	}
	return viewOf(s), nil
}

func viewOf(s *Session) GalleryView {
	if !s.Gallery.Open {
		return GalleryView{}
	}
	return GalleryView{
		Open:      true,
		ItemID:    s.Gallery.Item.ID,
		Images:    s.GalleryImages,
		Index:     s.Gallery.Index,
		Navigable: s.Gallery.Navigable(),
	}
}
