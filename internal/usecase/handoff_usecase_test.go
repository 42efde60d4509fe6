package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"clima_hogar/internal/domain/entities"
	"clima_hogar/internal/infrastructure/staticdata"
	mock_interfaces "clima_hogar/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testHandoffConfig() HandoffConfig {
	return HandoffConfig{
		WhatsAppPhone: "+56 9 8765 4321",
		ContactEmail:  "contacto@climahogar.cl",
		MailLinkDelay: time.Millisecond,
		ResetDelay:    10 * time.Millisecond,
	}
}

func TestHandoffUseCase_SubmitSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	launcher := mock_interfaces.NewMockILinkLauncher(ctrl)

	registry := NewSessionRegistry()
	id := registry.Start()
	s, _ := registry.Get(id)
	s.Quote.SetContactName("Ana")
	s.Quote.SetContactPhone("+56911112222")

	uc := NewHandoffUseCase(registry, staticdata.MaintenancePricing(), launcher, testHandoffConfig())

	mailOpened := make(chan string, 1)
	launcher.EXPECT().OpenChat(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, link string) error {
			if !strings.HasPrefix(link, "https://wa.me/56987654321?text=") {
				t.Errorf("unexpected chat link: %q", link)
			}
			return nil
		},
	)
	launcher.EXPECT().OpenMail(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, link string) error {
			mailOpened <- link
			return nil
		},
	)

	result, err := uc.Submit(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Started || result.State != entities.SubmissionStateSent {
		t.Fatalf("unexpected result: %+v", result)
	}
	if !strings.HasPrefix(result.MailLink, "mailto:contacto@climahogar.cl?subject=") {
		t.Fatalf("unexpected mail link: %q", result.MailLink)
	}

	select {
	case link := <-mailOpened:
		if link != result.MailLink {
			t.Fatalf("mail launcher got %q, expected %q", link, result.MailLink)
		}
	case <-time.After(time.Second):
		t.Fatalf("mail deep-link never opened")
	}

	// The sent state resets to idle and clears the form after the delay.
	deadline := time.Now().Add(time.Second)
	for {
		state, err := uc.State(context.Background(), id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state == entities.SubmissionStateIdle {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("state never reset to idle, still %s", state)
		}
		time.Sleep(time.Millisecond)
	}
	s.mu.Lock()
	cleared := s.Quote == (entities.QuoteRequest{})
	s.mu.Unlock()
	if !cleared {
		t.Fatalf("expected quote form cleared after reset")
	}
}

func TestHandoffUseCase_SecondSubmitIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	launcher := mock_interfaces.NewMockILinkLauncher(ctrl)

	registry := NewSessionRegistry()
	id := registry.Start()

	cfg := testHandoffConfig()
	// Keep both timers far away so the guard window stays observable.
	cfg.MailLinkDelay = time.Hour
	cfg.ResetDelay = time.Hour
	uc := NewHandoffUseCase(registry, staticdata.MaintenancePricing(), launcher, cfg)

	launcher.EXPECT().OpenChat(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	first, err := uc.Submit(context.Background(), id)
	if err != nil || !first.Started {
		t.Fatalf("first submit failed: %+v err=%v", first, err)
	}

	second, err := uc.Submit(context.Background(), id)
	if err != nil {
		t.Fatalf("guarded submit must not error, got %v", err)
	}
	if second.Started {
		t.Fatalf("second submit must be a no-op")
	}
	if second.State != entities.SubmissionStateSent {
		t.Fatalf("expected sent state reported, got %s", second.State)
	}
	if second.WhatsAppLink != "" || second.MailLink != "" {
		t.Fatalf("guarded submit must not expose links: %+v", second)
	}
}

func TestHandoffUseCase_ChatLaunchFailureReturnsToIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	launcher := mock_interfaces.NewMockILinkLauncher(ctrl)

	registry := NewSessionRegistry()
	id := registry.Start()
	s, _ := registry.Get(id)
	s.Quote.SetContactName("Ana")

	uc := NewHandoffUseCase(registry, staticdata.MaintenancePricing(), launcher, testHandoffConfig())

	launcher.EXPECT().OpenChat(gomock.Any(), gomock.Any()).Return(errors.New("blocked"))

	_, err := uc.Submit(context.Background(), id)
	if err == nil {
		t.Fatalf("expected launch error")
	}

	state, _ := uc.State(context.Background(), id)
	if state != entities.SubmissionStateIdle {
		t.Fatalf("expected idle after failure, got %s", state)
	}
	s.mu.Lock()
	preserved := s.Quote.ContactName == "Ana"
	s.mu.Unlock()
	if !preserved {
		t.Fatalf("visitor input must be preserved for retry")
	}
}

func TestHandoffUseCase_UnconfiguredChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	launcher := mock_interfaces.NewMockILinkLauncher(ctrl)

	registry := NewSessionRegistry()
	id := registry.Start()

	cfg := testHandoffConfig()
	cfg.WhatsAppPhone = "no digits"
	uc := NewHandoffUseCase(registry, staticdata.MaintenancePricing(), launcher, cfg)

	_, err := uc.Submit(context.Background(), id)
	if !errors.Is(err, ErrHandoffNotConfigured) {
		t.Fatalf("expected ErrHandoffNotConfigured, got %v", err)
	}
	state, _ := uc.State(context.Background(), id)
	if state != entities.SubmissionStateIdle {
		t.Fatalf("expected idle after config failure, got %s", state)
	}
}

func TestHandoffUseCase_SubmitUnknownSession(t *testing.T) {
	registry := NewSessionRegistry()
	uc := NewHandoffUseCase(registry, staticdata.MaintenancePricing(), nil, testHandoffConfig())

	if _, err := uc.Submit(context.Background(), "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := uc.State(context.Background(), "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestBuildWhatsAppLink(t *testing.T) {
	link, err := BuildWhatsAppLink("+56 9 8765 4321", "hola mundo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link != "https://wa.me/56987654321?text=hola%20mundo" {
		t.Fatalf("unexpected link: %q", link)
	}

	if _, err := BuildWhatsAppLink("", "x"); !errors.Is(err, ErrHandoffNotConfigured) {
		t.Fatalf("expected ErrHandoffNotConfigured, got %v", err)
	}
}

func TestBuildMailLink(t *testing.T) {
	link, err := BuildMailLink("c@x.cl", "Contacto Web - Otro servicio", "línea 1\nlínea 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(link, "mailto:c@x.cl?subject=Contacto%20Web%20-%20Otro%20servicio&body=") {
		t.Fatalf("unexpected link: %q", link)
	}
	if strings.Contains(link, "+") {
		t.Fatalf("spaces must encode as %%20, got %q", link)
	}

	if _, err := BuildMailLink("  ", "s", "b"); !errors.Is(err, ErrHandoffNotConfigured) {
		t.Fatalf("expected ErrHandoffNotConfigured, got %v", err)
	}
}
