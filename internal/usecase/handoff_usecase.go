package usecase

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"
	"time"
	"unicode"

	"clima_hogar/internal/domain/entities"
	"clima_hogar/internal/usecase/interfaces"
)

var (
	ErrHandoffNotConfigured = errors.New("handoff channels not configured")
)

// HandoffConfig carries the destination channels and the two fire-and-forget
// delays: the mail link opens shortly after the chat link so the two client
// hand-offs don't race for focus, and a successful handoff resets to idle
// after a short grace period.
type HandoffConfig struct {
	WhatsAppPhone string
	ContactEmail  string
	MailLinkDelay time.Duration
	ResetDelay    time.Duration
}

// HandoffResult reports the submit outcome. Started is false when the
// re-entrancy guard swallowed the submit.
type HandoffResult struct {
	State        entities.SubmissionState
	Started      bool
	WhatsAppLink string
	MailLink     string
	Notice       string
}

// IHandoffUseCase is the idle -> sending -> sent -> idle submission machine.

type IHandoffUseCase interface {
	Submit(ctx context.Context, sessionID string) (HandoffResult, error)
	State(ctx context.Context, sessionID string) (entities.SubmissionState, error)
}

type HandoffUseCase struct {
	registry *SessionRegistry
	pricing  entities.MaintenancePricing
	launcher interfaces.ILinkLauncher
	cfg      HandoffConfig
}

var _ IHandoffUseCase = (*HandoffUseCase)(nil)

func NewHandoffUseCase(registry *SessionRegistry, pricing entities.MaintenancePricing, launcher interfaces.ILinkLauncher, cfg HandoffConfig) *HandoffUseCase {
	return &HandoffUseCase{registry: registry, pricing: pricing, launcher: launcher, cfg: cfg}
}

// Submit runs the handoff for the session's quote form. A submit while
// sending or sent is a no-op: at most one handoff is in flight. Any failure
// during composition or link construction surfaces as an error with the state
// back at idle and the visitor's input preserved for retry; no external link
// is opened on a failed run.
func (u *HandoffUseCase) Submit(ctx context.Context, sessionID string) (HandoffResult, error) {
	s, ok := u.registry.Get(sessionID)
	if !ok {
		return HandoffResult{}, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Submission != entities.SubmissionStateIdle {
		log.Printf("[handoff][usecase] submit ignored, already in flight session_id=%s state=%s", sessionID, s.Submission)
		return HandoffResult{State: s.Submission, Started: false}, nil
	}
	s.Submission = entities.SubmissionStateSending

	msg := ComposeQuoteMessage(s.Quote, u.pricing)

	waLink, err := BuildWhatsAppLink(u.cfg.WhatsAppPhone, msg.WhatsAppText)
	if err != nil {
		s.Submission = entities.SubmissionStateIdle
		log.Printf("[handoff][usecase] whatsapp link build failed session_id=%s err=%v", sessionID, err)
		return HandoffResult{State: s.Submission}, err
	}
	mailLink, err := BuildMailLink(u.cfg.ContactEmail, msg.EmailSubject, msg.EmailBody)
	if err != nil {
		s.Submission = entities.SubmissionStateIdle
		log.Printf("[handoff][usecase] mail link build failed session_id=%s err=%v", sessionID, err)
		return HandoffResult{State: s.Submission}, err
	}

	if err := u.launcher.OpenChat(ctx, waLink); err != nil {
		s.Submission = entities.SubmissionStateIdle
		log.Printf("[handoff][usecase] chat launch failed session_id=%s err=%v", sessionID, err)
		return HandoffResult{State: s.Submission}, err
	}

	// The mail client opens after a beat; both actions are idempotent
	// terminal hand-offs, so neither timer needs cancellation.
	time.AfterFunc(u.cfg.MailLinkDelay, func() {
		if err := u.launcher.OpenMail(context.Background(), mailLink); err != nil {
			log.Printf("[handoff][usecase] mail launch failed session_id=%s err=%v", sessionID, err)
		}
	})

	s.Submission = entities.SubmissionStateSent
	log.Printf("[handoff][usecase] handoff sent session_id=%s", sessionID)

	time.AfterFunc(u.cfg.ResetDelay, func() {
		s.mu.Lock()
		s.Submission = entities.SubmissionStateIdle
		s.Quote.Reset()
		s.mu.Unlock()
		log.Printf("[handoff][usecase] session reset to idle session_id=%s", sessionID)
	})

	return HandoffResult{
		State:        s.Submission,
		Started:      true,
		WhatsAppLink: waLink,
		MailLink:     mailLink,
		Notice:       "¡Mensaje enviado! Te contactaremos a la brevedad.",
	}, nil
}

func (u *HandoffUseCase) State(ctx context.Context, sessionID string) (entities.SubmissionState, error) {
	s, ok := u.registry.Get(sessionID)
	if !ok {
		return "", ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Submission, nil
}

// BuildWhatsAppLink builds https://wa.me/<digits>?text=<encoded>. The phone
// is reduced to digits only, as wa.me requires.
func BuildWhatsAppLink(phone, text string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return "", ErrHandoffNotConfigured
	}
	return "https://wa.me/" + digits + "?text=" + encodeComponent(text), nil
}

// BuildMailLink builds mailto:<address>?subject=...&body=....
func BuildMailLink(address, subject, body string) (string, error) {
	if strings.TrimSpace(address) == "" {
		return "", ErrHandoffNotConfigured
	}
	return "mailto:" + address + "?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body), nil
}

// encodeComponent matches encodeURIComponent: query escaping with spaces as
// %20, which both wa.me and mail clients expect.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
