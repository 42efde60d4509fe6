package response

import (
	"clima_hogar/internal/domain/entities"
	"clima_hogar/internal/usecase"
)

type SessionResponse struct {
	SessionID string `json:"session_id"`
}

type QuoteStateResponse struct {
	ServiceType   string `json:"service_type"`
	CapacityRange string `json:"capacity_range"`
	PlanTier      string `json:"plan_tier"`
	ContactName   string `json:"contact_name"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email"`
	Message       string `json:"message"`
}

func FromQuoteRequest(q entities.QuoteRequest) QuoteStateResponse {
	return QuoteStateResponse{
		ServiceType:   string(q.ServiceType),
		CapacityRange: q.CapacityRange,
		PlanTier:      string(q.PlanTier),
		ContactName:   q.ContactName,
		ContactPhone:  q.ContactPhone,
		ContactEmail:  q.ContactEmail,
		Message:       q.Message,
	}
}

type QuoteMessageResponse struct {
	WhatsAppText string `json:"whatsapp_text"`
	EmailSubject string `json:"email_subject"`
	EmailBody    string `json:"email_body"`
}

func FromQuoteMessage(m usecase.QuoteMessage) QuoteMessageResponse {
	return QuoteMessageResponse{
		WhatsAppText: m.WhatsAppText,
		EmailSubject: m.EmailSubject,
		EmailBody:    m.EmailBody,
	}
}

type SubmitResponse struct {
	State        string `json:"state"`
	Started      bool   `json:"started"`
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
	MailLink     string `json:"mail_link,omitempty"`
	Notice       string `json:"notice,omitempty"`
}

func FromHandoffResult(r usecase.HandoffResult) SubmitResponse {
	return SubmitResponse{
		State:        string(r.State),
		Started:      r.Started,
		WhatsAppLink: r.WhatsAppLink,
		MailLink:     r.MailLink,
		Notice:       r.Notice,
	}
}
