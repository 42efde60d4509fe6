package launcher

import (
	"context"
	"errors"
	"log"
	"strings"

	"clima_hogar/internal/usecase/interfaces"
)

var ErrUnexpectedLinkScheme = errors.New("unexpected deep-link scheme")

// LogLauncher is the server-side stand-in for the browser navigation side
// effect: the deep-links travel back to the client in the submit response,
// and the launcher records the hand-off for traceability. It still validates
// the scheme so a malformed link never reaches a client.
type LogLauncher struct{}

var _ interfaces.ILinkLauncher = (*LogLauncher)(nil)

func NewLogLauncher() *LogLauncher {
	return &LogLauncher{}
}

func (l *LogLauncher) OpenChat(_ context.Context, link string) error {
	if !strings.HasPrefix(link, "https://wa.me/") {
		return ErrUnexpectedLinkScheme
	}
	log.Printf("[handoff][launcher] chat deep-link opened len=%d", len(link))
	return nil
}

func (l *LogLauncher) OpenMail(_ context.Context, link string) error {
	if !strings.HasPrefix(link, "mailto:") {
		return ErrUnexpectedLinkScheme
	}
	log.Printf("[handoff][launcher] mail deep-link opened len=%d", len(link))
	return nil
}
