package interfaces

import "context"

// ILinkLauncher abstracts the navigation side effect of opening a deep-link
// (chat app, mail client). Keeping it behind a port lets the handoff state
// machine run and be tested without a browser environment.

type ILinkLauncher interface {
	OpenChat(ctx context.Context, link string) error
	OpenMail(ctx context.Context, link string) error
}
