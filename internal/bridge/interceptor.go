package bridge

import (
	"context"
	"strings"
)

// Scheme is the reserved bridge-callback URL scheme. Any navigation to it
// is cancelled and treated as a queue signal.
const Scheme = "bridge-callback"

// CallbackURL is the canonical signal URL the document emits.
const CallbackURL = Scheme + "://queue"

// Policy is the interceptor's verdict on one navigation request.
type Policy int

const (
	// Allow lets the navigation proceed.
	Allow Policy = iota
	// Cancel suppresses the navigation.
	Cancel
)

// NavigationType classifies what caused a navigation request.
type NavigationType int

const (
	// NavigationOther covers initial loads, redirects, and everything
	// that is not a direct user link activation.
	NavigationOther NavigationType = iota
	// NavigationLinkActivated is a direct user activation of a
	// hyperlink inside the document.
	NavigationLinkActivated
)

// LinkFunc asks the host whether a user-activated link may navigate.
type LinkFunc func(url string) bool

// Interceptor decides the fate of every navigation request the embedded
// document makes.
type Interceptor struct {
	drainer *Drainer
	onLink  LinkFunc
}

// NewInterceptor wires an interceptor to drainer. onLink may be nil, in
// which case user link activations are cancelled.
func NewInterceptor(drainer *Drainer, onLink LinkFunc) *Interceptor {
	return &Interceptor{drainer: drainer, onLink: onLink}
}

// Decide classifies rawURL and returns the navigation policy. A
// bridge-callback URL triggers a queue drain before returning Cancel.
func (i *Interceptor) Decide(ctx context.Context, rawURL string, nav NavigationType) Policy {
	if IsCallback(rawURL) {
		i.drainer.Drain(ctx)
		return Cancel
	}

	if nav == NavigationLinkActivated {
		if i.onLink != nil && i.onLink(rawURL) {
			return Allow
		}
		return Cancel
	}

	return Allow
}

// IsCallback reports whether rawURL uses the reserved scheme.
func IsCallback(rawURL string) bool {
	return strings.HasPrefix(rawURL, Scheme+"://")
}
