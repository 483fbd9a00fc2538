// Package googleauth obtains a Google ID token through the OAuth
// authorization code flow with a loopback callback server. The ID token
// is handed to the task service, which verifies it and issues its own
// session credential.
package googleauth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/taskdeck/taskdeck/internal/domain"
)

const (
	callbackTimeout = 5 * time.Minute
	exchangeTimeout = 30 * time.Second

	// Starting port for the OAuth callback server.
	startPort       = 8085
	maxPortAttempts = 5
)

// Ensure Provider implements domain.IdentityProvider.
var _ domain.IdentityProvider = (*Provider)(nil)

// Provider runs the browser sign-in flow for a Google OAuth client.
// Fields are ordered to minimize memory padding.
type Provider struct {
	openURL  func(url string) error
	clientID string
	secret   string
}

// New creates a Provider. openURL is called with the consent page URL;
// pass a function that prints it or launches a browser.
func New(clientID, secret string, openURL func(url string) error) *Provider {
	return &Provider{openURL: openURL, clientID: clientID, secret: secret}
}

// IDToken runs the authorization code flow and returns the ID token.
func (p *Provider) IDToken(ctx context.Context) (string, error) {
	if p.clientID == "" {
		return "", errors.New("google client ID is not configured")
	}

	port, listener, err := findAvailablePort()
	if err != nil {
		return "", fmt.Errorf("bind oauth callback port: %w", err)
	}
	defer listener.Close()

	conf := &oauth2.Config{
		ClientID:     p.clientID,
		ClientSecret: p.secret,
		Endpoint:     google.Endpoint,
		RedirectURL:  fmt.Sprintf("http://localhost:%d/callback", port),
		Scopes:       []string{"openid", "email", "profile"},
	}

	verifier := oauth2.GenerateVerifier()
	authURL := conf.AuthCodeURL("state", oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))
	if err := p.openURL(authURL); err != nil {
		return "", fmt.Errorf("open consent page: %w", err)
	}

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "No code in callback", http.StatusBadRequest)
			errCh <- errors.New("no code in callback")
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><body><h1>Sign-in complete</h1><p>You may close this window.</p></body></html>")
		codeCh <- code
	})

	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return "", err
	case <-time.After(callbackTimeout):
		return "", errors.New("oauth callback timed out")
	case <-ctx.Done():
		return "", ctx.Err()
	}

	exchangeCtx, cancel := context.WithTimeout(ctx, exchangeTimeout)
	defer cancel()

	token, err := conf.Exchange(exchangeCtx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return "", fmt.Errorf("exchange code for token: %w", err)
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", errors.New("token response did not include an ID token")
	}
	return idToken, nil
}

// findAvailablePort tries ports starting from startPort.
func findAvailablePort() (int, net.Listener, error) {
	for i := 0; i < maxPortAttempts; i++ {
		port := startPort + i
		listener, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
		if err == nil {
			return port, listener, nil
		}
	}
	return 0, nil, fmt.Errorf("no available port in %d-%d", startPort, startPort+maxPortAttempts-1)
}
