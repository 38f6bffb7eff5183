// Package auth manages the OAuth2 credential lifecycle: loading a
// persisted token, refreshing it, and running the interactive consent
// flow when nothing usable is on disk.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/youtube/v3"
)

// ErrAuthenticationRequired is returned when no usable credential exists
// and the caller did not allow an interactive consent flow.
var ErrAuthenticationRequired = errors.New("authentication required: run `tubeflow auth` first")

// Authenticator produces authenticated HTTP clients for the YouTube API.
type Authenticator struct {
	conf  *oauth2.Config
	store *TokenStore

	// Manual switches the consent flow from the loopback redirect server
	// to the copy-paste out-of-band flow, for headless environments.
	Manual bool

	// readCode is replaceable in tests.
	readCode func() (string, error)
}

// NewAuthenticator builds an Authenticator from a client secret JSON file
// (as downloaded from the Google API console) and a token cache path.
func NewAuthenticator(clientSecretPath, tokenPath string) (*Authenticator, error) {
	b, err := os.ReadFile(clientSecretPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secret file %s: %w", clientSecretPath, err)
	}
	conf, err := google.ConfigFromJSON(b, youtube.YoutubeUploadScope, youtube.YoutubeScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client secret file %s: %w", clientSecretPath, err)
	}
	return &Authenticator{
		conf:     conf,
		store:    NewTokenStore(tokenPath),
		readCode: readCodeFromStdin,
	}, nil
}

// Client returns an HTTP client bound to a valid credential. Token order
// of preference: reuse a persisted unexpired token, refresh an expired
// one, or — only when interactive is true — run the consent flow.
func (a *Authenticator) Client(ctx context.Context, interactive bool) (*http.Client, error) {
	token, err := a.Token(ctx, interactive)
	if err != nil {
		return nil, err
	}
	// Wrap the refreshing source so tokens minted mid-run are persisted
	// and survive a restart.
	src := &savingTokenSource{
		src:   a.conf.TokenSource(ctx, token),
		store: a.store,
		last:  token.AccessToken,
	}
	return oauth2.NewClient(ctx, src), nil
}

// Token obtains a valid OAuth2 token, persisting it after any creation
// or refresh.
func (a *Authenticator) Token(ctx context.Context, interactive bool) (*oauth2.Token, error) {
	token, err := a.store.Load()
	if err != nil {
		logger.Warn("stored token unreadable, it will be replaced", slog.String("error", err.Error()))
		token = nil
	}

	if token != nil && token.Valid() {
		return token, nil
	}

	if token != nil && token.RefreshToken != "" {
		refreshed, err := a.conf.TokenSource(ctx, token).Token()
		if err == nil {
			if err := a.store.Save(refreshed); err != nil {
				logger.Warn("failed to persist refreshed token", slog.String("error", err.Error()))
			}
			return refreshed, nil
		}
		logger.Warn("token refresh failed, falling back to consent flow", slog.String("error", err.Error()))
	}

	if !interactive {
		return nil, ErrAuthenticationRequired
	}

	token, err = a.consent(ctx)
	if err != nil {
		return nil, err
	}
	if token.RefreshToken == "" {
		// Google omits the refresh token when consent was already granted
		// in the past. The access token still works for this run.
		logger.Warn("no refresh token in consent response; revoke access at " +
			"https://myaccount.google.com/permissions and re-run `tubeflow auth` " +
			"to obtain one")
	}
	if err := a.store.Save(token); err != nil {
		logger.Warn("failed to persist token", slog.String("error", err.Error()))
	}
	return token, nil
}

// consent runs the interactive authorization-code flow.
func (a *Authenticator) consent(ctx context.Context) (*oauth2.Token, error) {
	if a.Manual {
		return a.consentOutOfBand(ctx)
	}
	return a.consentLoopback(ctx)
}

// consentOutOfBand prints the auth URL and reads the code from stdin.
func (a *Authenticator) consentOutOfBand(ctx context.Context) (*oauth2.Token, error) {
	authURL := a.conf.AuthCodeURL(uuid.NewString(), oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the "+
		"authorization code: \n%v\n\nCode: ", authURL)

	code, err := a.readCode()
	if err != nil {
		return nil, fmt.Errorf("unable to read authorization code: %w", err)
	}
	token, err := a.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web: %w", err)
	}
	return token, nil
}

// consentLoopback serves a one-shot redirect listener on a free local
// port and waits for the provider to deliver the authorization code.
func (a *Authenticator) consentLoopback(ctx context.Context) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to start local callback listener: %w", err)
	}
	defer listener.Close()

	conf := *a.conf
	conf.RedirectURL = fmt.Sprintf("http://%s/callback", listener.Addr())

	state := uuid.NewString()
	type result struct {
		code string
		err  error
	}
	results := make(chan result, 1)

	var once sync.Once
	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/callback" {
				http.NotFound(w, r)
				return
			}
			once.Do(func() {
				if got := r.URL.Query().Get("state"); got != state {
					http.Error(w, "state mismatch", http.StatusBadRequest)
					results <- result{err: fmt.Errorf("oauth state mismatch")}
					return
				}
				code := r.URL.Query().Get("code")
				if code == "" {
					http.Error(w, "missing code", http.StatusBadRequest)
					results <- result{err: fmt.Errorf("callback carried no authorization code")}
					return
				}
				fmt.Fprintln(w, "Authorization received. You can close this tab and return to tubeflow.")
				results <- result{code: code}
			})
		}),
	}
	go server.Serve(listener)
	defer server.Close()

	authURL := conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
	fmt.Printf("Open the following link in your browser to authorize tubeflow:\n%v\n", authURL)

	select {
	case res := <-results:
		if res.err != nil {
			return nil, res.err
		}
		token, err := conf.Exchange(ctx, res.code)
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve token from web: %w", err)
		}
		return token, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func readCodeFromStdin() (string, error) {
	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return "", err
	}
	return code, nil
}

// savingTokenSource persists tokens minted by the wrapped source.
type savingTokenSource struct {
	src   oauth2.TokenSource
	store *TokenStore

	mu   sync.Mutex
	last string
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if token.AccessToken != s.last {
		s.last = token.AccessToken
		if err := s.store.Save(token); err != nil {
			logger.Warn("failed to persist refreshed token", slog.String("error", err.Error()))
		}
	}
	return token, nil
}
