package googleapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

const (
	tokenInfoEndpoint = "https://oauth2.googleapis.com/tokeninfo"
	userInfoEndpoint  = "https://www.googleapis.com/oauth2/v3/userinfo"
)

type UserInfo struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

var ErrInvalidToken = fmt.Errorf("google token is invalid or expired")

// Verifier validates Google credentials against Google's own endpoints.
type Verifier struct {
	HttpClient *http.Client
}

func NewVerifier() *Verifier {
	return &Verifier{
		HttpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// VerifyCredential checks an ID token through the tokeninfo endpoint and
// enforces the audience.
func (v *Verifier) VerifyCredential(ctx context.Context, credential, clientId string) (*UserInfo, error) {
	endpoint := tokenInfoEndpoint + "?id_token=" + url.QueryEscape(credential)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not reach Google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidToken
	}

	var payload struct {
		Audience string `json:"aud"`
		Subject  string `json:"sub"`
		Email    string `json:"email"`
		Name     string `json:"name"`
		Picture  string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("could not read Google's response: %w", err)
	}

	if clientId != "" && payload.Audience != clientId {
		return nil, ErrInvalidToken
	}
	if payload.Email == "" {
		return nil, ErrInvalidToken
	}

	return &UserInfo{
		Subject: payload.Subject,
		Email:   payload.Email,
		Name:    payload.Name,
		Picture: payload.Picture,
	}, nil
}

// VerifyAccessToken fetches the userinfo profile with the access token; a
// valid token yields the profile Google believes it belongs to.
func (v *Verifier) VerifyAccessToken(ctx context.Context, accessToken string) (*UserInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
	}))
	client.Timeout = 10 * time.Second

	resp, err := client.Get(userInfoEndpoint)
	if err != nil {
		return nil, fmt.Errorf("could not reach Google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidToken
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("could not read Google's response: %w", err)
	}
	if info.Email == "" {
		return nil, ErrInvalidToken
	}

	return &info, nil
}
