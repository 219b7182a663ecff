package security

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
	"portfolioAPI/internal/config"
)

var ErrUnknownProvider = errors.New("unknown oauth2 provider")

// Identity is the provider-neutral view of an OAuth2 user-info document.
type Identity struct {
	Provider  string
	Subject   string
	Email     string
	Name      string
	AvatarURL string
	// Login is set by providers that expose a handle (GitHub).
	Login string
}

// BaseUsername is the preferred username before collision suffixes.
func (i Identity) BaseUsername() string {
	if i.Login != "" {
		return i.Login
	}
	if at := strings.Index(i.Email, "@"); at >= 0 {
		return i.Email[:at]
	}
	return i.Email
}

type Provider struct {
	Name        string
	Config      *oauth2.Config
	UserInfoURL string
	extract     func(attrs map[string]any) Identity
}

func (p *Provider) AuthCodeURL(state string) string {
	return p.Config.AuthCodeURL(state)
}

// Exchange trades the authorization code for a token and resolves the identity.
func (p *Provider) Exchange(ctx context.Context, code string) (Identity, error) {
	token, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return Identity{}, fmt.Errorf("exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.UserInfoURL, nil)
	if err != nil {
		return Identity{}, fmt.Errorf("build user info request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Config.Client(ctx, token).Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Identity{}, fmt.Errorf("fetch user info: unexpected status %d", resp.StatusCode)
	}

	attrs := map[string]any{}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&attrs); err != nil {
		return Identity{}, fmt.Errorf("decode user info: %w", err)
	}

	id := p.extract(attrs)
	id.Provider = p.Name
	if id.Email == "" {
		handle := id.Login
		if handle == "" {
			handle = id.Subject
		}
		if handle == "" {
			return Identity{}, errors.New("user info has neither email nor subject")
		}
		id.Email = handle + "@" + p.Name + ".oauth"
	}
	return id, nil
}

func googleIdentity(attrs map[string]any) Identity {
	return Identity{
		Subject:   attr(attrs, "sub"),
		Email:     attr(attrs, "email"),
		Name:      attr(attrs, "name"),
		AvatarURL: attr(attrs, "picture"),
	}
}

func facebookIdentity(attrs map[string]any) Identity {
	id := Identity{
		Subject: attr(attrs, "id"),
		Email:   attr(attrs, "email"),
		Name:    attr(attrs, "name"),
	}
	// picture is {"data": {"url": ...}}
	if picture, ok := attrs["picture"].(map[string]any); ok {
		if data, ok := picture["data"].(map[string]any); ok {
			id.AvatarURL = attr(data, "url")
		}
	}
	return id
}

func githubIdentity(attrs map[string]any) Identity {
	return Identity{
		Subject:   attr(attrs, "id"),
		Email:     attr(attrs, "email"),
		Name:      attr(attrs, "name"),
		AvatarURL: attr(attrs, "avatar_url"),
		Login:     attr(attrs, "login"),
	}
}

func attr(attrs map[string]any, key string) string {
	switch v := attrs[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

type Providers struct {
	byName map[string]*Provider
}

// NewProviders registers every provider that has a client id configured.
func NewProviders(cfg config.OAuth) *Providers {
	p := &Providers{byName: map[string]*Provider{}}

	p.add(cfg.Google, &Provider{
		Name:        "google",
		UserInfoURL: "https://openidconnect.googleapis.com/v1/userinfo",
		extract:     googleIdentity,
	}, endpoints.Google, []string{"openid", "email", "profile"})

	p.add(cfg.Facebook, &Provider{
		Name:        "facebook",
		UserInfoURL: "https://graph.facebook.com/me?fields=id,name,email,picture",
		extract:     facebookIdentity,
	}, endpoints.Facebook, []string{"email", "public_profile"})

	p.add(cfg.GitHub, &Provider{
		Name:        "github",
		UserInfoURL: "https://api.github.com/user",
		extract:     githubIdentity,
	}, endpoints.GitHub, []string{"read:user", "user:email"})

	return p
}

func (p *Providers) add(c config.OAuthProvider, provider *Provider, endpoint oauth2.Endpoint, scopes []string) {
	if c.ClientID == "" {
		return
	}
	provider.Config = &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		Endpoint:     endpoint,
		Scopes:       scopes,
	}
	override(provider, c)
	p.byName[provider.Name] = provider
}

// override points a provider at configured endpoints, keeping the
// defaults for any that are empty.
func override(provider *Provider, c config.OAuthProvider) {
	if c.AuthURL != "" {
		provider.Config.Endpoint.AuthURL = c.AuthURL
	}
	if c.TokenURL != "" {
		provider.Config.Endpoint.TokenURL = c.TokenURL
	}
	if c.UserInfoURL != "" {
		provider.UserInfoURL = c.UserInfoURL
	}
}

func (p *Providers) Get(name string) (*Provider, error) {
	provider, ok := p.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}
	return provider, nil
}
