package middleware

import (
	"net/http"
	"strings"
)

type Access int

const (
	Authenticated Access = iota
	Public
	Admin
)

func (a Access) String() string {
	switch a {
	case Public:
		return "public"
	case Admin:
		return "admin"
	default:
		return "authenticated"
	}
}

// Rule grants Access to requests whose method and path match. An empty
// Method matches any method. In Pattern, "*" matches exactly one path
// segment and "**" matches zero or more.
type Rule struct {
	Method  string
	Pattern string
	Access  Access
}

// Policy is evaluated in order and the first matching rule wins. Requests
// matching no rule need an authenticated user.
type Policy []Rule

func (p Policy) Resolve(method, path string) Access {
	for _, rule := range p {
		if rule.Method != "" && rule.Method != method {
			continue
		}
		if matchPattern(rule.Pattern, path) {
			return rule.Access
		}
	}
	return Authenticated
}

func DefaultPolicy() Policy {
	return Policy{
		{Method: http.MethodOptions, Pattern: "/**", Access: Public},

		{Method: http.MethodPost, Pattern: "/auth/login", Access: Public},
		{Method: http.MethodPost, Pattern: "/auth/register", Access: Public},
		{Method: http.MethodPost, Pattern: "/auth/refresh", Access: Public},
		{Method: http.MethodPost, Pattern: "/auth/logout", Access: Public},
		{Method: http.MethodGet, Pattern: "/auth/oauth2/**", Access: Public},

		{Method: http.MethodGet, Pattern: "/health", Access: Public},
		{Method: http.MethodGet, Pattern: "/metrics", Access: Public},

		{Method: http.MethodGet, Pattern: "/api/portfolio/**", Access: Public},
		{Method: http.MethodGet, Pattern: "/api/posts/**", Access: Public},
		{Method: http.MethodGet, Pattern: "/api/comments/post/*", Access: Public},

		{Method: http.MethodPost, Pattern: "/api/comments", Access: Authenticated},
		{Method: http.MethodDelete, Pattern: "/api/comments/*", Access: Admin},

		{Method: http.MethodPost, Pattern: "/api/portfolio", Access: Admin},
		{Method: http.MethodPut, Pattern: "/api/portfolio/*", Access: Admin},
		{Method: http.MethodDelete, Pattern: "/api/portfolio/*", Access: Admin},
		{Method: http.MethodPost, Pattern: "/api/posts", Access: Admin},
		{Method: http.MethodPut, Pattern: "/api/posts/*", Access: Admin},
		{Method: http.MethodDelete, Pattern: "/api/posts/*", Access: Admin},
		{Method: http.MethodPost, Pattern: "/api/images", Access: Admin},
		{Method: http.MethodDelete, Pattern: "/api/images/**", Access: Admin},
	}
}

func matchPattern(pattern, path string) bool {
	return matchSegments(splitPath(pattern), splitPath(path))
}

func matchSegments(pattern, path []string) bool {
	for len(pattern) > 0 {
		head := pattern[0]
		if head == "**" {
			rest := pattern[1:]
			for i := 0; i <= len(path); i++ {
				if matchSegments(rest, path[i:]) {
					return true
				}
			}
			return false
		}
		if len(path) == 0 {
			return false
		}
		if head != "*" && head != path[0] {
			return false
		}
		pattern, path = pattern[1:], path[1:]
	}
	return len(path) == 0
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
