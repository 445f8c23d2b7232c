package usecases

import (
	"net/http"
	"strings"
)

// EncodeCookies flattens upstream cookies into a Cookie header value for storage.
func EncodeCookies(cookies []*http.Cookie) string {
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		if c == nil || c.Name == "" {
			continue
		}
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}

func DecodeCookies(header string) []*http.Cookie {
	if strings.TrimSpace(header) == "" {
		return nil
	}
	cookies, err := http.ParseCookie(header)
	if err != nil {
		return nil
	}
	return cookies
}
