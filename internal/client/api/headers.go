package api

import (
	"net/http"
	"strings"
)

// Значения заголовков, имитирующих браузер
const (
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
	DefaultAcceptLanguage = "en"

	secChUa         = `"Chromium";v="123", "Not:A-Brand";v="99"`
	secChUaPlatform = `"macOS"`
)

// sharedHeaders - общий набор заголовков для запросов к API авторизации и edge хосту
func (c *Client) sharedHeaders() http.Header {
	h := http.Header{}
	h.Set("Accept", "*/*")
	h.Set("Accept-Language", c.cfg.AcceptLanguage)
	h.Set("DNT", "1")
	h.Set("Origin", c.cfg.Origin)
	h.Set("Sec-Ch-Ua", secChUa)
	h.Set("Sec-Ch-Ua-Mobile", "?0")
	h.Set("Sec-Ch-Ua-Platform", secChUaPlatform)
	h.Set("Sec-Fetch-Dest", "empty")
	h.Set("Sec-Fetch-Mode", "cors")
	h.Set("Sec-Fetch-Site", "cross-site")
	h.Set("User-Agent", c.cfg.UserAgent)
	return h
}

// socketHeaders - укороченный набор для socket.io polling
func (c *Client) socketHeaders() http.Header {
	h := http.Header{}
	h.Set("Accept", "*/*")
	h.Set("Accept-Language", c.cfg.AcceptLanguage)
	h.Set("DNT", "1")
	h.Set("Referer", c.cfg.EdgeURL)
	h.Set("User-Agent", c.cfg.UserAgent)
	return h
}

// originPage строит адрес страницы сайта, используемый как referer
func (c *Client) originPage(path string) string {
	return strings.TrimRight(c.cfg.Origin, "/") + path
}
