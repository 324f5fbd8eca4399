package fetcher

import (
	"fmt"
	"net/url"
	"strconv"

	"news_analytics/internal/config"
)

// ProxyURLs builds the ordered proxy identities username-1..username-N on a
// shared host. It returns nil when proxies are disabled or incomplete.
func ProxyURLs(cfg config.ProxyConfig) []*url.URL {
	if !cfg.Enabled || cfg.Host == "" || cfg.Username == "" || cfg.Count <= 0 {
		return nil
	}

	host := cfg.Host
	if cfg.Port > 0 {
		host = host + ":" + strconv.Itoa(cfg.Port)
	}

	urls := make([]*url.URL, 0, cfg.Count)
	for i := 1; i <= cfg.Count; i++ {
		urls = append(urls, &url.URL{
			Scheme: "http",
			User:   url.UserPassword(fmt.Sprintf("%s-%d", cfg.Username, i), cfg.Password),
			Host:   host,
		})
	}
	return urls
}

// route is one entry of the rotation: a proxy identity or the direct connection.
type route struct {
	name  string
	proxy *url.URL
}

func (r route) kind() string {
	if r.proxy == nil {
		return "direct"
	}
	return "proxy"
}

func buildRoutes(proxies []*url.URL) []route {
	routes := make([]route, 0, len(proxies)+1)
	for _, p := range proxies {
		routes = append(routes, route{name: p.User.Username(), proxy: p})
	}
	return append(routes, route{name: "direct"})
}
