// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/http/httpproxy"
)

// NewHTTPClient returns a client that honours HTTP_PROXY, HTTPS_PROXY and
// NO_PROXY. A zero timeout leaves the deadline to the request context.
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return &http.Client{Timeout: timeout}
	}

	transport = transport.Clone()
	transport.Proxy = http.ProxyFromEnvironment

	return &http.Client{Timeout: timeout, Transport: transport}
}

// ProxyFor returns the proxy the environment selects for target with any
// credentials redacted, or "" when the request goes direct.
func ProxyFor(target string) string {
	parsed, err := url.Parse(target)
	if err != nil {
		return ""
	}

	proxy, err := httpproxy.FromEnvironment().ProxyFunc()(parsed)
	if err != nil || proxy == nil {
		return ""
	}

	return proxy.Redacted()
}
