package links

import (
	"bytes"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

const (
	apiLinkTarget = "_blank"
	apiLinkRel    = "noopener noreferrer"
)

// APILookupLink returns the search URL for an API identifier.
func (r *Resolver) APILookupLink(identifier, version string) string {
	return r.lookupURL() + "?q=" + url.QueryEscape(identifier) + "&version=" + url.QueryEscape(version)
}

// RewriteAPILinksInHTML points every anchor with an api: href at the API
// lookup service, opening in a new tab. Other markup is copied through
// byte for byte.
func (r *Resolver) RewriteAPILinksInHTML(src, version string) string {
	if !strings.Contains(src, "api:") {
		return src
	}

	var out bytes.Buffer
	out.Grow(len(src))
	z := html.NewTokenizer(strings.NewReader(src))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			out.Write(z.Raw())
			continue
		}
		// Token lower-cases names in the tokenizer's buffer.
		raw := append([]byte(nil), z.Raw()...)
		tok := z.Token()
		if tok.Data != "a" || !r.rewriteAnchor(&tok, version) {
			out.Write(raw)
			continue
		}
		out.WriteString(tok.String())
	}
	return out.String()
}

func (r *Resolver) rewriteAnchor(tok *html.Token, version string) bool {
	idx := -1
	for i, a := range tok.Attr {
		if a.Key == "href" && strings.HasPrefix(a.Val, "api:") {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	identifier := strings.TrimPrefix(tok.Attr[idx].Val, "api:")
	if unescaped, err := url.PathUnescape(identifier); err == nil {
		identifier = unescaped
	}
	tok.Attr[idx].Val = r.APILookupLink(identifier, version)

	attrs := tok.Attr[:0]
	for _, a := range tok.Attr {
		if a.Key != "target" && a.Key != "rel" {
			attrs = append(attrs, a)
		}
	}
	tok.Attr = append(attrs,
		html.Attribute{Key: "target", Val: apiLinkTarget},
		html.Attribute{Key: "rel", Val: apiLinkRel},
	)
	return true
}
