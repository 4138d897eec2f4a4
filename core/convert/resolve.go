package convert

import "net/url"

// ResolveURL resolves a possibly relative URL against baseURL and
// returns the absolute form. It never fails: an empty urlStr returns ""
// (callers read that as "no URL, omit the construct"), and anything
// that cannot be parsed or resolved comes back unchanged as a
// best-effort passthrough.
func ResolveURL(urlStr, baseURL string) string {
	if urlStr == "" {
		return ""
	}

	ref, err := url.Parse(urlStr)
	if err != nil {
		return urlStr
	}

	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return urlStr
	}

	return base.ResolveReference(ref).String()
}
