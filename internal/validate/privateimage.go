package validate

import "regexp"

// publicImageURL matches a stable public asset URL embedded in raw
// markdown: https://github.com/{owner}/{repo}/assets/{num}/{uuid}.
var publicImageURL = regexp.MustCompile(
	`https://github\.com/[^/]+/[^/]+/assets/\d+/([0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})`,
)

// privateImageURL matches the time-limited private rendering of the same
// asset: https://private-user-images.githubusercontent.com/{num}/{num}-{uuid}...
// up to (but not including) the next double quote.
var privateImageURL = regexp.MustCompile(
	`https://private-user-images\.githubusercontent\.com/\d+/\d+-([0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})[^"]*`,
)

// RewritePrivateImageURLs replaces every private-user-images URL in html
// whose embedded uuid also appears in a public github.com/.../assets/...
// URL within markdown, with that public URL. Idempotent: once a private
// URL is rewritten to its public form, it no longer matches
// privateImageURL, so a second pass is a no-op.
func RewritePrivateImageURLs(markdown, html string) string {
	uuidToPublic := make(map[string]string)
	for _, match := range publicImageURL.FindAllStringSubmatch(markdown, -1) {
		fullURL, uuid := match[0], match[1]
		if _, exists := uuidToPublic[uuid]; !exists {
			uuidToPublic[uuid] = fullURL
		}
	}
	if len(uuidToPublic) == 0 {
		return html
	}

	return privateImageURL.ReplaceAllStringFunc(html, func(match string) string {
		sub := privateImageURL.FindStringSubmatch(match)
		if sub == nil {
			return match
		}
		if public, ok := uuidToPublic[sub[1]]; ok {
			return public
		}
		return match
	})
}
