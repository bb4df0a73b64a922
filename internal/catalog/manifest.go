package catalog

import "strings"

const maxSummaryLength = 512

const summaryEllipsis = "..."

// ExtractSummary returns the manifest's summary field, trimmed and
// ellipsized to 512 characters (a longer summary is cut and ends in
// "..."), or "" if absent or not a string.
func ExtractSummary(auxiliaryManifestText string) string {
	manifest, ok := parseAuxiliaryManifest(auxiliaryManifestText)
	if !ok {
		return ""
	}
	s, ok := manifest.Summary.(string)
	if !ok {
		return ""
	}
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) > maxSummaryLength {
		s = string(runes[:maxSummaryLength-len(summaryEllipsis)]) + summaryEllipsis
	}
	return strings.TrimSpace(s)
}

// ExtractSourceURL returns the manifest's sourceUrl field with CR/LF
// stripped and trimmed, or "" if absent or not a string.
func ExtractSourceURL(auxiliaryManifestText string) string {
	manifest, ok := parseAuxiliaryManifest(auxiliaryManifestText)
	if !ok {
		return ""
	}
	s, ok := manifest.SourceURL.(string)
	if !ok {
		return ""
	}
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	return strings.TrimSpace(s)
}

// ExtractMetamodule reports whether the manifest's metamodule field is
// exactly the boolean true.
func ExtractMetamodule(auxiliaryManifestText string) bool {
	manifest, ok := parseAuxiliaryManifest(auxiliaryManifestText)
	if !ok {
		return false
	}
	b, ok := manifest.Metamodule.(bool)
	return ok && b
}
