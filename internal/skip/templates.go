package skip

import "strings"

// template is a fixed title/body pair for one Reason. Body may contain
// {placeholder} tokens filled from an Info's Details.
type template struct {
	Title string
	Body  string
}

// templates is the total mapping from Reason to its display template. The
// Reason enum is closed, so every constant has exactly one entry here.
var templates = map[Reason]template{
	ReasonInvalidName: {
		Title: "Invalid module identifier",
		Body:  "The repository identifier \"{identifier}\" does not match the required pattern (a letter followed by one or more letters, digits, dots, underscores, or hyphens).",
	},
	ReasonNoDescription: {
		Title: "Missing module description",
		Body:  "The repository has no description set. A short description is required for the module catalog.",
	},
	ReasonNoValidReleases: {
		Title: "No valid releases",
		Body:  "No release passed validation. Every release was either a draft, mutable, or failed the module manifest checks.",
	},
	ReasonReservedName: {
		Title: "Reserved module identifier",
		Body:  "The repository identifier \"{identifier}\" is reserved and cannot be used as a module identifier.",
	},
	ReasonNoZipAsset: {
		Title: "No zip asset",
		Body:  "Release {tagName} has no asset with content-type application/zip.",
	},
	ReasonModuleIDMismatch: {
		Title: "Module identifier mismatch",
		Body:  "Release {tagName} declares id=\"{moduleId}\" in module.prop, which does not match the repository identifier \"{repoName}\".",
	},
	ReasonMissingVersion: {
		Title: "Missing version metadata",
		Body:  "Release {tagName}'s module.prop is missing version (\"{version}\") or versionCode (\"{versionCode}\").",
	},
	ReasonMissingModuleProp: {
		Title: "Missing module.prop",
		Body:  "Release {tagName}'s zip asset does not contain a readable module.prop.",
	},
}

// Template returns the title/body pair for reason. Unknown reasons (which
// should never occur given the closed enum) fall back to a generic
// template rather than panicking.
func Template(reason Reason) (title, body string) {
	t, ok := templates[reason]
	if !ok {
		return "Validation failed", "Validation failed for reason \"{reason}\"."
	}
	return t.Title, t.Body
}

// interpolate replaces every {key} in body with details[key], or the
// literal "N/A" when the key is absent.
func interpolate(body string, details map[string]string) string {
	if !strings.ContainsRune(body, '{') {
		return body
	}
	var sb strings.Builder
	i := 0
	for i < len(body) {
		open := strings.IndexByte(body[i:], '{')
		if open == -1 {
			sb.WriteString(body[i:])
			break
		}
		open += i
		sb.WriteString(body[i:open])
		close := strings.IndexByte(body[open:], '}')
		if close == -1 {
			sb.WriteString(body[open:])
			break
		}
		close += open
		key := body[open+1 : close]
		if v, ok := details[key]; ok {
			sb.WriteString(v)
		} else {
			sb.WriteString("N/A")
		}
		i = close + 1
	}
	return sb.String()
}
