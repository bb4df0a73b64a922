package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/kernelsu-modules/catalog-builder/internal/platform"
)

// auxiliaryAuthorEntry is one element of the auxiliary manifest's
// additionalAuthors array.
type auxiliaryAuthorEntry struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Link string `json:"link"`
}

type auxiliaryManifest struct {
	AdditionalAuthors []auxiliaryAuthorEntry `json:"additionalAuthors"`
	Summary           interface{}             `json:"summary"`
	SourceURL         interface{}             `json:"sourceUrl"`
	Metamodule        interface{}             `json:"metamodule"`
}

// candidateAuthor tracks both the rendered name and the originating login,
// since the manifest's "remove" entries may target either.
type candidateAuthor struct {
	author Author
	login  string
}

// ResolveAuthors builds the ordered author list from a repository's direct
// collaborators plus its auxiliary manifest's additionalAuthors entries.
// Malformed manifest JSON is treated as an empty manifest.
func ResolveAuthors(platformName string, collaborators []platform.Collaborator, auxiliaryManifestText string) []Author {
	var candidates []candidateAuthor
	seen := make(map[string]bool)

	for _, c := range collaborators {
		name := c.DisplayName
		if name == "" {
			name = c.Login
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		candidates = append(candidates, candidateAuthor{
			author: Author{Name: name, Link: fmt.Sprintf("%s/%s", platformName, c.Login)},
			login:  c.Login,
		})
	}

	manifest, ok := parseAuxiliaryManifest(auxiliaryManifestText)
	if ok {
		for _, entry := range manifest.AdditionalAuthors {
			switch entry.Type {
			case "remove":
				candidates = removeCandidateByName(candidates, entry.Name)
			case "add", "":
				if seen[entry.Name] {
					continue
				}
				seen[entry.Name] = true
				candidates = append(candidates, candidateAuthor{
					author: Author{Name: entry.Name, Link: entry.Link},
				})
			default:
				// unknown entry types are ignored
			}
		}
	}

	authors := make([]Author, len(candidates))
	for i, c := range candidates {
		authors[i] = c.author
	}
	return authors
}

func removeCandidateByName(candidates []candidateAuthor, name string) []candidateAuthor {
	out := candidates[:0]
	for _, c := range candidates {
		if c.author.Name == name || c.login == name {
			continue
		}
		out = append(out, c)
	}
	return out
}

func parseAuxiliaryManifest(text string) (auxiliaryManifest, bool) {
	var m auxiliaryManifest
	if text == "" {
		return m, false
	}
	if err := json.Unmarshal([]byte(text), &m); err != nil {
		return auxiliaryManifest{}, false
	}
	return m, true
}
