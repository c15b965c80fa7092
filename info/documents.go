package info

import (
	"net/url"
	"sort"

	"github.com/drblury/swaggerversioning/apiversion"
)

// DocumentLink is one entry of the documentation UI selector.
type DocumentLink struct {
	Name       string
	Label      string
	URL        string
	Version    string
	Deprecated bool
}

// TemplateData is passed to the documentation UI template.
type TemplateData struct {
	Title     string
	BaseURL   string
	Documents []DocumentLink
	Selected  DocumentLink
}

// DocumentPath returns the path serving the JSON document of group.
func DocumentPath(group string) string {
	return "/swagger/" + url.PathEscape(group) + "/swagger.json"
}

// documentLinks returns one link per published group, newest version first.
func (ih *InfoHandler) documentLinks() []DocumentLink {
	if ih.documents == nil {
		return nil
	}
	groups := ih.documents.Groups()
	links := make([]DocumentLink, 0, len(groups))
	for _, group := range groups {
		meta, ok := ih.documents.Lookup(group)
		if !ok {
			continue
		}
		label := group
		if meta.Deprecated {
			label += " (deprecated)"
		}
		links = append(links, DocumentLink{
			Name:       group,
			Label:      label,
			URL:        ih.baseURL + DocumentPath(group),
			Version:    meta.Version,
			Deprecated: meta.Deprecated,
		})
	}
	sort.SliceStable(links, func(i, j int) bool {
		return newer(links[i].Name, links[j].Name)
	})
	return links
}

// newer orders parseable groups by descending version ahead of the rest.
func newer(a, b string) bool {
	va, errA := apiversion.Parse(a)
	vb, errB := apiversion.Parse(b)
	switch {
	case errA != nil:
		return false
	case errB != nil:
		return true
	}
	return va.Compare(vb) > 0
}

func (ih *InfoHandler) templateData(selected string) TemplateData {
	data := TemplateData{
		Title:     ih.title,
		BaseURL:   ih.baseURL,
		Documents: ih.documentLinks(),
	}
	if len(data.Documents) == 0 {
		return data
	}
	data.Selected = data.Documents[0]
	for _, link := range data.Documents {
		if link.Name == selected {
			data.Selected = link
			break
		}
	}
	return data
}
