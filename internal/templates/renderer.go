package templates

import (
	"strings"

	"github.com/noshahi-devs/notification-service/internal/models"
)

// Renderer renders stored templates with payload and branding values.
type Renderer struct {
	store     *Store
	institute models.InstituteInfo
}

// NewRenderer creates a Renderer over the given store and branding.
func NewRenderer(store *Store, institute models.InstituteInfo) *Renderer {
	return &Renderer{store: store, institute: institute}
}

// Render loads a template by name and performs two substitution
// passes: first the payload map, then the institute branding tokens.
// Tokens with no matching payload key are left verbatim; templates may
// carry optional fields that only some events supply.
func (r *Renderer) Render(name string, data map[string]string) (string, error) {
	html, err := r.store.Load(name)
	if err != nil {
		return "", err
	}
	return r.RenderBody(html, data), nil
}

// RenderBody substitutes payload and branding tokens into an already
// loaded HTML document.
func (r *Renderer) RenderBody(html string, data map[string]string) string {
	for key, value := range data {
		html = strings.ReplaceAll(html, "{{"+key+"}}", value)
	}
	return r.applyBranding(html)
}

func (r *Renderer) applyBranding(html string) string {
	replacer := strings.NewReplacer(
		"{{InstituteName}}", r.institute.Name,
		"{{InstituteAddress}}", r.institute.Address,
		"{{InstitutePhone}}", r.institute.Phone,
		"{{InstituteEmail}}", r.institute.Email,
		"{{InstituteWebsite}}", r.institute.Website,
		"{{InstituteLogo}}", r.institute.Logo,
	)
	return replacer.Replace(html)
}
