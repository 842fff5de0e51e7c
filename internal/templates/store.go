// Package templates loads HTML email templates and renders them by
// substituting {{Key}} placeholders from a payload map plus a fixed
// set of institute branding tokens.
package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// defaultTemplate backs every template name with no file on disk, so a
// missing asset never fails a dispatch.
const defaultTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <div style="text-align: center; margin-bottom: 30px;">
            <img src="{{InstituteLogo}}" alt="{{InstituteName}}" style="max-width: 150px;">
        </div>
        <div>{{Content}}</div>
        <hr style="margin-top: 30px; border: 1px solid #eee;">
        <p style="text-align: center; color: #666; font-size: 12px;">
            {{InstituteName}}<br>
            {{InstituteAddress}}<br>
            Phone: {{InstitutePhone}} | Email: {{InstituteEmail}}<br>
            <a href="{{InstituteWebsite}}">{{InstituteWebsite}}</a>
        </p>
    </div>
</body>
</html>`

// Store resolves template names to HTML documents stored as flat files
// under a single directory, one file per template name.
type Store struct {
	dir string
}

// NewStore creates a template store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load returns the raw HTML for a template name. A missing file falls
// back to the built-in default template; any other read error is a
// rendering failure and propagates.
func (s *Store) Load(name string) (string, error) {
	path := filepath.Join(s.dir, name+".html")
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultTemplate, nil
		}
		return "", fmt.Errorf("failed to read template %s: %w", name, err)
	}
	return string(raw), nil
}
