package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/noshahi-devs/notification-service/internal/models"
)

var testInstitute = models.InstituteInfo{
	Name:    "Noshahi Institute",
	Address: "Main Campus, Lahore",
	Phone:   "+92-42-1234567",
	Email:   "info@noshahi.edu.pk",
	Website: "https://noshahi.edu.pk",
	Logo:    "https://noshahi.edu.pk/logo.png",
}

func writeTemplate(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".html"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRenderSubstitutesPayloadAndBranding(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "Welcome", "<p>Hello {{UserName}} from {{InstituteName}}</p>")
	r := NewRenderer(NewStore(dir), testInstitute)

	body, err := r.Render("Welcome", map[string]string{"UserName": "Ayesha"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if body != "<p>Hello Ayesha from Noshahi Institute</p>" {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestRenderLeavesUnmatchedTokensVerbatim(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "Exam", "{{ExamName}} / {{CalculatorAllowed}}")
	r := NewRenderer(NewStore(dir), testInstitute)

	body, err := r.Render("Exam", map[string]string{"ExamName": "Mid-Term"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if body != "Mid-Term / {{CalculatorAllowed}}" {
		t.Fatalf("unmatched token must stay verbatim, got %q", body)
	}

	// Supplying the token later substitutes it.
	body, err = r.Render("Exam", map[string]string{"ExamName": "Mid-Term", "CalculatorAllowed": "Yes"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if body != "Mid-Term / Yes" {
		t.Fatalf("supplied token must substitute, got %q", body)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "Fee", "{{StudentName}} owes {{Amount}} to {{InstituteName}}")
	r := NewRenderer(NewStore(dir), testInstitute)
	data := map[string]string{"StudentName": "Bilal", "Amount": "Rs. 5000"}

	first, err := r.Render("Fee", data)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Render("Fee", data)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("render not deterministic: %q vs %q", first, second)
	}
}

func TestMissingTemplateFallsBackToDefault(t *testing.T) {
	r := NewRenderer(NewStore(t.TempDir()), testInstitute)

	body, err := r.Render("NoSuchTemplate", map[string]string{"Content": "<p>Hi there</p>"})
	if err != nil {
		t.Fatalf("missing template must not fail: %v", err)
	}
	if !strings.Contains(body, "<p>Hi there</p>") {
		t.Fatalf("expected content substituted into fallback, got %q", body)
	}
	if !strings.Contains(body, "Noshahi Institute") {
		t.Fatal("expected branding applied to fallback template")
	}
}

func TestStoreReadErrorPropagates(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain-file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Using a file as the directory forces a non-ErrNotExist read error.
	if _, err := NewStore(file).Load("Anything"); err == nil {
		t.Fatal("expected load error")
	}
}
