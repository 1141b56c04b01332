// Package brand holds the site's brand configuration and the contact links
// the static pages build from it.
package brand

import (
	_ "embed"
	"fmt"
	"net/url"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/scoutclear/scout/internal/contactform"
)

//go:embed brand.toml
var defaultBrand []byte

// Logos are asset paths served by the static host
type Logos struct {
	LockupWithTagline string `toml:"lockup_with_tagline" json:"lockupWithTagline"`
	WordmarkOnly      string `toml:"wordmark_only" json:"wordmarkOnly"`
	WordmarkWhite     string `toml:"wordmark_white" json:"wordmarkWhite"`
	IconOnly          string `toml:"icon_only" json:"iconOnly"`
}

// Brand is the copy and contact configuration shared by the site and the API
type Brand struct {
	Name              string `toml:"name" json:"name"`
	Tagline           string `toml:"tagline" json:"tagline"`
	Descriptor        string `toml:"descriptor" json:"descriptor"`
	SiteTitle         string `toml:"site_title" json:"siteTitle"`
	BrandColor        string `toml:"brand_color" json:"brandColor"`
	BrandInk          string `toml:"brand_ink" json:"brandInk"`
	ServiceArea       string `toml:"service_area" json:"serviceArea"`
	Phone             string `toml:"phone" json:"phone"`
	Email             string `toml:"email" json:"email"`
	CTAPrimary        string `toml:"cta_primary" json:"ctaPrimary"`
	CTASecondary      string `toml:"cta_secondary" json:"ctaSecondary"`
	SampleReportLabel string `toml:"sample_report_label" json:"sampleReportLabel"`
	SampleReportHref  string `toml:"sample_report_href" json:"sampleReportHref"`
	Logos             Logos  `toml:"logos" json:"logos"`
}

// Default returns the embedded brand configuration
func Default() Brand {
	var b Brand
	if _, err := toml.Decode(string(defaultBrand), &b); err != nil {
		panic("embedded brand.toml is invalid: " + err.Error())
	}
	return b
}

// Load returns the embedded brand with any keys from the TOML file at path
// layered on top. An empty path returns Default().
func Load(path string) (Brand, error) {
	b := Default()
	if path == "" {
		return b, nil
	}
	if _, err := toml.DecodeFile(path, &b); err != nil {
		return Brand{}, fmt.Errorf("failed to load brand file %s: %w", path, err)
	}
	return b, nil
}

// encodeURIComponent leaves A-Z a-z 0-9 - _ . ! ~ * ' ( ) untouched
var uriComponentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(s string) string {
	return uriComponentFixups.Replace(url.QueryEscape(s))
}

// MailtoHref builds the mailto: fallback for the contact form
func MailtoHref(b Brand, f contactform.Form) string {
	lead := f.Company
	if lead == "" {
		lead = f.Name
	}
	if lead == "" {
		lead = "New lead"
	}
	subject := fmt.Sprintf("%s inquiry — %s", b.Name, lead)

	body := strings.Join([]string{
		"Name: " + f.Name,
		"Company/HOA: " + f.Company,
		"Email: " + f.Email,
		"Phone: " + f.Phone,
		"Property address: " + f.PropertyAddress,
		"",
		"Notes:",
		f.Message,
		"",
		fmt.Sprintf("Sent from %s website contact form", strings.ToLower(b.Name)),
	}, "\n")

	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", b.Email, encodeURIComponent(subject), encodeURIComponent(body))
}

// TelHref builds a tel: link keeping only digits and '+'
func TelHref(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return "tel:" + sb.String()
}
