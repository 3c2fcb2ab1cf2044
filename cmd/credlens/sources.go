// cmd/credlens/sources.go
package main

import (
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// Fallback credibility values when no outlet is recognized.
const (
	unknownURLCredibility  = 0.40
	unknownTextCredibility = 0.50
	maxRelatedSources      = 2
	maxSuggestedSources    = 3
)

var titleCaser = cases.Title(language.English)

// SourceResolver maps a URL or textual outlet mention to a known
// outlet and its hand-assigned trust score. The table is immutable
// after construction.
type SourceResolver struct {
	outlets []SourceMatch
}

// sourcesFile is the on-disk shape of config/sources.yml.
type sourcesFile struct {
	Local         []SourceMatch `yaml:"local"`
	International []SourceMatch `yaml:"international"`
}

// NewSourceResolver builds a resolver from a YAML outlet table. A
// missing or unreadable file falls back to the built-in table.
func NewSourceResolver(path string) *SourceResolver {
	outlets, err := loadOutlets(path)
	if err != nil {
		Logger().Warning("Using built-in outlet table: %v", err)
		outlets = defaultOutlets()
	}
	return &SourceResolver{outlets: outlets}
}

// NewSourceResolverFromTable builds a resolver over an explicit table.
// Used by tests to keep the scorer isolated from disk state.
func NewSourceResolverFromTable(outlets []SourceMatch) *SourceResolver {
	return &SourceResolver{outlets: outlets}
}

func loadOutlets(path string) ([]SourceMatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}

	var outlets []SourceMatch
	for _, o := range file.Local {
		o.Local = true
		outlets = append(outlets, o)
	}
	for _, o := range file.International {
		o.Local = false
		outlets = append(outlets, o)
	}
	if len(outlets) == 0 {
		return nil, fmt.Errorf("no outlets found in %s", path)
	}
	return outlets, nil
}

// Resolve maps the request content to an outlet credibility score and
// label. URL parsing failures are swallowed; the resolver falls
// through to the unverified branch rather than failing the pipeline.
func (r *SourceResolver) Resolve(content string, inputType InputType) SourceResolution {
	if inputType == InputURL {
		return r.resolveURL(content)
	}
	return r.resolveText(content)
}

func (r *SourceResolver) resolveURL(rawURL string) SourceResolution {
	host := normalizeHost(rawURL)
	if host != "" {
		for _, outlet := range r.outlets {
			if strings.Contains(host, outlet.Domain) {
				return SourceResolution{
					CredibilityScore: outlet.BaseTrust,
					Label:            verifiedLabel(outlet),
					CanonicalURL:     "https://" + outlet.Domain,
					RelatedSources:   r.topOutlets(maxRelatedSources, outlet.Domain),
					Matched:          true,
				}
			}
		}
	}

	// No source detected; suggest high-trust outlets instead.
	return SourceResolution{
		CredibilityScore: unknownURLCredibility,
		Label:            "Unverified source - domain not in the known outlet list",
		RelatedSources:   r.topOutlets(maxSuggestedSources, ""),
	}
}

func (r *SourceResolver) resolveText(content string) SourceResolution {
	lower := strings.ToLower(content)

	for _, outlet := range r.outlets {
		if strings.Contains(lower, strings.ToLower(outlet.DisplayName)) ||
			strings.Contains(lower, domainStem(outlet.Domain)) {
			return SourceResolution{
				CredibilityScore: outlet.BaseTrust,
				Label:            mentionLabel(outlet),
				CanonicalURL:     "https://" + outlet.Domain,
				RelatedSources:   r.topOutlets(maxRelatedSources, outlet.Domain),
				Matched:          true,
			}
		}
	}

	return SourceResolution{
		CredibilityScore: unknownTextCredibility,
		Label:            "No known source detected in the text",
		RelatedSources:   r.topOutlets(maxSuggestedSources, ""),
	}
}

// normalizeHost parses the host out of a URL and strips the leading
// www. prefix. A missing scheme defaults to https, matching what the
// fetcher will actually request. Malformed URLs yield "".
func normalizeHost(rawURL string) string {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.ToLower(u.Host)
	host = strings.TrimPrefix(host, "www.")
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return host
}

// domainStem returns the registrable name without its TLD, used for
// matching outlet mentions in plain text.
func domainStem(domain string) string {
	if idx := strings.Index(domain, "."); idx > 0 {
		return domain[:idx]
	}
	return domain
}

// topOutlets returns the highest-trust outlets, excluding the matched
// domain, sorted by trust descending.
func (r *SourceResolver) topOutlets(n int, excludeDomain string) []SourceMatch {
	candidates := make([]SourceMatch, 0, len(r.outlets))
	for _, o := range r.outlets {
		if o.Domain == excludeDomain {
			continue
		}
		candidates = append(candidates, o)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].BaseTrust > candidates[j].BaseTrust
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

func verifiedLabel(outlet SourceMatch) string {
	region := "international"
	if outlet.Local {
		region = "local"
	}
	return fmt.Sprintf("%s is a verified %s source", titleCaser.String(outlet.DisplayName), region)
}

func mentionLabel(outlet SourceMatch) string {
	region := "international"
	if outlet.Local {
		region = "local"
	}
	return fmt.Sprintf("Text references %s, a known %s outlet", titleCaser.String(outlet.DisplayName), region)
}

// defaultOutlets is the compiled-in trust table: regional outlets plus
// the major international wires. Trust values are hand-assigned.
func defaultOutlets() []SourceMatch {
	local := []SourceMatch{
		{Domain: "rappler.com", DisplayName: "Rappler", BaseTrust: 0.85},
		{Domain: "inquirer.net", DisplayName: "Philippine Daily Inquirer", BaseTrust: 0.85},
		{Domain: "philstar.com", DisplayName: "Philippine Star", BaseTrust: 0.80},
		{Domain: "abs-cbn.com", DisplayName: "ABS-CBN News", BaseTrust: 0.85},
		{Domain: "gmanetwork.com", DisplayName: "GMA News", BaseTrust: 0.85},
		{Domain: "mb.com.ph", DisplayName: "Manila Bulletin", BaseTrust: 0.80},
		{Domain: "pna.gov.ph", DisplayName: "Philippine News Agency", BaseTrust: 0.75},
		{Domain: "manilatimes.net", DisplayName: "Manila Times", BaseTrust: 0.75},
		{Domain: "cnnphilippines.com", DisplayName: "CNN Philippines", BaseTrust: 0.80},
		{Domain: "sunstar.com.ph", DisplayName: "SunStar", BaseTrust: 0.70},
	}
	international := []SourceMatch{
		{Domain: "reuters.com", DisplayName: "Reuters", BaseTrust: 0.95},
		{Domain: "apnews.com", DisplayName: "Associated Press", BaseTrust: 0.95},
		{Domain: "bbc.com", DisplayName: "BBC News", BaseTrust: 0.90},
		{Domain: "bbc.co.uk", DisplayName: "BBC News", BaseTrust: 0.90},
		{Domain: "nytimes.com", DisplayName: "New York Times", BaseTrust: 0.88},
		{Domain: "theguardian.com", DisplayName: "The Guardian", BaseTrust: 0.88},
		{Domain: "washingtonpost.com", DisplayName: "Washington Post", BaseTrust: 0.87},
		{Domain: "aljazeera.com", DisplayName: "Al Jazeera", BaseTrust: 0.82},
		{Domain: "cnn.com", DisplayName: "CNN", BaseTrust: 0.82},
		{Domain: "npr.org", DisplayName: "NPR", BaseTrust: 0.88},
		{Domain: "bloomberg.com", DisplayName: "Bloomberg", BaseTrust: 0.86},
		{Domain: "economist.com", DisplayName: "The Economist", BaseTrust: 0.88},
		{Domain: "afp.com", DisplayName: "Agence France-Presse", BaseTrust: 0.92},
		{Domain: "dw.com", DisplayName: "Deutsche Welle", BaseTrust: 0.85},
		{Domain: "nature.com", DisplayName: "Nature", BaseTrust: 0.95},
	}

	outlets := make([]SourceMatch, 0, len(local)+len(international))
	for _, o := range local {
		o.Local = true
		outlets = append(outlets, o)
	}
	outlets = append(outlets, international...)
	return outlets
}
