package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// sectionIcons maps top-level section names to their leading icon.
// Exact-string lookup over a closed set; unmapped names get no icon.
var sectionIcons = map[string]string{
	"Get Started":   iconRocket,
	"Guides":        iconBook,
	"Reference":     iconBraces,
	"Tutorials":     iconCompass,
	"Integrations":  iconPlug,
	"Release Notes": iconTag,
	"Community":     iconUsers,
}

const (
	iconRocket  = `<svg class="nav-icon" viewBox="0 0 16 16" width="16" height="16" aria-hidden="true"><path fill="currentColor" d="M9.5 1.5c2 0 5 1 5 5l-4 4-1-3-3-1 3-5zM3 9l4 4-1.5 1.5L2 15l.5-3.5L3 9z"/></svg>`
	iconBook    = `<svg class="nav-icon" viewBox="0 0 16 16" width="16" height="16" aria-hidden="true"><path fill="currentColor" d="M2 2h5v12H2a1 1 0 0 1-1-1V3a1 1 0 0 1 1-1zm7 0h5a1 1 0 0 1 1 1v10a1 1 0 0 1-1 1H9V2z"/></svg>`
	iconBraces  = `<svg class="nav-icon" viewBox="0 0 16 16" width="16" height="16" aria-hidden="true"><path fill="currentColor" d="M5 2C3.9 2 3 2.9 3 4v2L1 8l2 2v2c0 1.1.9 2 2 2h1v-2H5v-2.5L3.5 8 5 6.5V4h1V2H5zm6 0h-1v2h1v2.5L12.5 8 11 9.5V12h-1v2h1c1.1 0 2-.9 2-2v-2l2-2-2-2V4c0-1.1-.9-2-2-2z"/></svg>`
	iconCompass = `<svg class="nav-icon" viewBox="0 0 16 16" width="16" height="16" aria-hidden="true"><path fill="currentColor" d="M8 1a7 7 0 1 0 0 14A7 7 0 0 0 8 1zm3 4-1.5 4.5L5 11l1.5-4.5L11 5z"/></svg>`
	iconPlug    = `<svg class="nav-icon" viewBox="0 0 16 16" width="16" height="16" aria-hidden="true"><path fill="currentColor" d="M5 1v4H3v3a5 5 0 0 0 4 4.9V15h2v-2.1A5 5 0 0 0 13 8V5h-2V1H9v4H7V1H5z"/></svg>`
	iconTag     = `<svg class="nav-icon" viewBox="0 0 16 16" width="16" height="16" aria-hidden="true"><path fill="currentColor" d="M8.6 1 15 7.4 7.4 15 1 8.6V1h7.6zM4.5 3A1.5 1.5 0 1 0 4.5 6 1.5 1.5 0 0 0 4.5 3z"/></svg>`
	iconUsers   = `<svg class="nav-icon" viewBox="0 0 16 16" width="16" height="16" aria-hidden="true"><path fill="currentColor" d="M5.5 2a2.5 2.5 0 1 1 0 5 2.5 2.5 0 0 1 0-5zM1 13c0-2.5 2-4.5 4.5-4.5S10 10.5 10 13v1H1v-1zm9.5-8.5a2 2 0 1 1 0 4 2 2 0 0 1 0-4zM11 13c0-1.3-.4-2.4-1.1-3.4.5-.2 1-.3 1.6-.3 2 0 3.5 1.6 3.5 3.7v1h-4v-1z"/></svg>`

	chevronSVG  = `<svg class="nav-chevron" viewBox="0 0 16 16" width="12" height="12" aria-hidden="true"><path fill="currentColor" d="M6 3l5 5-5 5V3z"/></svg>`
	externalSVG = `<svg class="nav-external" viewBox="0 0 16 16" width="12" height="12" aria-hidden="true"><path fill="currentColor" d="M9 2h5v5h-2V5.4L7.7 9.7 6.3 8.3 10.6 4H9V2zM3 4h4v2H4v6h6V9h2v4a1 1 0 0 1-1 1H3a1 1 0 0 1-1-1V5a1 1 0 0 1 1-1z"/></svg>`
)

// SectionIcon returns the leading icon for a top-level section name, or
// nil for unmapped names.
func SectionIcon(name string) g.Node {
	svg, ok := sectionIcons[name]
	if !ok {
		return nil
	}
	return g.Raw(svg)
}

// Chevron renders the directional expansion indicator for nodes with
// children.
func Chevron(expanded bool) g.Node {
	cls := "nav-indicator"
	if expanded {
		cls += " is-open"
	}
	return h.Span(h.Class(cls), g.Raw(chevronSVG))
}

// ExternalIcon renders the outbound-link indicator.
func ExternalIcon() g.Node {
	return h.Span(h.Class("nav-indicator"), g.Raw(externalSVG))
}
