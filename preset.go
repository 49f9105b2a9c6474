package reportconf

import "sort"

// Preset applies a bundle of builder calls. Presets only use the public
// Builder methods, so calls issued after a preset override its values.
type Preset func(b *Builder) *Builder

// ConfidentialPDF configures a branded, watermarked PDF with header, footer
// and page numbers
func ConfidentialPDF(b *Builder) *Builder {
	return b.
		WithFormat("PDF").
		IncludeHeader("Relatório de Vendas").
		IncludeFooter("Confidencial").
		WithWaterMark("Confidencial").
		WithCompanyLogo("logo.png").
		Page("A4", "Portrait").
		IncludePageNumbers()
}

// Apply applies presets in order
func (b *Builder) Apply(presets ...Preset) *Builder {
	for _, p := range presets {
		if p != nil {
			p(b)
		}
	}
	return b
}

// UseConfidentialPDFTemplate applies the ConfidentialPDF preset
func (b *Builder) UseConfidentialPDFTemplate() *Builder {
	return b.Apply(ConfidentialPDF)
}

var presets = map[string]Preset{
	"confidential-pdf": ConfidentialPDF,
}

// LookupPreset returns the preset registered under name
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames returns registered preset names in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
