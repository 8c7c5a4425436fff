package entities

import (
	"strconv"
	"strings"
)

const (
	PageWidth  = 600.0
	PageHeight = 800.0

	ReportTitle   = "GitHub Profile Report"
	NotAvailable  = "N/A"
	LayoutMargin  = 50.0
	LayoutTop     = 750.0
	LineHeight    = 20.0
	SectionGap    = 10.0
	TitleFontSize = 18.0
	HeadingSize   = 14.0
	BodyFontSize  = 12.0
	lineSeparator = "\n"
)

// TextBlock is one or more lines drawn from a baseline. Y is measured from the
// bottom of the page; line i sits at Y - i*LineHeight.
type TextBlock struct {
	X          float64
	Y          float64
	FontSize   float64
	Bold       bool
	LineHeight float64
	Lines      []string
}

// Bottom returns the baseline of the last line in the block.
func (b TextBlock) Bottom() float64 {
	if len(b.Lines) == 0 {
		return b.Y
	}
	return b.Y - float64(len(b.Lines)-1)*b.LineHeight
}

// PageLayout describes a single fixed-size page.
type PageLayout struct {
	Width  float64
	Height float64
	Title  string
	Blocks []TextBlock
}

// ReportSection is a heading followed by a multi-line body.
type ReportSection struct {
	Heading string
	Body    string
}

// ReportSections computes the three summaries in the order they appear on the page.
func ReportSections(artifacts []ArtifactSummary) []ReportSection {
	return []ReportSection{
		{Heading: "Tech Stack", Body: TechStackSummary(artifacts)},
		{Heading: "Experience", Body: ExperienceSummary(artifacts)},
		{Heading: "Impact", Body: ImpactSummary(artifacts)},
	}
}

// LayoutReport places the title, the profile fields and the summary sections
// on one page using a running cursor that only moves down.
func LayoutReport(record AggregateRecord) PageLayout {
	layout := PageLayout{Width: PageWidth, Height: PageHeight, Title: ReportTitle}
	cursor := LayoutTop

	single := func(text string, size float64, bold bool) {
		layout.Blocks = append(layout.Blocks, TextBlock{
			X: LayoutMargin, Y: cursor, FontSize: size, Bold: bold,
			LineHeight: LineHeight, Lines: []string{text},
		})
		cursor -= LineHeight
	}

	single(ReportTitle, TitleFontSize, true)

	profile := record.Profile
	single("Name: "+textOrNotAvailable(profile.Name), BodyFontSize, false)
	single("Username: "+textOrNotAvailable(profile.Login), BodyFontSize, false)
	single("Public Repos: "+counterOrNotAvailable(profile.PublicRepos), BodyFontSize, false)
	single("Followers: "+counterOrNotAvailable(profile.Followers), BodyFontSize, false)
	single("Following: "+counterOrNotAvailable(profile.Following), BodyFontSize, false)

	for _, section := range ReportSections(record.Artifacts) {
		single(section.Heading, HeadingSize, true)

		lines := strings.Split(section.Body, lineSeparator)
		layout.Blocks = append(layout.Blocks, TextBlock{
			X: LayoutMargin, Y: cursor, FontSize: BodyFontSize,
			LineHeight: LineHeight, Lines: lines,
		})
		cursor -= LineHeight*float64(len(lines)+1) + SectionGap
	}

	return layout
}

func textOrNotAvailable(value string) string {
	if value == "" {
		return NotAvailable
	}
	return value
}

func counterOrNotAvailable(value *int) string {
	if value == nil {
		return NotAvailable
	}
	return strconv.Itoa(*value)
}
