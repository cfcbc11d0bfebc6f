package content

import (
	"strings"

	"github.com/h3network/h3report/internal/markup"
	"github.com/h3network/h3report/internal/model"
	"github.com/h3network/h3report/internal/style"
)

const inch = model.Inch

// Spacer heights in points.
const (
	smallGap  = 10
	mediumGap = 20
	largeGap  = 40
)

// Build assembles the progress report. The same sheet, page and output
// always produce the same element sequence.
func Build(sheet *style.Sheet, page model.PageSetup, output string) *model.Document {
	doc := &model.Document{
		Title:   ReportTitle + " - " + ReportSubtitle,
		Subject: SessionFocus,
		Author:  ReportAuthor,
		Output:  output,
		Page:    page,
		Styles:  sheet,
	}

	addTitleBlock(doc)
	addSummary(doc)
	addAccomplishments(doc)
	doc.Append(model.PageBreak())

	addProjectStatus(doc)
	addMetrics(doc)
	addChecklist(doc)
	doc.Append(model.PageBreak())

	addNextSteps(doc)
	addImpact(doc)
	addFooter(doc)

	return doc
}

func addTitleBlock(doc *model.Document) {
	doc.Append(
		model.Heading(style.Title, ReportTitle),
		model.Heading(style.Subtitle, ReportSubtitle),
		model.Spacer(mediumGap),
		model.Paragraph(style.Body, "Date: "+ReportDate),
		model.Paragraph(style.Body, "Session Focus: "+SessionFocus),
		model.Spacer(largeGap),
	)
}

func addSummary(doc *model.Document) {
	doc.Append(
		model.Heading(style.Section, SectionSummary),
		model.RichParagraph(style.Body, SummaryMarkup),
		model.RichParagraph(style.Body, KeyAchievementMarkup),
		model.Spacer(mediumGap),
	)
}

func addAccomplishments(doc *model.Document) {
	doc.Append(
		model.Heading(style.Section, SectionAccomplishments),
		model.Heading(style.Subtitle, SubtitleHardening),
	)
	addCategories(doc, Accomplishments, style.Success)
}

// addCategories appends each category's title in titleStyle followed by its
// items as bullets and a small gap.
func addCategories(doc *model.Document, cats []Category, titleStyle string) {
	for _, cat := range cats {
		doc.Append(model.Heading(titleStyle, cat.Title))
		for _, item := range cat.Items {
			doc.Append(model.Bullet(style.Bullet, item))
		}
		doc.Append(model.Spacer(smallGap))
	}
}

func addProjectStatus(doc *model.Document) {
	doc.Append(
		model.Heading(style.Section, SectionStatus),
		model.TableElement(PhaseTable()),
		model.Spacer(mediumGap),
	)
}

func addMetrics(doc *model.Document) {
	doc.Append(
		model.Heading(style.Section, SectionMetrics),
		model.TableElement(MetricsTable()),
		model.Spacer(mediumGap),
	)
}

// Table regions.
var (
	topLeft     = model.Cell{Col: 0, Row: 0}
	headerRight = model.Cell{Col: -1, Row: 0}
	bodyLeft    = model.Cell{Col: 0, Row: 1}
	bottomRight = model.Cell{Col: -1, Row: -1}
)

// headerCommands styles row 0 as a colored header and the rest as body.
func headerCommands(header, body style.Color, align style.Alignment) []model.Command {
	return []model.Command{
		model.Background(topLeft, headerRight, header),
		model.TextColor(topLeft, headerRight, style.White),
		model.Align(topLeft, bottomRight, align),
		model.FontName(topLeft, headerRight, style.HelveticaBold),
		model.FontSize(topLeft, headerRight, 12),
		model.BottomPadding(topLeft, headerRight, 12),
		model.Background(bodyLeft, bottomRight, body),
		model.Grid(topLeft, bottomRight, 1, style.Black),
	}
}

// PhaseTable returns the 5x3 project status table.
func PhaseTable() *model.Table {
	return model.NewTable(copyRows(PhaseData), copyWidths(PhaseColWidths),
		headerCommands(style.Blue, style.LightBlue, style.AlignCenter)...)
}

// MetricsTable returns the 6x2 session metrics table.
func MetricsTable() *model.Table {
	return model.NewTable(copyRows(MetricsData), copyWidths(MetricsColWidths),
		headerCommands(style.Green, style.White, style.AlignLeft)...)
}

func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}

func copyWidths(w []float64) []float64 {
	return append([]float64(nil), w...)
}

func addChecklist(doc *model.Document) {
	doc.Append(model.Heading(style.Subtitle, SubtitleChecklist))
	for _, item := range Checklist {
		doc.Append(model.Paragraph(style.Success, item))
	}
}

func addNextSteps(doc *model.Document) {
	doc.Append(
		model.Heading(style.Section, SectionNext),
		model.Heading(style.Subtitle, SubtitleTimeline),
	)
	addCategories(doc, NextSteps, style.Body)
}

func addImpact(doc *model.Document) {
	doc.Append(
		model.Heading(style.Section, SectionImpact),
		model.Paragraph(style.Body, ImpactIntro),
	)
	for _, item := range ImpactItems {
		doc.Append(model.RichBullet(style.Bullet, LabelMarkup(item)))
	}
	doc.Append(
		model.Spacer(mediumGap),
		model.RichParagraph(style.Body, BottomLineMarkup),
	)
}

// LabelMarkup splits item on its first colon and returns markup with the
// label (colon included) in bold. Items without a colon are escaped as is.
func LabelMarkup(item string) string {
	label, rest, ok := strings.Cut(item, ":")
	if !ok {
		return markup.Escape(item)
	}
	return markup.Bold(markup.Escape(label+":")) + " " + markup.Escape(strings.TrimSpace(rest))
}

func addFooter(doc *model.Document) {
	doc.Append(
		model.Spacer(largeGap),
		model.Paragraph(style.Footer, FooterGenerated),
		model.Paragraph(style.Footer, FooterTeam),
	)
}
