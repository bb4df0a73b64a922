package catalog

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// alertLabels maps a blockquote's leading marker line to its admonition
// kind and display label.
var alertLabels = map[string]string{
	"[!NOTE]":      "Note",
	"[!TIP]":       "Tip",
	"[!IMPORTANT]": "Important",
	"[!WARNING]":   "Warning",
	"[!CAUTION]":   "Caution",
}

// alertTransformer rewrites a blockquote whose first line is a bare alert
// marker into a blockquote carrying a markdown-alert-<kind> class, with the
// marker line replaced by a title paragraph.
type alertTransformer struct{}

func (alertTransformer) Transform(doc *gast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()
	_ = gast.Walk(doc, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering {
			return gast.WalkContinue, nil
		}
		if bq, ok := n.(*gast.Blockquote); ok {
			applyAlertMarker(bq, source)
		}
		return gast.WalkContinue, nil
	})
}

func applyAlertMarker(bq *gast.Blockquote, source []byte) {
	para, ok := bq.FirstChild().(*gast.Paragraph)
	if !ok || para.Lines().Len() == 0 {
		return
	}
	firstLine := para.Lines().At(0)
	marker := strings.TrimSpace(string(firstLine.Value(source)))
	label, ok := alertLabels[marker]
	if !ok {
		return
	}
	kind := strings.ToLower(label)
	bq.SetAttributeString("class", []byte("markdown-alert markdown-alert-"+kind))

	title := gast.NewParagraph()
	title.SetAttributeString("class", []byte("markdown-alert-title"))
	title.AppendChild(title, gast.NewString([]byte(label)))
	if para.Lines().Len() == 1 {
		bq.ReplaceChild(bq, para, title)
		return
	}
	// The marker shares a paragraph with the text after it: drop only the
	// inline nodes of the marker line.
	for c := para.FirstChild(); c != nil; {
		next := c.NextSibling()
		t, isText := c.(*gast.Text)
		if !isText || t.Segment.Start >= firstLine.Stop {
			break
		}
		para.RemoveChild(para, c)
		c = next
	}
	bq.InsertBefore(bq, para, title)
}

// blockquoteAlertRenderer renders a Blockquote carrying a "class" attribute
// (set by alertTransformer) with that class on the tag; other blockquotes
// render exactly as goldmark's own default.
type blockquoteAlertRenderer struct{}

func (blockquoteAlertRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(gast.KindBlockquote, renderBlockquoteWithClass)
}

func renderBlockquoteWithClass(w util.BufWriter, _ []byte, n gast.Node, entering bool) (gast.WalkStatus, error) {
	if entering {
		if class, ok := n.AttributeString("class"); ok {
			_, _ = w.WriteString(`<blockquote class="`)
			_, _ = w.Write(class.([]byte))
			_, _ = w.WriteString("\">\n")
		} else {
			_, _ = w.WriteString("<blockquote>\n")
		}
	} else {
		_, _ = w.WriteString("</blockquote>\n")
	}
	return gast.WalkContinue, nil
}

type alertExtension struct{}

func (alertExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(util.Prioritized(alertTransformer{}, 500)))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(util.Prioritized(blockquoteAlertRenderer{}, 100)))
}

// alerts wires GitHub-style blockquote admonitions ("> [!NOTE]" and
// siblings) since goldmark's own GFM bundle has no such extension.
var alerts = alertExtension{}

// markdownRenderer enables task-list checkboxes, tables and strikethrough
// (GFM), footnotes, blockquote alert admonitions, emoji shortcodes, HTML
// passthrough, link auto-detection, and typographic substitution.
var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
		extension.Footnote,
		emoji.Emoji,
		alerts,
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithUnsafe(),
	),
)

// RenderREADME renders raw README markdown to HTML. A missing or
// blank README renders as ("", "").
func RenderREADME(raw string) (rendered string, rawOut string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ""
	}
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(trimmed), &buf); err != nil {
		return "", trimmed
	}
	return buf.String(), trimmed
}
