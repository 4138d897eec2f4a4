package convert

import "strings"

// headingLevels maps heading tags to their Markdown hash count.
// Only h1..h4 are produced; deeper headings fall through as plain text.
var headingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4,
}

// Convert walks the node tree bottom-up and returns a Markdown fragment.
// The result is a pure function of the tree and baseURL; it never fails.
// Callers normally pass the result through Finalize before use.
//
// Text content is emitted verbatim — literal Markdown metacharacters in
// the source are not escaped. That can cause accidental formatting in
// the output and is documented behavior, not a bug.
func Convert(n *Node, baseURL string) string {
	if n == nil {
		return ""
	}
	if n.Type == TextNode {
		return n.Text
	}

	// Children first, concatenated in document order. This happens even
	// for tags that discard the result (img, br), so recursion is always
	// structural.
	var b strings.Builder
	for _, child := range n.Children {
		b.WriteString(Convert(child, baseURL))
	}
	content := b.String()

	switch n.Tag {
	case "b", "strong":
		if strings.TrimSpace(content) == "" {
			return ""
		}
		return " **" + content + "** "

	case "i", "em":
		if strings.TrimSpace(content) == "" {
			return ""
		}
		return " *" + content + "* "

	case "u":
		// No Markdown underline; keep the inline HTML.
		return " <u>" + content + "</u> "

	case "h1", "h2", "h3", "h4":
		return "\n" + strings.Repeat("#", headingLevels[n.Tag]) + " " + content + "\n"

	case "a":
		fullHref := ResolveURL(n.Attr("href"), baseURL)
		// Strip the link but keep its text for missing targets and
		// script URLs; neither belongs in a saved document.
		if fullHref == "" || strings.HasPrefix(fullHref, "javascript:") {
			return content
		}
		return "[" + content + "](" + fullHref + ")"

	case "code":
		return " `" + content + "` "

	case "pre":
		return "\n```\n" + content + "\n```\n"

	case "li":
		return "\n- " + content

	case "p", "div", "section", "article":
		return "\n" + content + "\n"

	case "br":
		return "\n"

	case "img":
		fullSrc := ResolveURL(n.Attr("src"), baseURL)
		if fullSrc == "" {
			return ""
		}
		alt := n.Attr("alt")
		if alt == "" {
			alt = "image"
		}
		return "\n![" + alt + "](" + fullSrc + ")\n"

	default:
		// Unknown tags are transparent: the wrapper disappears and the
		// converted children pass through unchanged.
		return content
	}
}
