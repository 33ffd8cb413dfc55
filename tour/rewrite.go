package tour

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// rewriteResourceLinks redirects relative image references in the rendered
// body to the resource route, so tour-local files resolve when the body is
// embedded in the player page.
func rewriteResourceLinks(bodyHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(bodyHTML))
	if err != nil {
		return "", err
	}

	doc.Find("img").Each(func(i int, s *goquery.Selection) {
		src := strings.TrimSpace(s.AttrOr("src", ""))
		if src == "" || isAbsoluteRef(src) {
			return
		}
		s.SetAttr("src", "/resource/"+src)
	})

	return doc.Find("body").Html()
}

func isAbsoluteRef(src string) bool {
	return strings.HasPrefix(src, "/") ||
		strings.HasPrefix(src, "data:") ||
		strings.Contains(src, "://")
}
