package pipeline

import (
	"fmt"

	"github.com/yuin/goldmark/util"
)

// DefaultLang is the document language when none is given.
const DefaultLang = "en"

// documentTemplate wraps a fragment in a complete HTML5 document.
const documentTemplate = `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>
`

// WrapDocument embeds fragment in a standalone HTML5 document. Title and
// lang are escaped; the fragment is trusted as engine output.
func WrapDocument(fragment, title, lang string) string {
	if lang == "" {
		lang = DefaultLang
	}
	return fmt.Sprintf(documentTemplate,
		util.EscapeHTML([]byte(lang)),
		util.EscapeHTML([]byte(title)),
		fragment,
	)
}
