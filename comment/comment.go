// Package comment resolves the comment markers for a buffer, first
// from a curated per-filetype table, then from the buffer's own
// commentstring option.
package comment

import (
	"strings"

	"github.com/dshills/nvimkit/nvim"
)

// BlockComment is a pair of multi-line comment markers.
type BlockComment struct {
	Start string
	End   string
}

// Strings describes a language's comment markers. Either field may be
// unset: Block nil, Line empty.
type Strings struct {
	// Block is the multi-line comment pair, nil when the language has
	// none.
	Block *BlockComment
	// Line is the single-line comment leader, empty when the language
	// has none.
	Line string
}

var cStyle = Strings{Block: &BlockComment{Start: "/*", End: "*/"}, Line: "// "}

// byFiletype lists languages that either lack a usable commentstring
// or support both single-line and block comments. Filetypes that embed
// multiple languages (javascriptreact and the like) are deliberately
// absent so a dynamically adjusted commentstring wins.
var byFiletype = map[string]Strings{
	"c":          cStyle,
	"clojure":    {Block: &BlockComment{Start: "(comment ", End: " )"}, Line: ";"},
	"cpp":        cStyle,
	"cs":         cStyle,
	"fennel":     {Line: ";"},
	"go":         cStyle,
	"haskell":    {Block: &BlockComment{Start: "{-", End: "-}"}, Line: "--"},
	"java":       cStyle,
	"javascript": cStyle,
	"kotlin":     cStyle,
	"lua":        {Block: &BlockComment{Start: "--[[", End: "]]"}, Line: "--"},
	"rust":       cStyle,
	"sql":        {Block: &BlockComment{Start: "/*", End: "*/"}, Line: "--"},
	"swift":      cStyle,
	"toml":       {Line: "#"},
	"typescript": cStyle,
}

// fromOption derives comment markers from buf's commentstring option.
// A commentstring like "/*%s*/" yields a block pair; "//%s" yields a
// line leader; anything else yields the zero value.
func fromOption(c nvim.Client, buf nvim.Buffer) Strings {
	v, err := c.BufOption(buf, "commentstring")
	if err != nil {
		return Strings{}
	}
	cs, _ := v.(string)
	if cs == "" {
		return Strings{}
	}

	left, right, found := strings.Cut(cs, "%s")
	if !found || left == "" || strings.Contains(right, "%s") {
		return Strings{}
	}
	if right != "" {
		return Strings{Block: &BlockComment{Start: left, End: right}}
	}
	return Strings{Line: left}
}

// Get returns the comment markers for the current buffer: the curated
// table entry for its filetype when one exists, otherwise whatever its
// commentstring option describes.
func Get(c nvim.Client) (Strings, error) {
	buf, err := c.CurrentBuf()
	if err != nil {
		return Strings{}, err
	}
	ft, err := nvim.Filetype(c, buf)
	if err != nil {
		return Strings{}, err
	}
	if cs, ok := byFiletype[ft]; ok {
		return cs, nil
	}
	return fromOption(c, buf), nil
}
