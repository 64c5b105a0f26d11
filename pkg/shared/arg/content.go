package arg

import "strings"

// HandleContent joins the arguments from index from onward into the content
// to insert. Quoting is not required for multi-word content.
func HandleContent(args []string, from int) string {
	if len(args) <= from {
		return ""
	}
	return strings.Join(args[from:], " ")
}
