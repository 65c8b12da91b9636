package cnfizer

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/nlarith/dsolve/symbolic"
)

// clauseListText renders a clause list as one line of text per
// clause, in order, for use with diffmatchpatch.
func clauseListText(clauses []symbolic.Formula) string {
	lines := make([]string, len(clauses))
	for i, c := range clauses {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

// diffClauseLists renders a human-readable diff between two clause
// lists, for richer test failure messages than a bare length or
// element mismatch would give.
func diffClauseLists(want, got []symbolic.Formula) string {
	dmp := diffmatchpatch.New()
	wantText, gotText := clauseListText(want), clauseListText(got)
	diffs := dmp.DiffMain(wantText, gotText, false)
	return dmp.DiffPrettyText(diffs)
}
