package content

import "fmt"

// NavIssue describes a navigation link that will not work as expected.
type NavIssue struct {
	Link   NavLink
	Reason string
}

func (i NavIssue) String() string {
	return fmt.Sprintf("nav link %q -> #%s: %s", i.Link.Name, i.Link.Section, i.Reason)
}

// CheckNavigation reports nav links that are not a subset, in order, of the
// rendered sections. Unmatched links still render; clicking them does
// nothing.
func (p *Portfolio) CheckNavigation() []NavIssue {
	index := make(map[string]int, len(p.Sections))
	for i, s := range p.Sections {
		index[s] = i
	}

	var issues []NavIssue
	last := -1
	for _, link := range p.Nav {
		pos, ok := index[link.Section]
		switch {
		case !ok:
			issues = append(issues, NavIssue{Link: link, Reason: "no such section"})
		case pos < last:
			issues = append(issues, NavIssue{Link: link, Reason: "out of page order"})
		default:
			last = pos
		}
	}
	return issues
}
