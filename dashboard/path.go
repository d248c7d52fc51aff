package dashboard

import "fmt"

// Path encodes the position of a panel within a board as {row, panel}.
type Path struct {
	row, panel int
}

func (p *Path) String() string {
	return fmt.Sprintf("%d:%d", p.row, p.panel)
}
