package token

import "fmt"

// Pos is a position in the decoded input. Offset counts bytes from 0;
// Line and Col count from 1, Col in runes.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.Offset, p.Line, p.Col)
}

func (p *Pos) advance(r rune, size int) {
	p.Offset += size
	if r == '\n' {
		p.Line++
		p.Col = 1
		return
	}
	p.Col++
}
