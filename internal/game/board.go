package game

import (
	"strings"

	"github.com/KirkDiggler/reapers-guild/internal/entities"
)

const (
	tileEncounter = "[!]"
	tileVisited   = "   "
	tilePlayer    = "[@]"
)

// Direction is a board move as numbered in the direction prompt
type Direction int

const (
	DirectionUp Direction = iota + 1
	DirectionDown
	DirectionRight
	DirectionLeft
)

// Directions lists every move in prompt order
var Directions = []Direction{DirectionUp, DirectionDown, DirectionRight, DirectionLeft}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	case DirectionRight:
		return "Right"
	case DirectionLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Board is a square grid where every tile starts with an encounter
type Board struct {
	size    int
	visited [][]bool
}

// NewBoard creates a size x size board with nothing visited
func NewBoard(size int) *Board {
	visited := make([][]bool, size)
	for y := range visited {
		visited[y] = make([]bool, size)
	}
	return &Board{size: size, visited: visited}
}

// Size is the length of one side
func (b *Board) Size() int {
	return b.size
}

// Start is the bottom-middle tile
func (b *Board) Start() entities.Position {
	return entities.Position{X: b.size / 2, Y: b.size - 1}
}

// Contains reports whether the position is on the board
func (b *Board) Contains(p entities.Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.size && p.Y < b.size
}

// Step returns the position one move away. It may be off the board.
func Step(p entities.Position, d Direction) entities.Position {
	switch d {
	case DirectionUp:
		p.Y--
	case DirectionDown:
		p.Y++
	case DirectionRight:
		p.X++
	case DirectionLeft:
		p.X--
	}
	return p
}

// CanMove reports whether moving from p stays on the board
func (b *Board) CanMove(p entities.Position, d Direction) bool {
	return b.Contains(Step(p, d))
}

// Visit clears the encounter on a tile
func (b *Board) Visit(p entities.Position) {
	if b.Contains(p) {
		b.visited[p.Y][p.X] = true
	}
}

// HasEncounter reports whether the tile still holds an encounter
func (b *Board) HasEncounter(p entities.Position) bool {
	return b.Contains(p) && !b.visited[p.Y][p.X]
}

// Remaining counts tiles that still hold an encounter
func (b *Board) Remaining() int {
	n := 0
	for _, row := range b.visited {
		for _, v := range row {
			if !v {
				n++
			}
		}
	}
	return n
}

// Render draws the board one row per line with the character at p
func (b *Board) Render(p entities.Position) string {
	var sb strings.Builder
	for y, row := range b.visited {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			switch {
			case x == p.X && y == p.Y:
				sb.WriteString(tilePlayer)
			case v:
				sb.WriteString(tileVisited)
			default:
				sb.WriteString(tileEncounter)
			}
		}
	}
	return sb.String()
}
