// Package numbers is the 2048 sliding-tile game.
package numbers

import (
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/arcade-engine/internal/direction"
)

// Cell is a board position. X grows to the east and Y to the south.
type Cell struct{ X, Y int }

// Board is a square grid of tile ranks. Rank 0 is an empty cell; rank r
// shows the number 2^r.
type Board struct {
	size  int
	ranks []int
}

// NewBoard returns an empty size×size board.
func NewBoard(size int) *Board {
	return &Board{size: size, ranks: make([]int, size*size)}
}

// Size returns the board dimension.
func (b *Board) Size() int { return b.size }

// Valid reports whether c is on the board.
func (b *Board) Valid(c Cell) bool {
	return c.X >= 0 && c.X < b.size && c.Y >= 0 && c.Y < b.size
}

func (b *Board) index(c Cell) int {
	if !b.Valid(c) {
		panic(fmt.Sprintf("numbers: cell %v out of range", c))
	}
	return c.X + c.Y*b.size
}

// At returns the rank at c. It panics if c is off the board.
func (b *Board) At(c Cell) int { return b.ranks[b.index(c)] }

// Set stores rank at c. It panics if c is off the board.
func (b *Board) Set(c Cell, rank int) { b.ranks[b.index(c)] = rank }

// Empty returns the empty cells in row order.
func (b *Board) Empty() []Cell {
	var cells []Cell
	for i, r := range b.ranks {
		if r == 0 {
			cells = append(cells, Cell{i % b.size, i / b.size})
		}
	}
	return cells
}

// MaxRank returns the highest rank on the board.
func (b *Board) MaxRank() int {
	m := 0
	for _, r := range b.ranks {
		m = max(m, r)
	}
	return m
}

// CanMove returns true if any slide would change the board.
func (b *Board) CanMove() bool {
	for y := range b.size {
		for x := range b.size {
			r := b.At(Cell{x, y})
			if r == 0 {
				return true
			}
			if x < b.size-1 && b.At(Cell{x + 1, y}) == r {
				return true
			}
			if y < b.size-1 && b.At(Cell{x, y + 1}) == r {
				return true
			}
		}
	}
	return false
}

// Spawn places a new tile on a random empty cell: rank 2 with probability
// fourChance, rank 1 otherwise. ok is false when the board is full.
func (b *Board) Spawn(rng *rand.Rand, fourChance float64) (c Cell, rank int, ok bool) {
	empty := b.Empty()
	if len(empty) == 0 {
		return Cell{}, 0, false
	}
	c = empty[rng.IntN(len(empty))]
	rank = 1
	if rng.Float64() < fourChance {
		rank = 2
	}
	b.Set(c, rank)
	return c, rank, true
}

// Move records where one tile went during a slide.
type Move struct {
	From, To Cell
	Rank     int  // rank before the slide
	Merged   bool // the tile was absorbed by the tile that ends at To
}

// Slide pushes every tile toward d, which must be a cardinal direction.
// Equal ranks that meet merge into one tile of the next rank, and a tile
// merges at most once per slide. It returns the tiles that changed cell,
// the points earned (2^rank of every merged tile) and whether the board
// changed.
func (b *Board) Slide(d direction.Direction) (moves []Move, points int, moved bool) {
	if !d.IsCardinal() {
		return nil, 0, false
	}
	line := make([]Cell, b.size)
	for i := range b.size {
		for k := range b.size {
			line[k] = b.lineCell(d, i, k)
		}
		m, p := b.slideLine(line)
		moves = append(moves, m...)
		points += p
	}
	return moves, points, len(moves) > 0
}

// lineCell returns the k-th cell of line i, counting from the edge tiles
// slide toward.
func (b *Board) lineCell(d direction.Direction, i, k int) Cell {
	last := b.size - 1
	switch d {
	case direction.West:
		return Cell{k, i}
	case direction.East:
		return Cell{last - k, i}
	case direction.North:
		return Cell{i, k}
	default: // South
		return Cell{i, last - k}
	}
}

func (b *Board) slideLine(line []Cell) (moves []Move, points int) {
	out := make([]int, len(line))
	merged := make([]bool, len(line))
	write := 0
	for k, c := range line {
		r := b.At(c)
		if r == 0 {
			continue
		}
		if write > 0 && out[write-1] == r && !merged[write-1] {
			out[write-1] = r + 1
			merged[write-1] = true
			points += 1 << (r + 1)
			moves = append(moves, Move{From: c, To: line[write-1], Rank: r, Merged: true})
			continue
		}
		out[write] = r
		if k != write {
			moves = append(moves, Move{From: c, To: line[write], Rank: r})
		}
		write++
	}
	for k, c := range line {
		b.Set(c, out[k])
	}
	return moves, points
}
