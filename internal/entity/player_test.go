package entity

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func TestRotateAccumulates(t *testing.T) {
	p := NewPlayer(8, 8, 0)

	p.Rotate(0.1)
	p.Rotate(0.1)
	if math.Abs(p.Heading-0.2) > tolerance {
		t.Errorf("Heading = %v, want 0.2", p.Heading)
	}

	// Heading is never normalized; a full lap accumulates past 2*pi.
	for i := 0; i < 100; i++ {
		p.Rotate(0.1)
	}
	if p.Heading < 2*math.Pi {
		t.Errorf("Heading = %v, expected unbounded accumulation", p.Heading)
	}
}

func TestRotateInvertible(t *testing.T) {
	p := NewPlayer(8, 8, 0.7)

	p.Rotate(1.3)
	p.Rotate(-1.3)
	if math.Abs(p.Heading-0.7) > tolerance {
		t.Errorf("Heading = %v after rotate and counter-rotate, want 0.7", p.Heading)
	}
}

func TestWalkDirection(t *testing.T) {
	// Heading 0 faces +y: sin(0) = 0, cos(0) = 1.
	p := NewPlayer(8, 8, 0)
	p.Walk(0.2)
	if p.X != 8 {
		t.Errorf("X = %v, want exactly 8 (no lateral drift at heading 0)", p.X)
	}
	if math.Abs(p.Y-8.2) > tolerance {
		t.Errorf("Y = %v, want 8.2", p.Y)
	}

	// Heading pi/2 faces +x.
	p = NewPlayer(8, 8, math.Pi/2)
	p.Walk(1.0)
	if math.Abs(p.X-9) > tolerance {
		t.Errorf("X = %v, want 9", p.X)
	}
}

func TestWalkInvertible(t *testing.T) {
	// Walk is additive, so a negated step reverts it: the same heading
	// yields the same sine and cosine terms both ways.
	headings := []float64{0, 0.3, 1.1, math.Pi, 5.0, -2.7}

	for _, heading := range headings {
		p := NewPlayer(8.25, 7.5, heading)
		p.Walk(0.2)
		p.Walk(-0.2)
		if math.Abs(p.X-8.25) > tolerance || math.Abs(p.Y-7.5) > tolerance {
			t.Errorf("Heading %v: position (%v,%v) after walk and revert, want (8.25,7.5)",
				heading, p.X, p.Y)
		}
	}
}

func TestPosition(t *testing.T) {
	p := NewPlayer(1.5, 2.5, 0)
	x, y := p.Position()
	if x != 1.5 || y != 2.5 {
		t.Errorf("Position() = (%v,%v), want (1.5,2.5)", x, y)
	}
}
