package main

import "fmt"

type Point struct {
	X, Y int32
}

func (p Point) String() string {
	return fmt.Sprintf("{x: %d, y: %d}", p.X, p.Y)
}
