package network

import (
	"linux-starfield/internal/engine2D/canvas"
	"linux-starfield/internal/wallpaper"
)

type Node struct {
	Pos    wallpaper.Vec2
	Vel    wallpaper.Vec2
	Radius float64
	Alpha  float64
	Color  canvas.Color
}

type blob struct {
	wallpaper.Blob
	color canvas.Color
}

type palette struct {
	nodes      []canvas.Color
	background []canvas.Color
	link       canvas.Color
	grid       canvas.Color
	glow       canvas.Color
	circuit    canvas.Color
	blobs      []blob
}

// Graph is a set of drifting nodes linked to their near neighbours.
type Graph struct {
	cfg    wallpaper.NetworkSettings
	colors palette
	rng    Rand

	Nodes  []Node
	width  int
	height int
}

// Rand is the subset of math/rand/v2 the graph draws from.
type Rand interface {
	Float64() float64
	IntN(n int) int
}
