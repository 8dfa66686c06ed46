package network

import (
	"fmt"
	"math"

	"linux-starfield/internal/wallpaper"
)

func NewGraph(cfg wallpaper.NetworkSettings, rng Rand) (*Graph, error) {
	if rng == nil {
		return nil, fmt.Errorf("network: nil random source")
	}
	if cfg.Count <= 0 && cfg.DensityDivisor <= 0 {
		return nil, fmt.Errorf("network: need a node count or a density divisor")
	}
	if cfg.Grid != wallpaper.GridNone && cfg.GridSize <= 0 {
		return nil, fmt.Errorf("network: grid size must be positive, got %v", cfg.GridSize)
	}
	colors, err := parsePalette(cfg)
	if err != nil {
		return nil, err
	}
	return &Graph{cfg: cfg, colors: colors, rng: rng}, nil
}

// NodeCount returns how many nodes a width x height viewport holds.
func NodeCount(cfg wallpaper.NetworkSettings, width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	if cfg.Count > 0 {
		if cfg.CompactCount > 0 && width < cfg.CompactWidth {
			return cfg.CompactCount
		}
		return cfg.Count
	}
	return int(float64(width) * float64(height) / cfg.DensityDivisor)
}

// Resize re-seeds the nodes for a new viewport.
func (g *Graph) Resize(width, height int) {
	if width == g.width && height == g.height && g.Nodes != nil {
		return
	}
	g.width, g.height = width, height

	cfg := g.cfg
	nodes := make([]Node, NodeCount(cfg, width, height))
	for i := range nodes {
		nodes[i] = Node{
			Pos: wallpaper.Vec2{X: g.rng.Float64() * float64(width), Y: g.rng.Float64() * float64(height)},
			Vel: wallpaper.Vec2{
				X: (g.rng.Float64() - 0.5) * cfg.MaxSpeed,
				Y: (g.rng.Float64() - 0.5) * cfg.MaxSpeed,
			},
			Radius: cfg.RadiusMin + g.rng.Float64()*(cfg.RadiusMax-cfg.RadiusMin),
			Alpha:  cfg.AlphaMin + g.rng.Float64()*(cfg.AlphaMax-cfg.AlphaMin),
			Color:  g.colors.nodes[g.rng.IntN(len(g.colors.nodes))],
		}
	}
	g.Nodes = nodes
}

// Update moves every node by one frame.
func (g *Graph) Update(in wallpaper.Input, tick wallpaper.Tick) {
	if in.Empty() {
		return
	}
	g.Resize(in.Width, in.Height)

	frames := tick.Frames()
	for i := range g.Nodes {
		g.step(&g.Nodes[i], in, frames)
	}
}

func (g *Graph) step(n *Node, in wallpaper.Input, frames float64) {
	cfg := g.cfg
	n.Pos.X += n.Vel.X * frames
	n.Pos.Y += n.Vel.Y * frames

	if in.HasPointer && cfg.PointerRange > 0 {
		dx, dy := in.Pointer.X-n.Pos.X, in.Pointer.Y-n.Pos.Y
		dist := math.Hypot(dx, dy)
		if dist > 0 && dist < cfg.PointerRange {
			force := (cfg.PointerRange - dist) / cfg.PointerRange
			ux, uy := dx/dist, dy/dist
			switch cfg.PointerMode {
			case wallpaper.PointerAttract:
				n.Vel.X += ux * force * cfg.AttractStrength * frames
				n.Vel.Y += uy * force * cfg.AttractStrength * frames
			case wallpaper.PointerRepel:
				n.Pos.X -= ux * force * cfg.RepelStrength * frames
				n.Pos.Y -= uy * force * cfg.RepelStrength * frames
			}
		}
	}

	if cfg.MaxVelocity > 0 {
		if v := math.Hypot(n.Vel.X, n.Vel.Y); v > cfg.MaxVelocity {
			n.Vel.X = n.Vel.X / v * cfg.MaxVelocity
			n.Vel.Y = n.Vel.Y / v * cfg.MaxVelocity
		}
	}

	n.Pos.X, n.Vel.X = bounce(n.Pos.X, n.Vel.X, float64(in.Width))
	n.Pos.Y, n.Vel.Y = bounce(n.Pos.Y, n.Vel.Y, float64(in.Height))
}

// bounce reflects a node that left [0, limit] and puts it back on the edge.
func bounce(pos, vel, limit float64) (float64, float64) {
	switch {
	case pos < 0:
		return 0, math.Abs(vel)
	case pos > limit:
		return limit, -math.Abs(vel)
	}
	return pos, vel
}

func (g *Graph) Count() int {
	return len(g.Nodes)
}

func parsePalette(cfg wallpaper.NetworkSettings) (palette, error) {
	var p palette
	var err error

	if p.nodes, err = wallpaper.ParsePalette(cfg.Palette); err != nil {
		return p, fmt.Errorf("network palette: %w", err)
	}
	if len(p.nodes) == 0 {
		return p, fmt.Errorf("network palette is empty")
	}
	if p.background, err = wallpaper.ParsePalette(cfg.Background); err != nil {
		return p, fmt.Errorf("network background: %w", err)
	}
	if len(p.background) == 0 {
		return p, fmt.Errorf("network background is empty")
	}
	if p.link, err = wallpaper.ParseColor(cfg.LinkColor); err != nil {
		return p, fmt.Errorf("network link colour: %w", err)
	}
	if cfg.Grid != wallpaper.GridNone {
		if p.grid, err = wallpaper.ParseColor(cfg.GridColor); err != nil {
			return p, fmt.Errorf("network grid colour: %w", err)
		}
	}
	if cfg.Glow {
		if p.glow, err = wallpaper.ParseColor(cfg.GlowColor); err != nil {
			return p, fmt.Errorf("network glow colour: %w", err)
		}
	}
	if cfg.Circuits > 0 {
		if p.circuit, err = wallpaper.ParseColor(cfg.CircuitColor); err != nil {
			return p, fmt.Errorf("network circuit colour: %w", err)
		}
	}
	for _, b := range cfg.Blobs {
		c, err := wallpaper.ParseColor(b.Color)
		if err != nil {
			return p, fmt.Errorf("network blob: %w", err)
		}
		p.blobs = append(p.blobs, blob{Blob: b, color: c})
	}
	return p, nil
}
