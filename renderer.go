package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/PeteSumners/cornerstone/engine"
	"github.com/PeteSumners/cornerstone/vmath"
	"github.com/PeteSumners/cornerstone/world"
)

const (
	tileSize     = 12
	screenWidth  = mapWidth * tileSize
	screenHeight = mapDepth * tileSize
)

// TopDownRenderer paints the block field from above, shaded by column
// height, with one colored marker per mesh instance. It implements
// engine.Renderer; the engine pushes positions and light into the sprites
// through the render hooks, never the other way around.
type TopDownRenderer struct {
	terrain *world.Map
	white   *ebiten.Image
	sprites []*spriteInstance
}

func NewTopDownRenderer(terrain *world.Map) *TopDownRenderer {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &TopDownRenderer{
		terrain: terrain,
		white:   white,
	}
}

// CreateMesh builds a marker sprite colored by actor kind.
func (r *TopDownRenderer) CreateMesh(name string, at vmath.Vec3) engine.MeshInstance {
	s := &spriteInstance{
		pos:   at,
		light: 1,
		col:   actorColor(name),
	}
	r.sprites = append(r.sprites, s)
	return s
}

func actorColor(name string) color.RGBA {
	switch name {
	case "player":
		return color.RGBA{R: 0x40, G: 0x80, B: 0xff, A: 0xff}
	case "chaser":
		return color.RGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0xff}
	default:
		return color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	}
}

func (r *TopDownRenderer) Draw(screen *ebiten.Image) {
	for x := 0; x < mapWidth; x++ {
		for z := 0; z < mapDepth; z++ {
			r.drawColumn(screen, x, z)
		}
	}
	r.drawSprites(screen)
}

// drawColumn paints one cell of the map using the topmost occupied block
// for hue and the column height for brightness.
func (r *TopDownRenderer) drawColumn(screen *ebiten.Image, x, z int) {
	h := r.terrain.GetBaseHeight(x, z)
	top := r.terrain.GetBlock(x, h, z)
	if top == blockAir && h > 0 {
		top = r.terrain.GetBlock(x, h-1, z)
	}

	var cr, cg, cb float32
	switch top {
	case blockWater:
		cr, cg, cb = 0.15, 0.3, 0.8
	case blockGrass:
		cr, cg, cb = 0.25, 0.7, 0.25
	case blockDirt:
		cr, cg, cb = 0.5, 0.38, 0.22
	default:
		cr, cg, cb = 0.45, 0.45, 0.5
	}
	shade := float32(0.35 + 0.65*float64(h)/float64(mapHeight))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(tileSize, tileSize)
	op.GeoM.Translate(float64(x*tileSize), float64(z*tileSize))
	op.ColorScale.Scale(cr*shade, cg*shade, cb*shade, 1)
	screen.DrawImage(r.white, op)
}

func (r *TopDownRenderer) drawSprites(screen *ebiten.Image) {
	live := r.sprites[:0]
	for _, s := range r.sprites {
		if s.disposed {
			continue
		}
		live = append(live, s)
		s.draw(screen, r.white)
	}
	r.sprites = live
}

// spriteInstance is the renderer-owned marker behind a mesh handle.
type spriteInstance struct {
	pos      vmath.Vec3
	frame    int
	light    float64
	col      color.RGBA
	disposed bool
}

func (s *spriteInstance) SetPosition(pos vmath.Vec3) { s.pos = pos }
func (s *spriteInstance) SetFrame(frame int)         { s.frame = frame }
func (s *spriteInstance) SetLight(light float64)     { s.light = light }
func (s *spriteInstance) Dispose()                   { s.disposed = true }

func (s *spriteInstance) draw(screen, white *ebiten.Image) {
	const size = float64(tileSize) * 0.7
	// A light pulse on the frame counter stands in for animation.
	pulse := 0.85 + 0.15*math.Sin(float64(s.frame)*0.2)
	l := float32(s.light * pulse)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(s.pos.X*tileSize-size/2, s.pos.Z*tileSize-size/2)
	op.ColorScale.ScaleWithColor(s.col)
	op.ColorScale.Scale(l, l, l, 1)
	screen.DrawImage(white, op)
}
