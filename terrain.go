package main

import (
	"log/slog"
	"math"

	"github.com/PeteSumners/cornerstone/world"
)

// Demo world dimensions in cells.
const (
	mapWidth  = 48
	mapHeight = 16
	mapDepth  = 48
)

// Block ids for the demo terrain. Ids are registry indexes; air is 0.
const (
	blockAir world.BlockID = iota
	blockStone
	blockDirt
	blockGrass
	blockWater
)

// buildTerrain fills a rolling heightfield with a water pool, a few stone
// pillars and scattered grass tufts. The variation is gentle enough that
// single-block steps dominate, so both auto-step and jump paths show up.
func buildTerrain(logger *slog.Logger) *world.Map {
	reg := world.NewRegistry(5)
	reg.Define(blockStone, true, true, false)
	reg.Define(blockDirt, true, true, false)
	reg.Define(blockGrass, false, false, false)
	reg.Define(blockWater, false, false, true)
	reg.GrassID = blockGrass

	m := world.NewMap(reg, mapWidth, mapHeight, mapDepth, logger)

	for x := 0; x < mapWidth; x++ {
		for z := 0; z < mapDepth; z++ {
			h := surfaceHeight(x, z)
			for y := 0; y < h; y++ {
				id := blockDirt
				if y < h-2 {
					id = blockStone
				}
				m.SetBlock(x, y, z, id)
			}
		}
	}

	// Pool: dig a basin and fill it with water up to the surrounding
	// surface so bodies wade rather than fall in.
	for x := 30; x < 38; x++ {
		for z := 30; z < 38; z++ {
			h := surfaceHeight(x, z)
			for y := h - 2; y < h; y++ {
				if y >= 0 {
					m.SetBlock(x, y, z, blockWater)
				}
			}
		}
	}

	// Pillars the pathfinder has to route around.
	for _, p := range [][2]int{{14, 22}, {22, 14}, {20, 28}} {
		h := surfaceHeight(p[0], p[1])
		for y := h; y < h+3; y++ {
			m.SetBlock(p[0], y, p[1], blockStone)
		}
	}

	// Grass tufts on a sparse lattice of surface cells.
	for x := 2; x < mapWidth-2; x += 5 {
		for z := 3; z < mapDepth-3; z += 7 {
			h := surfaceHeight(x, z)
			if m.GetBlock(x, h, z) == blockAir {
				m.SetBlock(x, h, z, blockGrass)
			}
		}
	}

	return m
}

// surfaceHeight is the ground level of a column before edits, a slow
// two-axis wave over a base plateau.
func surfaceHeight(x, z int) int {
	h := 4 + 2*math.Sin(float64(x)*0.25) + 1.5*math.Cos(float64(z)*0.2)
	n := int(math.Floor(h))
	if n < 1 {
		n = 1
	}
	if n > mapHeight-4 {
		n = mapHeight - 4
	}
	return n
}
