package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"slotcache/internal/cache"
)

// chunk is a terrain chunk position. It is the only stable identity a chunk has,
// so it is the cache key.
type chunk struct {
	X, Z int
}

func (c chunk) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Z)
}

// texture stands in for a GPU texture living in a fixed-size texture array.
type texture struct {
	owner chunk
	valid bool
}

func main() {
	var (
		capacity int
		radius   int
		passes   int
		dump     bool
	)
	flag.IntVar(&capacity, "capacity", 32, "size of the texture array")
	flag.IntVar(&radius, "radius", 2, "chunks visible around the camera in each direction")
	flag.IntVar(&passes, "passes", 8, "camera steps along +X")
	flag.BoolVar(&dump, "dump", false, "print the cache state after the last pass")
	flag.Parse()

	if radius < 0 {
		log.Fatalf("radius must not be negative, got %d", radius)
	}
	// Every visible chunk needs its own texture within one pass.
	side := 2*radius + 1
	if side*side > capacity {
		log.Fatalf("radius %d needs %d textures, capacity is %d", radius, side*side, capacity)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slots, err := cache.New[chunk](capacity)
	if err != nil {
		log.Fatalf("create cache: %v", err)
	}
	textures := make([]texture, slots.Capacity())

	log.Printf("slotcache demo: capacity=%d radius=%d passes=%d", capacity, radius, passes)

	for pass := 0; pass < passes; pass++ {
		select {
		case <-ctx.Done():
			log.Println("received shutdown signal")
			return
		default:
		}

		generated, reused, err := renderPass(slots, textures, chunk{X: pass}, radius)
		if err != nil {
			log.Fatalf("pass %d: %v", pass, err)
		}
		log.Printf("pass %d: generated=%d reused=%d used=%d/%d",
			pass, generated, reused, slots.Used(), slots.Capacity())
	}

	if dump {
		if err := slots.Dump(os.Stdout); err != nil {
			log.Fatalf("dump: %v", err)
		}
	}
}

// renderPass assigns a texture slot to every chunk around camera, generating
// textures only for chunks whose slot was just (re)assigned, then checks that
// the parallel chunk/slot lists point at the right textures.
func renderPass(slots *cache.IndexCache[chunk], textures []texture, camera chunk, radius int) (generated, reused int, err error) {
	var (
		drawList []chunk
		slotList []int
	)

	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			pos := chunk{X: camera.X + dx, Z: camera.Z + dz}

			a, err := slots.Assign(pos)
			if err != nil {
				return 0, 0, fmt.Errorf("assign %v: %w", pos, err)
			}
			if a.Fresh {
				textures[a.Slot] = texture{owner: pos, valid: true}
				generated++
			} else {
				reused++
			}

			drawList = append(drawList, pos)
			slotList = append(slotList, a.Slot)
		}
	}

	for i, pos := range drawList {
		tex := textures[slotList[i]]
		if !tex.valid || tex.owner != pos {
			return generated, reused, fmt.Errorf("chunk %v drew texture of %v", pos, tex.owner)
		}
	}
	return generated, reused, nil
}
