// Package renderer drives the parallel pixel-sampling loop and writes
// the resulting pixmap as a PPM (P3) file.
package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/kestrelrender/go-pathtracer/internal/camera"
	"github.com/kestrelrender/go-pathtracer/internal/core"
	"github.com/kestrelrender/go-pathtracer/internal/integrator"
)

// Renderable is the read-only view of a scene the renderer needs: a
// root hittable (usually a BVH), the camera, and the miss background.
// Defined here rather than taken as a concrete *scene.Scene so this
// package has no dependency on internal/scene.
type Renderable interface {
	Root() core.Hittable
	Camera() *camera.Camera
	Background() integrator.Background
}

// Config collects the pixel-sampling parameters for a single render.
type Config struct {
	Width, Height   int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
	NumWorkers      int

	// Progress, if non-nil, is called once per completed scanline with
	// the number of scanlines remaining (spec.md §6). It may be called
	// concurrently from multiple worker goroutines.
	Progress func(remaining int)
}

// Frame is a rendered image: pixels[row][col], row 0 at the top,
// gamma-uncorrected linear colour in [0, +inf).
type Frame struct {
	Width, Height int
	Pixels        [][]core.Colour
}

// Render partitions the pixel grid into row bands across cfg.NumWorkers
// goroutines, each seeded deterministically from (cfg.Seed, partition
// index) per spec.md §5, and returns the accumulated linear-colour
// frame. Each band draws from its own RNG, so pixel values depend on the
// seed and the partitioning (the worker count) but not on how goroutines
// are scheduled. cfg.NumWorkers<=0
// defaults to runtime.NumCPU(), matching spec.md §5's "embarrassingly
// parallel" model.
func Render(scene Renderable, cfg Config) *Frame {
	numWorkers := cfg.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > cfg.Height {
		numWorkers = cfg.Height
	}

	pixels := make([][]core.Colour, cfg.Height)
	for row := range pixels {
		pixels[row] = make([]core.Colour, cfg.Width)
	}

	bands := partitionRows(cfg.Height, numWorkers)
	remaining := int32(cfg.Height)

	var wg sync.WaitGroup
	for partitionID, band := range bands {
		wg.Add(1)
		go func(partitionID int, band rowBand) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(workerSeed(cfg.Seed, partitionID)))
			renderRows(scene, cfg, pixels, band, rnd, &remaining)
		}(partitionID, band)
	}
	wg.Wait()

	return &Frame{Width: cfg.Width, Height: cfg.Height, Pixels: pixels}
}

type rowBand struct {
	startRow, endRow int // [startRow, endRow)
}

// partitionRows splits [0,height) into up to numWorkers contiguous,
// roughly-equal row bands.
func partitionRows(height, numWorkers int) []rowBand {
	if numWorkers > height {
		numWorkers = height
	}
	bands := make([]rowBand, 0, numWorkers)
	base := height / numWorkers
	extra := height % numWorkers

	row := 0
	for i := 0; i < numWorkers; i++ {
		size := base
		if i < extra {
			size++
		}
		bands = append(bands, rowBand{startRow: row, endRow: row + size})
		row += size
	}
	return bands
}

// workerSeed derives a per-partition seed from the root seed so that
// reruns with the same (seed, partitioning) are bit-reproducible,
// without any worker sharing mutable RNG state.
func workerSeed(seed int64, partitionID int) int64 {
	return seed*2654435761 + int64(partitionID)
}

func renderRows(scene Renderable, cfg Config, pixels [][]core.Colour, band rowBand, rnd *rand.Rand, remaining *int32) {
	cam := scene.Camera()
	root := scene.Root()
	bg := scene.Background()

	for row := band.startRow; row < band.endRow; row++ {
		// Row 0 is the top of the image, but the camera's v axis runs
		// bottom-to-top in camera space (spec.md §4.7).
		camRow := cfg.Height - 1 - row
		for col := 0; col < cfg.Width; col++ {
			var sum core.Colour
			for s := 0; s < cfg.SamplesPerPixel; s++ {
				u := (float64(col) + rnd.Float64()) / float64(cfg.Width-1)
				v := (float64(camRow) + rnd.Float64()) / float64(cfg.Height-1)
				r := cam.Ray(u, v, rnd)
				sum = sum.Add(integrator.Estimate(r, bg, root, cfg.MaxDepth, rnd))
			}
			pixels[row][col] = sum.Mul(1.0 / float64(cfg.SamplesPerPixel))
		}

		left := atomic.AddInt32(remaining, -1)
		if cfg.Progress != nil {
			cfg.Progress(int(left))
		}
	}
}
