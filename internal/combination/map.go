package combination

import (
	"github.com/jmylchreest/smash/internal/colour"
	"github.com/jmylchreest/smash/internal/kmeans"
)

// Map is the joint quantization map: every distinct pixel tuple found in the
// images and the colour tuple it was quantized to.
type Map[O colour.Color] struct {
	width   int
	palette []Output[O]
	entries map[Input]Output[O]
}

// NewMap builds the joint map from a finished run.
func NewMap[O colour.Color](result *kmeans.Result[Input, Output[O]]) *Map[O] {
	m := &Map[O]{
		palette: result.Centers,
		entries: make(map[Input]Output[O]),
	}
	if len(result.Centers) > 0 {
		m.width = len(result.Centers[0])
	}
	result.Each(func(g kmeans.Group[Input], center Output[O]) {
		m.entries[g.Value] = center
	})
	return m
}

// Width returns the number of images in each tuple.
func (m *Map[O]) Width() int {
	return m.width
}

// Len returns the number of distinct tuples mapped.
func (m *Map[O]) Len() int {
	return len(m.entries)
}

// Lookup returns the colour tuple in was quantized to.
func (m *Map[O]) Lookup(in Input) (Output[O], bool) {
	out, ok := m.entries[in]
	return out, ok
}

// Palettes unzips the joint palette into one palette per image. Entry j of
// every palette belongs to the same cluster.
func (m *Map[O]) Palettes() [][]O {
	palettes := make([][]O, m.width)
	for i := range palettes {
		palettes[i] = make([]O, len(m.palette))
		for j, tuple := range m.palette {
			palettes[i][j] = tuple[i]
		}
	}
	return palettes
}

// Unzip splits the joint map into one map per image. Each map is keyed by
// the full tuple, because the same pixel of one image can be quantized
// differently depending on the pixels it shares a coordinate with.
func (m *Map[O]) Unzip() []map[Input]O {
	maps := make([]map[Input]O, m.width)
	for i := range maps {
		maps[i] = make(map[Input]O, len(m.entries))
	}
	for in, out := range m.entries {
		for i, c := range out {
			maps[i][in] = c
		}
	}
	return maps
}
