package domains

import "fmt"

// Document is the unit of editing, export and import. Mutating methods never
// write into a slice that was handed out earlier; they build a new one.
type Document struct {
	Blocks Blocks         `json:"blocks"`
	Layout LayoutSettings `json:"layout"`
}

func NewDocument() *Document {
	return &Document{
		Blocks: Blocks{},
		Layout: DefaultLayout(),
	}
}

func (d *Document) Append(b Block) {
	next := make(Blocks, 0, len(d.Blocks)+1)
	next = append(next, d.Blocks...)
	d.Blocks = append(next, b)
}

// Add appends a default-valued block of the given type and returns it.
func (d *Document) Add(kind BlockType) (Block, error) {
	b, err := NewBlock(kind)
	if err != nil {
		return nil, err
	}
	d.Append(b)
	return b, nil
}

func (d *Document) IndexOf(id string) int {
	for i, b := range d.Blocks {
		if b.BlockID() == id {
			return i
		}
	}
	return -1
}

func (d *Document) Find(id string) (Block, bool) {
	i := d.IndexOf(id)
	if i < 0 {
		return nil, false
	}
	return d.Blocks[i], true
}

// Update replaces the block sharing b's id. The variant must stay the same.
func (d *Document) Update(b Block) error {
	if b == nil {
		return ErrNilBlock
	}
	i := d.IndexOf(b.BlockID())
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, b.BlockID())
	}
	if d.Blocks[i].Kind() != b.Kind() {
		return fmt.Errorf("%w: %s -> %s", ErrBlockTypeChanged, d.Blocks[i].Kind(), b.Kind())
	}
	next := make(Blocks, len(d.Blocks))
	copy(next, d.Blocks)
	next[i] = b
	d.Blocks = next
	return nil
}

func (d *Document) Delete(id string) error {
	i := d.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, id)
	}
	next := make(Blocks, 0, len(d.Blocks)-1)
	next = append(next, d.Blocks[:i]...)
	d.Blocks = append(next, d.Blocks[i+1:]...)
	return nil
}

// Move takes the block at index from out of the list and reinserts it at
// index to, shifting the blocks in between.
func (d *Document) Move(from, to int) error {
	n := len(d.Blocks)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move %d -> %d of %d", ErrIndexOutOfRange, from, to, n)
	}
	next := make(Blocks, n)
	copy(next, d.Blocks)
	if from != to {
		moved := next[from]
		if from < to {
			copy(next[from:to], next[from+1:to+1])
		} else {
			copy(next[to+1:from+1], next[to:from])
		}
		next[to] = moved
	}
	d.Blocks = next
	return nil
}

// MoveByID moves the block with activeID to the position held by overID, the
// way a drag-and-drop drop target reports it.
func (d *Document) MoveByID(activeID, overID string) error {
	from := d.IndexOf(activeID)
	if from < 0 {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, activeID)
	}
	to := d.IndexOf(overID)
	if to < 0 {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, overID)
	}
	return d.Move(from, to)
}

// Reset replaces the whole block list, as loading a template or starting
// over does.
func (d *Document) Reset(blocks []Block) {
	next := make(Blocks, len(blocks))
	copy(next, blocks)
	d.Blocks = next
}

func (d *Document) Clone() *Document {
	return &Document{
		Blocks: CloneBlocks(d.Blocks),
		Layout: d.Layout,
	}
}

// Validate checks identifier presence and uniqueness.
func (d *Document) Validate() error {
	return ValidateBlocks(d.Blocks)
}

func ValidateBlocks(blocks []Block) error {
	seen := make(map[string]int, len(blocks))
	for i, b := range blocks {
		if b == nil {
			return fmt.Errorf("block %d: %w", i, ErrNilBlock)
		}
		id := b.BlockID()
		if id == "" {
			return fmt.Errorf("block %d: %w", i, ErrEmptyBlockID)
		}
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("blocks %d and %d: %w: %s", prev, i, ErrDuplicateBlockID, id)
		}
		seen[id] = i
	}
	return nil
}
