// Package device defines the contract the bus uses to talk to attached
// hardware, plus the two built-in memory devices.
package device

// Device is anything addressable through the bus. The bus translates global
// addresses to local offsets before calling ReadLocal/WriteLocal, so a device
// never sees where in the address space it lives.
type Device interface {
	// Size returns the number of addressable bytes.
	Size() int

	// Writable reports whether the device accepts writes. The bus never
	// calls WriteLocal on a device that reports false.
	Writable() bool

	// ReadLocal returns the byte at the local offset (0 <= offset < Size).
	ReadLocal(offset uint16) uint8

	// WriteLocal stores a byte at the local offset.
	WriteLocal(offset uint16, value uint8)
}

// RAM is a flat read/write memory device.
type RAM struct {
	cells []uint8
}

// NewRAM creates a RAM device of the given size in bytes, zero-filled.
func NewRAM(size int) *RAM {
	return &RAM{cells: make([]uint8, size)}
}

// Size returns the number of addressable bytes.
func (r *RAM) Size() int {
	return len(r.cells)
}

// Writable always reports true for RAM.
func (r *RAM) Writable() bool {
	return true
}

// ReadLocal returns the byte at the local offset.
func (r *RAM) ReadLocal(offset uint16) uint8 {
	return r.cells[offset]
}

// WriteLocal stores a byte at the local offset.
func (r *RAM) WriteLocal(offset uint16, value uint8) {
	r.cells[offset] = value
}

// ROM is a read-only memory device built from an image. Write attempts are
// handled by the bus according to its policy; WriteLocal itself is never
// reached through the bus.
type ROM struct {
	cells []uint8
}

// NewROM creates a ROM device holding a copy of the image.
func NewROM(image []uint8) *ROM {
	cells := make([]uint8, len(image))
	copy(cells, image)
	return &ROM{cells: cells}
}

// Size returns the number of addressable bytes.
func (r *ROM) Size() int {
	return len(r.cells)
}

// Writable always reports false for ROM.
func (r *ROM) Writable() bool {
	return false
}

// ReadLocal returns the byte at the local offset.
func (r *ROM) ReadLocal(offset uint16) uint8 {
	return r.cells[offset]
}

// WriteLocal drops the write. Physical ROM ignores bus writes.
func (r *ROM) WriteLocal(offset uint16, value uint8) {
}
