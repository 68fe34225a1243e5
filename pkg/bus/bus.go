// Package bus implements the 16-bit address space of the machine. Devices
// are attached at base addresses and the bus dispatches every read and write
// to the device owning the address, translating to local offsets.
package bus

import (
	"fmt"

	"github.com/yoshiomiyamaego6502/pkg/device"
	"github.com/yoshiomiyamaego6502/pkg/logger"
)

// AddressSpace is the number of addressable bytes on the bus.
const AddressSpace = 0x10000

// attachment binds a device to a base address. A mirror is a second
// attachment of a device that is already mapped elsewhere; it resolves to the
// same underlying storage.
type attachment struct {
	dev    device.Device
	base   uint16
	length int
	mirror bool
}

// Bus dispatches byte reads and writes to attached devices.
type Bus struct {
	attachments []attachment

	// StrictReadOnly makes writes to a read-only device fail with
	// ReadOnlyWriteError instead of being dropped like physical ROM drops
	// them.
	StrictReadOnly bool
}

// New creates an empty bus. Reads and writes fail until devices are
// attached.
func New() *Bus {
	return &Bus{}
}

// Attach maps a device at the given base address. The mapped range is
// [base, base+Size). Attaching a device that is already mapped creates a
// mirror of it; otherwise the range must not overlap any existing
// attachment, and must fit in the address space.
func (b *Bus) Attach(dev device.Device, base uint16) error {
	length := dev.Size()
	if length == 0 {
		return fmt.Errorf("attach at $%04X: device has no storage", base)
	}
	if int(base)+length > AddressSpace {
		return fmt.Errorf("attach at $%04X: device of %d bytes exceeds address space", base, length)
	}

	mirror := false
	for _, a := range b.attachments {
		if a.dev == dev {
			mirror = true
			continue
		}
		if int(base) < int(a.base)+a.length && int(a.base) < int(base)+length {
			return fmt.Errorf("attach at $%04X: overlaps attachment at $%04X", base, a.base)
		}
	}

	b.attachments = append(b.attachments, attachment{
		dev:    dev,
		base:   base,
		length: length,
		mirror: mirror,
	})
	logger.LogBus("attached %d bytes at $%04X (mirror=%v)", length, base, mirror)
	return nil
}

// resolve finds the attachment owning addr.
func (b *Bus) resolve(addr uint16) (attachment, bool) {
	for _, a := range b.attachments {
		if addr >= a.base && int(addr) < int(a.base)+a.length {
			return a, true
		}
	}
	return attachment{}, false
}

// Read returns the byte at addr. Fails with UnmappedAccessError if no device
// owns the address.
func (b *Bus) Read(addr uint16) (uint8, error) {
	a, ok := b.resolve(addr)
	if !ok {
		logger.LogBus("unmapped read at $%04X", addr)
		return 0, &UnmappedAccessError{Addr: addr, Kind: AccessRead}
	}
	return a.dev.ReadLocal(addr - a.base), nil
}

// Write stores a byte at addr. Fails with UnmappedAccessError if no device
// owns the address. Writes to a read-only device are dropped, or fail with
// ReadOnlyWriteError when StrictReadOnly is set.
func (b *Bus) Write(addr uint16, value uint8) error {
	a, ok := b.resolve(addr)
	if !ok {
		logger.LogBus("unmapped write at $%04X", addr)
		return &UnmappedAccessError{Addr: addr, Kind: AccessWrite}
	}
	if !a.dev.Writable() {
		if b.StrictReadOnly {
			return &ReadOnlyWriteError{Addr: addr}
		}
		return nil
	}
	a.dev.WriteLocal(addr-a.base, value)
	return nil
}

// Read16 reads a little-endian word starting at addr. The second byte is
// read from addr+1 without any wrapping quirk; callers that need the 6502
// page-wrap semantics (JMP indirect, zero-page pointers) compose their own
// reads.
func (b *Bus) Read16(addr uint16) (uint16, error) {
	lo, err := b.Read(addr)
	if err != nil {
		return 0, err
	}
	hi, err := b.Read(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
