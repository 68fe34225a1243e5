// Package machine composes a bus and a CPU into a runnable system and loads
// raw program images into it.
package machine

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yoshiomiyamaego6502/pkg/bus"
	"github.com/yoshiomiyamaego6502/pkg/cpu"
	"github.com/yoshiomiyamaego6502/pkg/device"
	"github.com/yoshiomiyamaego6502/pkg/logger"
)

// Machine owns one bus and one CPU
type Machine struct {
	CPU *cpu.CPU
	Bus *bus.Bus
}

// New creates a machine with an empty bus. Devices must be attached before
// the first reset.
func New() *Machine {
	b := bus.New()
	return &Machine{
		Bus: b,
		CPU: cpu.New(b),
	}
}

// NewWithRAM creates a machine whose whole 64 KiB address space is RAM, the
// layout the command-line runner and most tests want.
func NewWithRAM() *Machine {
	m := New()
	// Attach cannot fail on an empty bus with an in-range device
	_ = m.Bus.Attach(device.NewRAM(bus.AddressSpace), 0x0000)
	return m
}

// AttachRAM maps a fresh RAM device of the given size at base.
func (m *Machine) AttachRAM(base uint16, size int) (*device.RAM, error) {
	ram := device.NewRAM(size)
	if err := m.Bus.Attach(ram, base); err != nil {
		return nil, err
	}
	return ram, nil
}

// AttachROM maps a ROM device holding the image at base.
func (m *Machine) AttachROM(base uint16, image []uint8) (*device.ROM, error) {
	rom := device.NewROM(image)
	if err := m.Bus.Attach(rom, base); err != nil {
		return nil, err
	}
	return rom, nil
}

// LoadImage reads a headerless raw byte image (dasm raw output) and commits
// it at origin via bus writes. Images that would run past the top of the
// address space are rejected before anything is written.
func (m *Machine) LoadImage(r io.Reader, origin uint16) (int, error) {
	image, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read image: %w", err)
	}
	if int(origin)+len(image) > bus.AddressSpace {
		return 0, fmt.Errorf("image of %d bytes does not fit at origin $%04X", len(image), origin)
	}
	for i, b := range image {
		if err := m.Bus.Write(origin+uint16(i), b); err != nil {
			return i, fmt.Errorf("failed to load image at $%04X: %w", origin+uint16(i), err)
		}
	}
	logger.LogInfo("loaded %d bytes at $%04X", len(image), origin)
	return len(image), nil
}

// LoadImageFile loads a raw image file at origin.
func (m *Machine) LoadImageFile(path string, origin uint16) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	return m.LoadImage(f, origin)
}

// SetResetVector points the reset vector at target, little-endian.
func (m *Machine) SetResetVector(target uint16) error {
	if err := m.Bus.Write(cpu.VectorReset, uint8(target&0xFF)); err != nil {
		return err
	}
	return m.Bus.Write(cpu.VectorReset+1, uint8(target>>8))
}

// Reset resets the CPU; memory is left untouched.
func (m *Machine) Reset() error {
	return m.CPU.Reset()
}

// Step executes one instruction.
func (m *Machine) Step() (cpu.StepOutcome, error) {
	return m.CPU.Step()
}

// Run executes up to n instructions.
func (m *Machine) Run(n int) (int, error) {
	return m.CPU.Run(n)
}

// RunUntilBRK steps until a BRK has been executed or a fault occurs,
// returning the number of instructions completed.
func (m *Machine) RunUntilBRK() (int, error) {
	return m.CPU.RunUntil(func(o cpu.StepOutcome) bool {
		return o.Opcode == 0x00
	})
}

// IsFault reports whether err is one of the core's fault kinds rather than
// a host-side problem.
func IsFault(err error) bool {
	var unmapped *bus.UnmappedAccessError
	var readonly *bus.ReadOnlyWriteError
	var unstable *cpu.UnstableOpcodeError
	return errors.As(err, &unmapped) ||
		errors.As(err, &readonly) ||
		errors.As(err, &unstable) ||
		errors.Is(err, cpu.ErrHalted)
}
