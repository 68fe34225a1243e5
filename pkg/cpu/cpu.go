// Package cpu implements the MOS 6502 processor: registers, status flags,
// stack discipline, interrupts, and the fetch-decode-execute loop over a
// 256-entry opcode table.
package cpu

import (
	"errors"
	"fmt"

	"github.com/yoshiomiyamaego6502/pkg/bus"
	"github.com/yoshiomiyamaego6502/pkg/logger"
)

// CPU represents the 6502 processor
type CPU struct {
	// Registers
	A  uint8  // Accumulator
	X  uint8  // X register
	Y  uint8  // Y register
	SP uint8  // Stack pointer
	PC uint16 // Program counter
	P  uint8  // Status register

	// Bus interface
	Bus *bus.Bus

	// UnstableAsNOP downgrades the unstable illegal opcodes (and JAM) to
	// NOPs that still consume their operand bytes. Off by default; the
	// default policy is to fault with UnstableOpcodeError.
	UnstableAsNOP bool

	// Interrupt latches. NMI is an edge latch armed by TriggerNMI and
	// consumed by the next Step; IRQ is a level sampled each Step and
	// cleared by the caller.
	nmiPending bool
	irqLine    bool

	halted bool
}

// Status flag bits
const (
	FlagCarry     = 1 << 0 // C
	FlagZero      = 1 << 1 // Z
	FlagInterrupt = 1 << 2 // I
	FlagDecimal   = 1 << 3 // D
	FlagBreak     = 1 << 4 // B, exists only in pushed status bytes
	FlagUnused    = 1 << 5 // -, reads as 1 in pushed status bytes
	FlagOverflow  = 1 << 6 // V
	FlagNegative  = 1 << 7 // N
)

// Interrupt and reset vectors
const (
	VectorNMI   = 0xFFFA
	VectorReset = 0xFFFC
	VectorIRQ   = 0xFFFE
)

// ErrHalted is returned by Step when the CPU is in the halted state.
var ErrHalted = errors.New("cpu halted")

// UnstableOpcodeError reports execution of one of the unstable illegal
// opcodes (ANE, LXA, SHA, SHX, SHY, TAS) or JAM.
type UnstableOpcodeError struct {
	Opcode uint8
}

func (e *UnstableOpcodeError) Error() string {
	return fmt.Sprintf("unstable opcode $%02X", e.Opcode)
}

// StepOutcome describes one completed instruction.
type StepOutcome struct {
	Opcode   uint8
	PCBefore uint16
	PCAfter  uint16
}

// New creates a new CPU instance on the given bus
func New(b *bus.Bus) *CPU {
	return &CPU{
		Bus: b,
		SP:  0xFD,
		P:   FlagUnused | FlagInterrupt,
	}
}

// Reset resets the CPU to initial state and loads PC from the reset vector.
// Attached memory is left untouched.
func (c *CPU) Reset() error {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFD
	c.P = FlagUnused | FlagInterrupt
	c.nmiPending = false
	c.irqLine = false
	c.halted = false

	resetVector, err := c.read16(VectorReset)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	c.PC = resetVector
	return nil
}

// Step executes one instruction and returns its outcome. Pending interrupts
// are sampled first, NMI before IRQ; a taken interrupt redirects PC through
// its vector and the instruction executed is the handler's first. Bus faults
// abort the step and surface to the caller.
func (c *CPU) Step() (StepOutcome, error) {
	if c.halted {
		return StepOutcome{}, ErrHalted
	}

	pcBefore := c.PC

	if c.nmiPending {
		c.nmiPending = false
		logger.LogCPU("NMI taken at PC=$%04X", c.PC)
		if err := c.interrupt(VectorNMI); err != nil {
			return StepOutcome{}, err
		}
	} else if c.irqLine && !c.getFlag(FlagInterrupt) {
		logger.LogCPU("IRQ taken at PC=$%04X", c.PC)
		if err := c.interrupt(VectorIRQ); err != nil {
			return StepOutcome{}, err
		}
	}

	opcode, err := c.read(c.PC)
	if err != nil {
		return StepOutcome{}, err
	}

	entry := &opcodeTable[opcode]
	if entry.Unstable && !c.UnstableAsNOP {
		return StepOutcome{Opcode: opcode, PCBefore: pcBefore, PCAfter: c.PC},
			&UnstableOpcodeError{Opcode: opcode}
	}

	c.PC++
	op, err := c.resolveOperand(entry.Mode)
	if err != nil {
		return StepOutcome{}, err
	}

	if err := entry.exec(c, op); err != nil {
		return StepOutcome{}, err
	}

	outcome := StepOutcome{Opcode: opcode, PCBefore: pcBefore, PCAfter: c.PC}
	logger.LogCPU("%s $%02X: PC $%04X -> $%04X", entry.Name, opcode, pcBefore, c.PC)
	return outcome, nil
}

// Run executes up to n instructions, stopping early on a fault. It returns
// the number of instructions completed.
func (c *CPU) Run(n int) (int, error) {
	for i := 0; i < n; i++ {
		if _, err := c.Step(); err != nil {
			return i, err
		}
	}
	return n, nil
}

// RunUntil steps until cond reports true for a completed instruction or a
// fault occurs. It returns the number of instructions completed.
func (c *CPU) RunUntil(cond func(StepOutcome) bool) (int, error) {
	for n := 0; ; n++ {
		outcome, err := c.Step()
		if err != nil {
			return n, err
		}
		if cond(outcome) {
			return n + 1, nil
		}
	}
}

// Stop moves the CPU to the halted state; Step fails with ErrHalted until
// Resume is called.
func (c *CPU) Stop() {
	c.halted = true
}

// Resume leaves the halted state.
func (c *CPU) Resume() {
	c.halted = false
}

// Halted reports whether the CPU is halted.
func (c *CPU) Halted() bool {
	return c.halted
}

// TriggerNMI arms one pending non-maskable interrupt. The latch is edge
// triggered: each call arms exactly one NMI.
func (c *CPU) TriggerNMI() {
	c.nmiPending = true
}

// TriggerIRQ raises the interrupt request line. The line is level sensitive
// and stays raised until ClearIRQ.
func (c *CPU) TriggerIRQ() {
	c.irqLine = true
}

// ClearIRQ lowers the interrupt request line.
func (c *CPU) ClearIRQ() {
	c.irqLine = false
}

// interrupt pushes PC and status (B clear, bit 5 set), sets the interrupt
// disable flag, and loads PC from the vector.
func (c *CPU) interrupt(vector uint16) error {
	if err := c.push16(c.PC); err != nil {
		return err
	}
	if err := c.push((c.P | FlagUnused) &^ FlagBreak); err != nil {
		return err
	}
	c.setFlag(FlagInterrupt, true)
	target, err := c.read16(vector)
	if err != nil {
		return err
	}
	c.PC = target
	return nil
}

// Flag operations
func (c *CPU) getFlag(flag uint8) bool {
	return c.P&flag != 0
}

func (c *CPU) setFlag(flag uint8, value bool) {
	if value {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

// setZN sets the Zero and Negative flags from a result byte
func (c *CPU) setZN(value uint8) {
	c.setFlag(FlagZero, value == 0)
	c.setFlag(FlagNegative, value&0x80 != 0)
}

// Memory operations
func (c *CPU) read(addr uint16) (uint8, error) {
	return c.Bus.Read(addr)
}

func (c *CPU) write(addr uint16, value uint8) error {
	return c.Bus.Write(addr, value)
}

func (c *CPU) read16(addr uint16) (uint16, error) {
	return c.Bus.Read16(addr)
}

// Stack operations. Push stores at $0100|SP then decrements; pull increments
// first, then reads. SP wraps modulo 256.
func (c *CPU) push(value uint8) error {
	if err := c.write(0x100|uint16(c.SP), value); err != nil {
		return err
	}
	c.SP--
	return nil
}

func (c *CPU) pop() (uint8, error) {
	c.SP++
	return c.read(0x100 | uint16(c.SP))
}

func (c *CPU) push16(value uint16) error {
	if err := c.push(uint8(value >> 8)); err != nil {
		return err
	}
	return c.push(uint8(value & 0xFF))
}

func (c *CPU) pop16() (uint16, error) {
	lo, err := c.pop()
	if err != nil {
		return 0, err
	}
	hi, err := c.pop()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// GetFlag returns the state of a flag (public method for testing)
func (c *CPU) GetFlag(flag uint8) bool {
	return c.getFlag(flag)
}
