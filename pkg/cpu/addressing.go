package cpu

// AddressingMode represents different addressing modes for 6502 instructions
type AddressingMode int

const (
	AddrImplied AddressingMode = iota
	AddrAccumulator
	AddrImmediate
	AddrZeroPage
	AddrZeroPageX
	AddrZeroPageY
	AddrRelative
	AddrAbsolute
	AddrAbsoluteX
	AddrAbsoluteY
	AddrIndirect
	AddrIndexedIndirect
	AddrIndirectIndexed
)

// operandKind distinguishes what the resolver produced.
type operandKind int

const (
	operandNone operandKind = iota
	operandAccumulator
	operandImmediate
	operandMemory
)

// operand is the resolved target of an instruction: nothing, the
// accumulator, an immediate value, or an effective memory address.
type operand struct {
	kind  operandKind
	value uint8  // operandImmediate only
	addr  uint16 // operandMemory only
}

// resolveOperand reads 0-2 bytes following the opcode, advancing PC, and
// computes the effective operand. All page-wrap quirks live here: zero-page
// indexing wraps within page zero, the (zp,X) and (zp),Y pointer fetches
// wrap within page zero, and the indirect mode reproduces the JMP ($xxFF)
// bug where the pointer's high byte is fetched from the start of the same
// page.
func (c *CPU) resolveOperand(mode AddressingMode) (operand, error) {
	switch mode {
	case AddrImplied:
		return operand{kind: operandNone}, nil

	case AddrAccumulator:
		return operand{kind: operandAccumulator}, nil

	case AddrImmediate:
		value, err := c.read(c.PC)
		if err != nil {
			return operand{}, err
		}
		c.PC++
		return operand{kind: operandImmediate, value: value}, nil

	case AddrZeroPage:
		zp, err := c.read(c.PC)
		if err != nil {
			return operand{}, err
		}
		c.PC++
		return operand{kind: operandMemory, addr: uint16(zp)}, nil

	case AddrZeroPageX:
		zp, err := c.read(c.PC)
		if err != nil {
			return operand{}, err
		}
		c.PC++
		return operand{kind: operandMemory, addr: uint16(zp + c.X)}, nil

	case AddrZeroPageY:
		zp, err := c.read(c.PC)
		if err != nil {
			return operand{}, err
		}
		c.PC++
		return operand{kind: operandMemory, addr: uint16(zp + c.Y)}, nil

	case AddrRelative:
		offset, err := c.read(c.PC)
		if err != nil {
			return operand{}, err
		}
		c.PC++
		target := c.PC + uint16(int16(int8(offset)))
		return operand{kind: operandMemory, addr: target}, nil

	case AddrAbsolute:
		addr, err := c.read16(c.PC)
		if err != nil {
			return operand{}, err
		}
		c.PC += 2
		return operand{kind: operandMemory, addr: addr}, nil

	case AddrAbsoluteX:
		base, err := c.read16(c.PC)
		if err != nil {
			return operand{}, err
		}
		c.PC += 2
		return operand{kind: operandMemory, addr: base + uint16(c.X)}, nil

	case AddrAbsoluteY:
		base, err := c.read16(c.PC)
		if err != nil {
			return operand{}, err
		}
		c.PC += 2
		return operand{kind: operandMemory, addr: base + uint16(c.Y)}, nil

	case AddrIndirect:
		// Used only by JMP - has the page boundary bug
		ptr, err := c.read16(c.PC)
		if err != nil {
			return operand{}, err
		}
		c.PC += 2
		lo, err := c.read(ptr)
		if err != nil {
			return operand{}, err
		}
		// Bug: the high byte is read from the start of the pointer's
		// page when the pointer sits at $xxFF
		hi, err := c.read((ptr & 0xFF00) | (ptr+1)&0xFF)
		if err != nil {
			return operand{}, err
		}
		return operand{kind: operandMemory, addr: uint16(hi)<<8 | uint16(lo)}, nil

	case AddrIndexedIndirect: // (zp,X)
		zp, err := c.read(c.PC)
		if err != nil {
			return operand{}, err
		}
		c.PC++
		ptr := zp + c.X
		lo, err := c.read(uint16(ptr))
		if err != nil {
			return operand{}, err
		}
		hi, err := c.read(uint16(ptr + 1))
		if err != nil {
			return operand{}, err
		}
		return operand{kind: operandMemory, addr: uint16(hi)<<8 | uint16(lo)}, nil

	case AddrIndirectIndexed: // (zp),Y
		zp, err := c.read(c.PC)
		if err != nil {
			return operand{}, err
		}
		c.PC++
		lo, err := c.read(uint16(zp))
		if err != nil {
			return operand{}, err
		}
		hi, err := c.read(uint16(zp + 1))
		if err != nil {
			return operand{}, err
		}
		base := uint16(hi)<<8 | uint16(lo)
		return operand{kind: operandMemory, addr: base + uint16(c.Y)}, nil
	}

	return operand{kind: operandNone}, nil
}

// operandValue fetches the byte an instruction operates on.
func (c *CPU) operandValue(op operand) (uint8, error) {
	switch op.kind {
	case operandAccumulator:
		return c.A, nil
	case operandImmediate:
		return op.value, nil
	default:
		return c.read(op.addr)
	}
}

// operandWrite stores a result back to the operand's target, the accumulator
// or memory.
func (c *CPU) operandWrite(op operand, value uint8) error {
	if op.kind == operandAccumulator {
		c.A = value
		return nil
	}
	return c.write(op.addr, value)
}
