package cpu

// instruction is one opcode table entry: the mnemonic, the addressing mode
// the resolver runs before the semantic, and the semantic itself. Illegal
// marks undocumented opcodes; Unstable marks the ones whose hardware
// behavior depends on analog effects (ANE, LXA, SHA, SHX, SHY, TAS) plus
// JAM - those fault unless the UnstableAsNOP policy is set.
type instruction struct {
	Name     string
	Mode     AddressingMode
	exec     func(*CPU, operand) error
	Illegal  bool
	Unstable bool
}

// opcodeTable maps every opcode byte to its instruction. Decoding is a
// direct index.
var opcodeTable = [256]instruction{
	// 0x00-0x0F
	0x00: {"BRK", AddrImplied, (*CPU).execBRK, false, false},
	0x01: {"ORA", AddrIndexedIndirect, (*CPU).execORA, false, false},
	0x02: {"JAM", AddrImplied, (*CPU).execNOP, true, true},
	0x03: {"SLO", AddrIndexedIndirect, (*CPU).execSLO, true, false},
	0x04: {"NOP", AddrZeroPage, (*CPU).execNOP, true, false},
	0x05: {"ORA", AddrZeroPage, (*CPU).execORA, false, false},
	0x06: {"ASL", AddrZeroPage, (*CPU).execASL, false, false},
	0x07: {"SLO", AddrZeroPage, (*CPU).execSLO, true, false},
	0x08: {"PHP", AddrImplied, (*CPU).execPHP, false, false},
	0x09: {"ORA", AddrImmediate, (*CPU).execORA, false, false},
	0x0A: {"ASL", AddrAccumulator, (*CPU).execASL, false, false},
	0x0B: {"ANC", AddrImmediate, (*CPU).execANC, true, false},
	0x0C: {"NOP", AddrAbsolute, (*CPU).execNOP, true, false},
	0x0D: {"ORA", AddrAbsolute, (*CPU).execORA, false, false},
	0x0E: {"ASL", AddrAbsolute, (*CPU).execASL, false, false},
	0x0F: {"SLO", AddrAbsolute, (*CPU).execSLO, true, false},

	// 0x10-0x1F
	0x10: {"BPL", AddrRelative, (*CPU).execBPL, false, false},
	0x11: {"ORA", AddrIndirectIndexed, (*CPU).execORA, false, false},
	0x12: {"JAM", AddrImplied, (*CPU).execNOP, true, true},
	0x13: {"SLO", AddrIndirectIndexed, (*CPU).execSLO, true, false},
	0x14: {"NOP", AddrZeroPageX, (*CPU).execNOP, true, false},
	0x15: {"ORA", AddrZeroPageX, (*CPU).execORA, false, false},
	0x16: {"ASL", AddrZeroPageX, (*CPU).execASL, false, false},
	0x17: {"SLO", AddrZeroPageX, (*CPU).execSLO, true, false},
	0x18: {"CLC", AddrImplied, (*CPU).execCLC, false, false},
	0x19: {"ORA", AddrAbsoluteY, (*CPU).execORA, false, false},
	0x1A: {"NOP", AddrImplied, (*CPU).execNOP, true, false},
	0x1B: {"SLO", AddrAbsoluteY, (*CPU).execSLO, true, false},
	0x1C: {"NOP", AddrAbsoluteX, (*CPU).execNOP, true, false},
	0x1D: {"ORA", AddrAbsoluteX, (*CPU).execORA, false, false},
	0x1E: {"ASL", AddrAbsoluteX, (*CPU).execASL, false, false},
	0x1F: {"SLO", AddrAbsoluteX, (*CPU).execSLO, true, false},

	// 0x20-0x2F
	0x20: {"JSR", AddrAbsolute, (*CPU).execJSR, false, false},
	0x21: {"AND", AddrIndexedIndirect, (*CPU).execAND, false, false},
	0x22: {"JAM", AddrImplied, (*CPU).execNOP, true, true},
	0x23: {"RLA", AddrIndexedIndirect, (*CPU).execRLA, true, false},
	0x24: {"BIT", AddrZeroPage, (*CPU).execBIT, false, false},
	0x25: {"AND", AddrZeroPage, (*CPU).execAND, false, false},
	0x26: {"ROL", AddrZeroPage, (*CPU).execROL, false, false},
	0x27: {"RLA", AddrZeroPage, (*CPU).execRLA, true, false},
	0x28: {"PLP", AddrImplied, (*CPU).execPLP, false, false},
	0x29: {"AND", AddrImmediate, (*CPU).execAND, false, false},
	0x2A: {"ROL", AddrAccumulator, (*CPU).execROL, false, false},
	0x2B: {"ANC", AddrImmediate, (*CPU).execANC, true, false},
	0x2C: {"BIT", AddrAbsolute, (*CPU).execBIT, false, false},
	0x2D: {"AND", AddrAbsolute, (*CPU).execAND, false, false},
	0x2E: {"ROL", AddrAbsolute, (*CPU).execROL, false, false},
	0x2F: {"RLA", AddrAbsolute, (*CPU).execRLA, true, false},

	// 0x30-0x3F
	0x30: {"BMI", AddrRelative, (*CPU).execBMI, false, false},
	0x31: {"AND", AddrIndirectIndexed, (*CPU).execAND, false, false},
	0x32: {"JAM", AddrImplied, (*CPU).execNOP, true, true},
	0x33: {"RLA", AddrIndirectIndexed, (*CPU).execRLA, true, false},
	0x34: {"NOP", AddrZeroPageX, (*CPU).execNOP, true, false},
	0x35: {"AND", AddrZeroPageX, (*CPU).execAND, false, false},
	0x36: {"ROL", AddrZeroPageX, (*CPU).execROL, false, false},
	0x37: {"RLA", AddrZeroPageX, (*CPU).execRLA, true, false},
	0x38: {"SEC", AddrImplied, (*CPU).execSEC, false, false},
	0x39: {"AND", AddrAbsoluteY, (*CPU).execAND, false, false},
	0x3A: {"NOP", AddrImplied, (*CPU).execNOP, true, false},
	0x3B: {"RLA", AddrAbsoluteY, (*CPU).execRLA, true, false},
	0x3C: {"NOP", AddrAbsoluteX, (*CPU).execNOP, true, false},
	0x3D: {"AND", AddrAbsoluteX, (*CPU).execAND, false, false},
	0x3E: {"ROL", AddrAbsoluteX, (*CPU).execROL, false, false},
	0x3F: {"RLA", AddrAbsoluteX, (*CPU).execRLA, true, false},

	// 0x40-0x4F
	0x40: {"RTI", AddrImplied, (*CPU).execRTI, false, false},
	0x41: {"EOR", AddrIndexedIndirect, (*CPU).execEOR, false, false},
	0x42: {"JAM", AddrImplied, (*CPU).execNOP, true, true},
	0x43: {"SRE", AddrIndexedIndirect, (*CPU).execSRE, true, false},
	0x44: {"NOP", AddrZeroPage, (*CPU).execNOP, true, false},
	0x45: {"EOR", AddrZeroPage, (*CPU).execEOR, false, false},
	0x46: {"LSR", AddrZeroPage, (*CPU).execLSR, false, false},
	0x47: {"SRE", AddrZeroPage, (*CPU).execSRE, true, false},
	0x48: {"PHA", AddrImplied, (*CPU).execPHA, false, false},
	0x49: {"EOR", AddrImmediate, (*CPU).execEOR, false, false},
	0x4A: {"LSR", AddrAccumulator, (*CPU).execLSR, false, false},
	0x4B: {"ASR", AddrImmediate, (*CPU).execASR, true, false},
	0x4C: {"JMP", AddrAbsolute, (*CPU).execJMP, false, false},
	0x4D: {"EOR", AddrAbsolute, (*CPU).execEOR, false, false},
	0x4E: {"LSR", AddrAbsolute, (*CPU).execLSR, false, false},
	0x4F: {"SRE", AddrAbsolute, (*CPU).execSRE, true, false},

	// 0x50-0x5F
	0x50: {"BVC", AddrRelative, (*CPU).execBVC, false, false},
	0x51: {"EOR", AddrIndirectIndexed, (*CPU).execEOR, false, false},
	0x52: {"JAM", AddrImplied, (*CPU).execNOP, true, true},
	0x53: {"SRE", AddrIndirectIndexed, (*CPU).execSRE, true, false},
	0x54: {"NOP", AddrZeroPageX, (*CPU).execNOP, true, false},
	0x55: {"EOR", AddrZeroPageX, (*CPU).execEOR, false, false},
	0x56: {"LSR", AddrZeroPageX, (*CPU).execLSR, false, false},
	0x57: {"SRE", AddrZeroPageX, (*CPU).execSRE, true, false},
	0x58: {"CLI", AddrImplied, (*CPU).execCLI, false, false},
	0x59: {"EOR", AddrAbsoluteY, (*CPU).execEOR, false, false},
	0x5A: {"NOP", AddrImplied, (*CPU).execNOP, true, false},
	0x5B: {"SRE", AddrAbsoluteY, (*CPU).execSRE, true, false},
	0x5C: {"NOP", AddrAbsoluteX, (*CPU).execNOP, true, false},
	0x5D: {"EOR", AddrAbsoluteX, (*CPU).execEOR, false, false},
	0x5E: {"LSR", AddrAbsoluteX, (*CPU).execLSR, false, false},
	0x5F: {"SRE", AddrAbsoluteX, (*CPU).execSRE, true, false},

	// 0x60-0x6F
	0x60: {"RTS", AddrImplied, (*CPU).execRTS, false, false},
	0x61: {"ADC", AddrIndexedIndirect, (*CPU).execADC, false, false},
	0x62: {"JAM", AddrImplied, (*CPU).execNOP, true, true},
	0x63: {"RRA", AddrIndexedIndirect, (*CPU).execRRA, true, false},
	0x64: {"NOP", AddrZeroPage, (*CPU).execNOP, true, false},
	0x65: {"ADC", AddrZeroPage, (*CPU).execADC, false, false},
	0x66: {"ROR", AddrZeroPage, (*CPU).execROR, false, false},
	0x67: {"RRA", AddrZeroPage, (*CPU).execRRA, true, false},
	0x68: {"PLA", AddrImplied, (*CPU).execPLA, false, false},
	0x69: {"ADC", AddrImmediate, (*CPU).execADC, false, false},
	0x6A: {"ROR", AddrAccumulator, (*CPU).execROR, false, false},
	0x6B: {"ARR", AddrImmediate, (*CPU).execARR, true, false},
	0x6C: {"JMP", AddrIndirect, (*CPU).execJMP, false, false},
	0x6D: {"ADC", AddrAbsolute, (*CPU).execADC, false, false},
	0x6E: {"ROR", AddrAbsolute, (*CPU).execROR, false, false},
	0x6F: {"RRA", AddrAbsolute, (*CPU).execRRA, true, false},

	// 0x70-0x7F
	0x70: {"BVS", AddrRelative, (*CPU).execBVS, false, false},
	0x71: {"ADC", AddrIndirectIndexed, (*CPU).execADC, false, false},
	0x72: {"JAM", AddrImplied, (*CPU).execNOP, true, true},
	0x73: {"RRA", AddrIndirectIndexed, (*CPU).execRRA, true, false},
	0x74: {"NOP", AddrZeroPageX, (*CPU).execNOP, true, false},
	0x75: {"ADC", AddrZeroPageX, (*CPU).execADC, false, false},
	0x76: {"ROR", AddrZeroPageX, (*CPU).execROR, false, false},
	0x77: {"RRA", AddrZeroPageX, (*CPU).execRRA, true, false},
	0x78: {"SEI", AddrImplied, (*CPU).execSEI, false, false},
	0x79: {"ADC", AddrAbsoluteY, (*CPU).execADC, false, false},
	0x7A: {"NOP", AddrImplied, (*CPU).execNOP, true, false},
	0x7B: {"RRA", AddrAbsoluteY, (*CPU).execRRA, true, false},
	0x7C: {"NOP", AddrAbsoluteX, (*CPU).execNOP, true, false},
	0x7D: {"ADC", AddrAbsoluteX, (*CPU).execADC, false, false},
	0x7E: {"ROR", AddrAbsoluteX, (*CPU).execROR, false, false},
	0x7F: {"RRA", AddrAbsoluteX, (*CPU).execRRA, true, false},

	// 0x80-0x8F
	0x80: {"NOP", AddrImmediate, (*CPU).execNOP, true, false},
	0x81: {"STA", AddrIndexedIndirect, (*CPU).execSTA, false, false},
	0x82: {"NOP", AddrImmediate, (*CPU).execNOP, true, false},
	0x83: {"SAX", AddrIndexedIndirect, (*CPU).execSAX, true, false},
	0x84: {"STY", AddrZeroPage, (*CPU).execSTY, false, false},
	0x85: {"STA", AddrZeroPage, (*CPU).execSTA, false, false},
	0x86: {"STX", AddrZeroPage, (*CPU).execSTX, false, false},
	0x87: {"SAX", AddrZeroPage, (*CPU).execSAX, true, false},
	0x88: {"DEY", AddrImplied, (*CPU).execDEY, false, false},
	0x89: {"NOP", AddrImmediate, (*CPU).execNOP, true, false},
	0x8A: {"TXA", AddrImplied, (*CPU).execTXA, false, false},
	0x8B: {"ANE", AddrImmediate, (*CPU).execNOP, true, true},
	0x8C: {"STY", AddrAbsolute, (*CPU).execSTY, false, false},
	0x8D: {"STA", AddrAbsolute, (*CPU).execSTA, false, false},
	0x8E: {"STX", AddrAbsolute, (*CPU).execSTX, false, false},
	0x8F: {"SAX", AddrAbsolute, (*CPU).execSAX, true, false},

	// 0x90-0x9F
	0x90: {"BCC", AddrRelative, (*CPU).execBCC, false, false},
	0x91: {"STA", AddrIndirectIndexed, (*CPU).execSTA, false, false},
	0x92: {"JAM", AddrImplied, (*CPU).execNOP, true, true},
	0x93: {"SHA", AddrIndirectIndexed, (*CPU).execNOP, true, true},
	0x94: {"STY", AddrZeroPageX, (*CPU).execSTY, false, false},
	0x95: {"STA", AddrZeroPageX, (*CPU).execSTA, false, false},
	0x96: {"STX", AddrZeroPageY, (*CPU).execSTX, false, false},
	0x97: {"SAX", AddrZeroPageY, (*CPU).execSAX, true, false},
	0x98: {"TYA", AddrImplied, (*CPU).execTYA, false, false},
	0x99: {"STA", AddrAbsoluteY, (*CPU).execSTA, false, false},
	0x9A: {"TXS", AddrImplied, (*CPU).execTXS, false, false},
	0x9B: {"TAS", AddrAbsoluteY, (*CPU).execNOP, true, true},
	0x9C: {"SHY", AddrAbsoluteX, (*CPU).execNOP, true, true},
	0x9D: {"STA", AddrAbsoluteX, (*CPU).execSTA, false, false},
	0x9E: {"SHX", AddrAbsoluteY, (*CPU).execNOP, true, true},
	0x9F: {"SHA", AddrAbsoluteY, (*CPU).execNOP, true, true},

	// 0xA0-0xAF
	0xA0: {"LDY", AddrImmediate, (*CPU).execLDY, false, false},
	0xA1: {"LDA", AddrIndexedIndirect, (*CPU).execLDA, false, false},
	0xA2: {"LDX", AddrImmediate, (*CPU).execLDX, false, false},
	0xA3: {"LAX", AddrIndexedIndirect, (*CPU).execLAX, true, false},
	0xA4: {"LDY", AddrZeroPage, (*CPU).execLDY, false, false},
	0xA5: {"LDA", AddrZeroPage, (*CPU).execLDA, false, false},
	0xA6: {"LDX", AddrZeroPage, (*CPU).execLDX, false, false},
	0xA7: {"LAX", AddrZeroPage, (*CPU).execLAX, true, false},
	0xA8: {"TAY", AddrImplied, (*CPU).execTAY, false, false},
	0xA9: {"LDA", AddrImmediate, (*CPU).execLDA, false, false},
	0xAA: {"TAX", AddrImplied, (*CPU).execTAX, false, false},
	0xAB: {"LXA", AddrImmediate, (*CPU).execNOP, true, true},
	0xAC: {"LDY", AddrAbsolute, (*CPU).execLDY, false, false},
	0xAD: {"LDA", AddrAbsolute, (*CPU).execLDA, false, false},
	0xAE: {"LDX", AddrAbsolute, (*CPU).execLDX, false, false},
	0xAF: {"LAX", AddrAbsolute, (*CPU).execLAX, true, false},

	// 0xB0-0xBF
	0xB0: {"BCS", AddrRelative, (*CPU).execBCS, false, false},
	0xB1: {"LDA", AddrIndirectIndexed, (*CPU).execLDA, false, false},
	0xB2: {"JAM", AddrImplied, (*CPU).execNOP, true, true},
	0xB3: {"LAX", AddrIndirectIndexed, (*CPU).execLAX, true, false},
	0xB4: {"LDY", AddrZeroPageX, (*CPU).execLDY, false, false},
	0xB5: {"LDA", AddrZeroPageX, (*CPU).execLDA, false, false},
	0xB6: {"LDX", AddrZeroPageY, (*CPU).execLDX, false, false},
	0xB7: {"LAX", AddrZeroPageY, (*CPU).execLAX, true, false},
	0xB8: {"CLV", AddrImplied, (*CPU).execCLV, false, false},
	0xB9: {"LDA", AddrAbsoluteY, (*CPU).execLDA, false, false},
	0xBA: {"TSX", AddrImplied, (*CPU).execTSX, false, false},
	0xBB: {"LAS", AddrAbsoluteY, (*CPU).execLAS, true, false},
	0xBC: {"LDY", AddrAbsoluteX, (*CPU).execLDY, false, false},
	0xBD: {"LDA", AddrAbsoluteX, (*CPU).execLDA, false, false},
	0xBE: {"LDX", AddrAbsoluteY, (*CPU).execLDX, false, false},
	0xBF: {"LAX", AddrAbsoluteY, (*CPU).execLAX, true, false},

	// 0xC0-0xCF
	0xC0: {"CPY", AddrImmediate, (*CPU).execCPY, false, false},
	0xC1: {"CMP", AddrIndexedIndirect, (*CPU).execCMP, false, false},
	0xC2: {"NOP", AddrImmediate, (*CPU).execNOP, true, false},
	0xC3: {"DCP", AddrIndexedIndirect, (*CPU).execDCP, true, false},
	0xC4: {"CPY", AddrZeroPage, (*CPU).execCPY, false, false},
	0xC5: {"CMP", AddrZeroPage, (*CPU).execCMP, false, false},
	0xC6: {"DEC", AddrZeroPage, (*CPU).execDEC, false, false},
	0xC7: {"DCP", AddrZeroPage, (*CPU).execDCP, true, false},
	0xC8: {"INY", AddrImplied, (*CPU).execINY, false, false},
	0xC9: {"CMP", AddrImmediate, (*CPU).execCMP, false, false},
	0xCA: {"DEX", AddrImplied, (*CPU).execDEX, false, false},
	0xCB: {"SBX", AddrImmediate, (*CPU).execSBX, true, false},
	0xCC: {"CPY", AddrAbsolute, (*CPU).execCPY, false, false},
	0xCD: {"CMP", AddrAbsolute, (*CPU).execCMP, false, false},
	0xCE: {"DEC", AddrAbsolute, (*CPU).execDEC, false, false},
	0xCF: {"DCP", AddrAbsolute, (*CPU).execDCP, true, false},

	// 0xD0-0xDF
	0xD0: {"BNE", AddrRelative, (*CPU).execBNE, false, false},
	0xD1: {"CMP", AddrIndirectIndexed, (*CPU).execCMP, false, false},
	0xD2: {"JAM", AddrImplied, (*CPU).execNOP, true, true},
	0xD3: {"DCP", AddrIndirectIndexed, (*CPU).execDCP, true, false},
	0xD4: {"NOP", AddrZeroPageX, (*CPU).execNOP, true, false},
	0xD5: {"CMP", AddrZeroPageX, (*CPU).execCMP, false, false},
	0xD6: {"DEC", AddrZeroPageX, (*CPU).execDEC, false, false},
	0xD7: {"DCP", AddrZeroPageX, (*CPU).execDCP, true, false},
	0xD8: {"CLD", AddrImplied, (*CPU).execCLD, false, false},
	0xD9: {"CMP", AddrAbsoluteY, (*CPU).execCMP, false, false},
	0xDA: {"NOP", AddrImplied, (*CPU).execNOP, true, false},
	0xDB: {"DCP", AddrAbsoluteY, (*CPU).execDCP, true, false},
	0xDC: {"NOP", AddrAbsoluteX, (*CPU).execNOP, true, false},
	0xDD: {"CMP", AddrAbsoluteX, (*CPU).execCMP, false, false},
	0xDE: {"DEC", AddrAbsoluteX, (*CPU).execDEC, false, false},
	0xDF: {"DCP", AddrAbsoluteX, (*CPU).execDCP, true, false},

	// 0xE0-0xEF
	0xE0: {"CPX", AddrImmediate, (*CPU).execCPX, false, false},
	0xE1: {"SBC", AddrIndexedIndirect, (*CPU).execSBC, false, false},
	0xE2: {"NOP", AddrImmediate, (*CPU).execNOP, true, false},
	0xE3: {"ISB", AddrIndexedIndirect, (*CPU).execISB, true, false},
	0xE4: {"CPX", AddrZeroPage, (*CPU).execCPX, false, false},
	0xE5: {"SBC", AddrZeroPage, (*CPU).execSBC, false, false},
	0xE6: {"INC", AddrZeroPage, (*CPU).execINC, false, false},
	0xE7: {"ISB", AddrZeroPage, (*CPU).execISB, true, false},
	0xE8: {"INX", AddrImplied, (*CPU).execINX, false, false},
	0xE9: {"SBC", AddrImmediate, (*CPU).execSBC, false, false},
	0xEA: {"NOP", AddrImplied, (*CPU).execNOP, false, false},
	0xEB: {"SBC", AddrImmediate, (*CPU).execSBC, true, false},
	0xEC: {"CPX", AddrAbsolute, (*CPU).execCPX, false, false},
	0xED: {"SBC", AddrAbsolute, (*CPU).execSBC, false, false},
	0xEE: {"INC", AddrAbsolute, (*CPU).execINC, false, false},
	0xEF: {"ISB", AddrAbsolute, (*CPU).execISB, true, false},

	// 0xF0-0xFF
	0xF0: {"BEQ", AddrRelative, (*CPU).execBEQ, false, false},
	0xF1: {"SBC", AddrIndirectIndexed, (*CPU).execSBC, false, false},
	0xF2: {"JAM", AddrImplied, (*CPU).execNOP, true, true},
	0xF3: {"ISB", AddrIndirectIndexed, (*CPU).execISB, true, false},
	0xF4: {"NOP", AddrZeroPageX, (*CPU).execNOP, true, false},
	0xF5: {"SBC", AddrZeroPageX, (*CPU).execSBC, false, false},
	0xF6: {"INC", AddrZeroPageX, (*CPU).execINC, false, false},
	0xF7: {"ISB", AddrZeroPageX, (*CPU).execISB, true, false},
	0xF8: {"SED", AddrImplied, (*CPU).execSED, false, false},
	0xF9: {"SBC", AddrAbsoluteY, (*CPU).execSBC, false, false},
	0xFA: {"NOP", AddrImplied, (*CPU).execNOP, true, false},
	0xFB: {"ISB", AddrAbsoluteY, (*CPU).execISB, true, false},
	0xFC: {"NOP", AddrAbsoluteX, (*CPU).execNOP, true, false},
	0xFD: {"SBC", AddrAbsoluteX, (*CPU).execSBC, false, false},
	0xFE: {"INC", AddrAbsoluteX, (*CPU).execINC, false, false},
	0xFF: {"ISB", AddrAbsoluteX, (*CPU).execISB, true, false},
}

// OpcodeInfo is the inspectable part of a table entry, for the monitor and
// for tests.
type OpcodeInfo struct {
	Name     string
	Mode     AddressingMode
	Illegal  bool
	Unstable bool
}

// Info returns the table entry for an opcode byte.
func Info(opcode uint8) OpcodeInfo {
	e := &opcodeTable[opcode]
	return OpcodeInfo{Name: e.Name, Mode: e.Mode, Illegal: e.Illegal, Unstable: e.Unstable}
}
