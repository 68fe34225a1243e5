package cpu

import "testing"

// Test the stable undocumented instructions
func TestIllegalInstructions(t *testing.T) {
	t.Run("LAX_LoadAAndX", func(t *testing.T) {
		cpu := createTestCPU()
		poke(cpu, 0x0200, 0xAF) // LAX abs
		poke(cpu, 0x0201, 0x00)
		poke(cpu, 0x0202, 0x18)
		poke(cpu, 0x1800, 0x42)
		step(t, cpu)

		if cpu.A != 0x42 {
			t.Errorf("Expected A=42, got A=%02X", cpu.A)
		}
		if cpu.X != 0x42 {
			t.Errorf("Expected X=42, got X=%02X", cpu.X)
		}

		cpu = createTestCPU()
		cpu.Y = 0x02
		poke(cpu, 0x0200, 0xB7) // LAX zp,Y
		poke(cpu, 0x0201, 0x10)
		poke(cpu, 0x0012, 0x80)
		step(t, cpu)

		if cpu.A != 0x80 || cpu.X != 0x80 {
			t.Errorf("Expected A=X=80, got A=%02X X=%02X", cpu.A, cpu.X)
		}
		if !cpu.getFlag(FlagNegative) {
			t.Error("Negative flag should be set")
		}
	})

	t.Run("SAX_StoreAAndX", func(t *testing.T) {
		cpu := createTestCPU()
		cpu.A = 0xFF
		cpu.X = 0x0F
		before := cpu.P
		poke(cpu, 0x0200, 0x87) // SAX zp
		poke(cpu, 0x0201, 0x10)
		step(t, cpu)

		if peek(cpu, 0x0010) != 0x0F {
			t.Errorf("Expected memory[0x10]=0F, got %02X", peek(cpu, 0x0010))
		}
		if cpu.P != before {
			t.Error("SAX must not touch flags")
		}
	})

	t.Run("DCP_DecrementCompare", func(t *testing.T) {
		cpu := createTestCPU()
		cpu.A = 0x41
		poke(cpu, 0x0200, 0xC7) // DCP zp
		poke(cpu, 0x0201, 0x10)
		poke(cpu, 0x0010, 0x42)
		step(t, cpu)

		if peek(cpu, 0x0010) != 0x41 {
			t.Errorf("Expected memory decremented to 41, got %02X", peek(cpu, 0x0010))
		}
		if !cpu.getFlag(FlagZero) || !cpu.getFlag(FlagCarry) {
			t.Error("A == decremented value: expected Z=1 C=1")
		}
	})

	t.Run("ISB_IncrementSubtract", func(t *testing.T) {
		cpu := createTestCPU()
		cpu.A = 0x50
		cpu.setFlag(FlagCarry, true)
		poke(cpu, 0x0200, 0xE7) // ISB zp
		poke(cpu, 0x0201, 0x10)
		poke(cpu, 0x0010, 0x0F)
		step(t, cpu)

		if peek(cpu, 0x0010) != 0x10 {
			t.Errorf("Expected memory incremented to 10, got %02X", peek(cpu, 0x0010))
		}
		if cpu.A != 0x40 {
			t.Errorf("Expected A=50-10=40, got %02X", cpu.A)
		}
	})

	t.Run("SLO_ShiftLeftOr", func(t *testing.T) {
		cpu := createTestCPU()
		cpu.A = 0x01
		poke(cpu, 0x0200, 0x07) // SLO zp
		poke(cpu, 0x0201, 0x10)
		poke(cpu, 0x0010, 0x82)
		step(t, cpu)

		if peek(cpu, 0x0010) != 0x04 {
			t.Errorf("Expected memory shifted to 04, got %02X", peek(cpu, 0x0010))
		}
		if cpu.A != 0x05 {
			t.Errorf("Expected A=05, got %02X", cpu.A)
		}
		if !cpu.getFlag(FlagCarry) {
			t.Error("Old bit 7 should land in C")
		}
	})

	t.Run("RLA_RotateLeftAnd", func(t *testing.T) {
		cpu := createTestCPU()
		cpu.A = 0xFF
		cpu.setFlag(FlagCarry, true)
		poke(cpu, 0x0200, 0x27) // RLA zp
		poke(cpu, 0x0201, 0x10)
		poke(cpu, 0x0010, 0x40)
		step(t, cpu)

		if peek(cpu, 0x0010) != 0x81 {
			t.Errorf("Expected memory rotated to 81, got %02X", peek(cpu, 0x0010))
		}
		if cpu.A != 0x81 {
			t.Errorf("Expected A=81, got %02X", cpu.A)
		}
		if cpu.getFlag(FlagCarry) {
			t.Error("Old bit 7 was 0: expected C=0")
		}
	})

	t.Run("SRE_ShiftRightEor", func(t *testing.T) {
		cpu := createTestCPU()
		cpu.A = 0x02
		poke(cpu, 0x0200, 0x47) // SRE zp
		poke(cpu, 0x0201, 0x10)
		poke(cpu, 0x0010, 0x05)
		step(t, cpu)

		if peek(cpu, 0x0010) != 0x02 {
			t.Errorf("Expected memory shifted to 02, got %02X", peek(cpu, 0x0010))
		}
		if cpu.A != 0x00 || !cpu.getFlag(FlagZero) {
			t.Errorf("Expected A=00 Z=1, got A=%02X", cpu.A)
		}
		if !cpu.getFlag(FlagCarry) {
			t.Error("Old bit 0 should land in C")
		}
	})

	t.Run("RRA_RotateRightAdd", func(t *testing.T) {
		cpu := createTestCPU()
		cpu.A = 0x10
		poke(cpu, 0x0200, 0x67) // RRA zp
		poke(cpu, 0x0201, 0x10)
		poke(cpu, 0x0010, 0x05)
		step(t, cpu)

		// 05 rotates to 02 with C=1, then A = 10 + 02 + 1
		if peek(cpu, 0x0010) != 0x02 {
			t.Errorf("Expected memory rotated to 02, got %02X", peek(cpu, 0x0010))
		}
		if cpu.A != 0x13 {
			t.Errorf("Expected A=13, got %02X", cpu.A)
		}
	})

	t.Run("ANC_AndCopyNToC", func(t *testing.T) {
		cpu := createTestCPU()
		cpu.A = 0xC0
		poke(cpu, 0x0200, 0x0B) // ANC #$80
		poke(cpu, 0x0201, 0x80)
		step(t, cpu)

		if cpu.A != 0x80 {
			t.Errorf("Expected A=80, got %02X", cpu.A)
		}
		if !cpu.getFlag(FlagCarry) || !cpu.getFlag(FlagNegative) {
			t.Error("Expected C=N=1")
		}
	})

	t.Run("ASR_AndShiftRight", func(t *testing.T) {
		cpu := createTestCPU()
		cpu.A = 0xFF
		poke(cpu, 0x0200, 0x4B) // ASR #$03
		poke(cpu, 0x0201, 0x03)
		step(t, cpu)

		if cpu.A != 0x01 {
			t.Errorf("Expected A=01, got %02X", cpu.A)
		}
		if !cpu.getFlag(FlagCarry) {
			t.Error("Bit 0 of the AND result should land in C")
		}
	})

	t.Run("ARR_Binary", func(t *testing.T) {
		cpu := createTestCPU()
		cpu.A = 0xFF
		cpu.setFlag(FlagCarry, true)
		poke(cpu, 0x0200, 0x6B) // ARR #$FF
		poke(cpu, 0x0201, 0xFF)
		step(t, cpu)

		// FF & FF rotates right with carry in: A=FF>>1|80=FF
		if cpu.A != 0xFF {
			t.Errorf("Expected A=FF, got %02X", cpu.A)
		}
		// C = bit 6, V = bit 6 xor bit 5 of the result
		if !cpu.getFlag(FlagCarry) {
			t.Error("Expected C=1 from bit 6")
		}
		if cpu.getFlag(FlagOverflow) {
			t.Error("Expected V=0 (bits 6 and 5 equal)")
		}
	})

	t.Run("ARR_Decimal", func(t *testing.T) {
		cpu := createTestCPU()
		cpu.setFlag(FlagDecimal, true)
		cpu.setFlag(FlagCarry, false)
		cpu.A = 0x99
		poke(cpu, 0x0200, 0x6B) // ARR #$99
		poke(cpu, 0x0201, 0x99)
		step(t, cpu)

		// anded = 99, rotated = 4C; low fixup (9+1 > 5) gives 42,
		// high fixup (90+10 > 50) adds 60 and sets C
		if cpu.A != 0xA2 {
			t.Errorf("Expected A=A2, got %02X", cpu.A)
		}
		if !cpu.getFlag(FlagCarry) {
			t.Error("Expected C=1 from the high-nibble fixup")
		}
		if cpu.getFlag(FlagNegative) {
			t.Error("Expected N=0 from the old carry")
		}
	})

	t.Run("SBX_AndSubtract", func(t *testing.T) {
		cpu := createTestCPU()
		cpu.A = 0xF0
		cpu.X = 0x3F
		poke(cpu, 0x0200, 0xCB) // SBX #$10
		poke(cpu, 0x0201, 0x10)
		step(t, cpu)

		// (F0 & 3F) - 10 = 30 - 10 = 20
		if cpu.X != 0x20 {
			t.Errorf("Expected X=20, got %02X", cpu.X)
		}
		if !cpu.getFlag(FlagCarry) {
			t.Error("Expected C=1 (no borrow)")
		}
	})

	t.Run("LAS_LoadAXSP", func(t *testing.T) {
		cpu := createTestCPU()
		cpu.SP = 0xF3
		cpu.Y = 0x01
		poke(cpu, 0x0200, 0xBB) // LAS abs,Y
		poke(cpu, 0x0201, 0xFF)
		poke(cpu, 0x0202, 0x17)
		poke(cpu, 0x1800, 0x35)
		step(t, cpu)

		// 35 & F3 = 31
		if cpu.A != 0x31 || cpu.X != 0x31 || cpu.SP != 0x31 {
			t.Errorf("Expected A=X=SP=31, got A=%02X X=%02X SP=%02X", cpu.A, cpu.X, cpu.SP)
		}
	})

	t.Run("SBC_IllegalImmediate", func(t *testing.T) {
		cpu := createTestCPU()
		cpu.A = 0x40
		cpu.setFlag(FlagCarry, true)
		poke(cpu, 0x0200, 0xEB) // undocumented SBC #imm alias
		poke(cpu, 0x0201, 0x10)
		step(t, cpu)

		if cpu.A != 0x30 {
			t.Errorf("Expected A=30, got %02X", cpu.A)
		}
	})

	t.Run("MultiByteNOPs", func(t *testing.T) {
		cpu := createTestCPU()
		poke(cpu, 0x0200, 0x80) // NOP #imm
		poke(cpu, 0x0202, 0x04) // NOP zp
		poke(cpu, 0x0204, 0x0C) // NOP abs
		poke(cpu, 0x0207, 0x1C) // NOP abs,X

		step(t, cpu)
		if cpu.PC != 0x0202 {
			t.Errorf("NOP #imm: expected PC=0x0202, got %04X", cpu.PC)
		}
		step(t, cpu)
		if cpu.PC != 0x0204 {
			t.Errorf("NOP zp: expected PC=0x0204, got %04X", cpu.PC)
		}
		step(t, cpu)
		if cpu.PC != 0x0207 {
			t.Errorf("NOP abs: expected PC=0x0207, got %04X", cpu.PC)
		}
		step(t, cpu)
		if cpu.PC != 0x020A {
			t.Errorf("NOP abs,X: expected PC=0x020A, got %04X", cpu.PC)
		}
	})
}
