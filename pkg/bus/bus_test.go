package bus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoshiomiyamaego6502/pkg/device"
)

func TestAttachAndAccess(t *testing.T) {
	b := New()
	require.NoError(t, b.Attach(device.NewRAM(0x0800), 0x0000))

	require.NoError(t, b.Write(0x0123, 0xAB))
	v, err := b.Read(0x0123)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAB), v)
}

func TestAttachRejectsOverlap(t *testing.T) {
	b := New()
	require.NoError(t, b.Attach(device.NewRAM(0x0800), 0x0000))

	err := b.Attach(device.NewRAM(0x0800), 0x07FF)
	assert.Error(t, err)

	// adjacent is fine
	assert.NoError(t, b.Attach(device.NewRAM(0x0800), 0x0800))
}

func TestAttachRejectsOutOfRange(t *testing.T) {
	b := New()
	assert.Error(t, b.Attach(device.NewRAM(0x0200), 0xFF00))
	assert.Error(t, b.Attach(device.NewRAM(0), 0x0000))
}

func TestUnmappedAccess(t *testing.T) {
	b := New()
	require.NoError(t, b.Attach(device.NewRAM(0x0800), 0x0000))

	_, err := b.Read(0x4000)
	var unmapped *UnmappedAccessError
	require.ErrorAs(t, err, &unmapped)
	assert.Equal(t, uint16(0x4000), unmapped.Addr)
	assert.Equal(t, AccessRead, unmapped.Kind)

	err = b.Write(0x4000, 0x01)
	require.ErrorAs(t, err, &unmapped)
	assert.Equal(t, AccessWrite, unmapped.Kind)
}

func TestMirrorAliasesStorage(t *testing.T) {
	b := New()
	ram := device.NewRAM(0x0800)
	require.NoError(t, b.Attach(ram, 0x0000))
	require.NoError(t, b.Attach(ram, 0x2000), "second attachment of the same device is a mirror")

	// a write through the mirror is visible at the canonical address
	require.NoError(t, b.Write(0x2010, 0x55))
	v, err := b.Read(0x0010)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x55), v)

	// and the other way around
	require.NoError(t, b.Write(0x0020, 0xAA))
	v, err = b.Read(0x2020)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAA), v)
}

func TestROMWritePolicy(t *testing.T) {
	b := New()
	rom := device.NewROM([]uint8{0x11, 0x22})
	require.NoError(t, b.Attach(rom, 0x8000))

	// default: the write is silently dropped
	require.NoError(t, b.Write(0x8000, 0xFF))
	v, err := b.Read(0x8000)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x11), v)

	// strict: the write faults
	b.StrictReadOnly = true
	err = b.Write(0x8000, 0xFF)
	var readonly *ReadOnlyWriteError
	require.ErrorAs(t, err, &readonly)
	assert.Equal(t, uint16(0x8000), readonly.Addr)
}

func TestRead16(t *testing.T) {
	b := New()
	require.NoError(t, b.Attach(device.NewRAM(0x10000), 0x0000))

	require.NoError(t, b.Write(0x1000, 0x34))
	require.NoError(t, b.Write(0x1001, 0x12))
	v, err := b.Read16(0x1000)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v)

	// a hole under either byte surfaces as the fault
	holey := New()
	require.NoError(t, holey.Attach(device.NewRAM(0x1001), 0x0000))
	_, err = holey.Read16(0x1000)
	var unmapped *UnmappedAccessError
	assert.True(t, errors.As(err, &unmapped))
}
