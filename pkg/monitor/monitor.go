// Package monitor is an interactive terminal stepper for a machine: memory
// rows for page zero, the stack page, and the neighborhood of PC, a register
// and flag readout, and single-instruction stepping.
package monitor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/yoshiomiyamaego6502/pkg/cpu"
	"github.com/yoshiomiyamaego6502/pkg/machine"
)

type model struct {
	m *machine.Machine

	last cpu.StepOutcome
	err  error
}

// Init implements tea.Model; there is no initial command.
func (md model) Init() tea.Cmd {
	return nil
}

// Update steps the machine on space/j, resets on r, quits on q.
func (md model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return md, tea.Quit

		case " ", "j":
			outcome, err := md.m.Step()
			if err != nil {
				md.err = err
				return md, tea.Quit
			}
			md.last = outcome

		case "r":
			if err := md.m.Reset(); err != nil {
				md.err = err
				return md, tea.Quit
			}
			md.last = cpu.StepOutcome{}
		}
	}
	return md, nil
}

// renderRow renders 16 bytes starting at start as one line, highlighting the
// current PC cell. Unmapped bytes render as "--".
func (md model) renderRow(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		cell := "--"
		if b, err := md.m.Bus.Read(addr); err == nil {
			cell = fmt.Sprintf("%02x", b)
		}
		if addr == md.m.CPU.PC {
			s += fmt.Sprintf("[%s] ", cell)
		} else {
			s += fmt.Sprintf(" %s  ", cell)
		}
	}
	return s
}

func (md model) memoryTable() string {
	header := "addr | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}

	// page zero, the stack page, then the rows around PC
	starts := []uint16{
		0x0000, 0x0010, 0x0020, 0x0030,
		0x0100 | uint16(md.m.CPU.SP)&0xF0,
	}
	pcRow := md.m.CPU.PC &^ 0x000F
	for i := uint16(0); i < 5; i++ {
		starts = append(starts, pcRow+16*i)
	}
	for _, start := range starts {
		rows = append(rows, md.renderRow(start))
	}
	return strings.Join(rows, "\n")
}

func (md model) status() string {
	c := md.m.CPU
	var rail string
	for _, flag := range []uint8{
		cpu.FlagNegative,
		cpu.FlagOverflow,
		cpu.FlagUnused,
		cpu.FlagBreak,
		cpu.FlagDecimal,
		cpu.FlagInterrupt,
		cpu.FlagZero,
		cpu.FlagCarry,
	} {
		if c.GetFlag(flag) {
			rail += "/ "
		} else {
			rail += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (prev %04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V - B D I Z C
`,
		c.PC,
		md.last.PCBefore,
		c.A,
		c.X,
		c.Y,
		c.SP,
	) + rail
}

func (md model) currentOpcode() string {
	b, err := md.m.Bus.Read(md.m.CPU.PC)
	if err != nil {
		return err.Error()
	}
	return spew.Sdump(cpu.Info(b))
}

// View renders the memory table next to the register readout, with the
// decoded next opcode underneath.
func (md model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			md.memoryTable(),
			md.status(),
		),
		"",
		md.currentOpcode(),
	)
}

// Run starts the interactive session on the given machine and blocks until
// the user quits or a fault ends it. The fault, if any, is returned.
func Run(m *machine.Machine) error {
	final, err := tea.NewProgram(model{m: m}).Run()
	if err != nil {
		return err
	}
	return final.(model).err
}
