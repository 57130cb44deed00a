package lc3

import (
	"fmt"
	"io"
)

// Trap vectors, as decoded from the low 8 bits of a TRAP instruction.
const (
	TrapGetc  uint16 = 0x20
	TrapOut   uint16 = 0x21
	TrapPuts  uint16 = 0x22
	TrapIn    uint16 = 0x23
	TrapPutsp uint16 = 0x24
	TrapHalt  uint16 = 0x25
)

// trapTable dispatches on the 8-bit vector. Vectors with no entry are
// reported as TrapError by execTRAP.
var trapTable = [256]func(*VM) error{
	TrapGetc:  (*VM).trapGETC,
	TrapOut:   (*VM).trapOUT,
	TrapPuts:  (*VM).trapPUTS,
	TrapIn:    (*VM).trapIN,
	TrapPutsp: (*VM).trapPUTSP,
	TrapHalt:  (*VM).trapHALT,
}

func (vm *VM) trapGETC() error {
	var b [1]byte
	if _, err := io.ReadFull(vm.Console, b[:]); err != nil {
		return fmt.Errorf("GETC: %w", err)
	}
	vm.Reg[R0] = uint16(b[0])
	return nil
}

func (vm *VM) trapOUT() error {
	_, err := fmt.Fprintf(vm.Console, "%c", byte(vm.Reg[R0]))
	return err
}

// trapPUTS prints memory starting at Reg[R0], one character per word's
// low byte, stopping at the first zero word. It reads the backing array
// directly rather than through memRead, so scanning a string that spans
// the keyboard or zero-register addresses never triggers their side
// effects.
func (vm *VM) trapPUTS() error {
	for i := vm.Reg[R0]; vm.Mem[i] != 0; i++ {
		if _, err := fmt.Fprintf(vm.Console, "%c", byte(vm.Mem[i])); err != nil {
			return err
		}
	}
	return nil
}

func (vm *VM) trapIN() error {
	if _, err := fmt.Fprint(vm.Console, "Enter a character: "); err != nil {
		return err
	}
	var b [1]byte
	if _, err := io.ReadFull(vm.Console, b[:]); err != nil {
		return fmt.Errorf("IN: %w", err)
	}
	vm.Reg[R0] = uint16(b[0])
	return nil
}

// trapPUTSP prints memory starting at Reg[R0], high byte then (if
// nonzero) low byte per word, stopping at the first word whose high
// byte is zero. Like trapPUTS, it reads the backing array directly so
// the scan has no memory-mapped side effects.
func (vm *VM) trapPUTSP() error {
	for addr := vm.Reg[R0]; ; addr++ {
		w := vm.Mem[addr]
		hi := byte(w >> 8)
		if hi == 0 {
			return nil
		}
		if _, err := fmt.Fprintf(vm.Console, "%c", hi); err != nil {
			return err
		}
		if lo := byte(w); lo != 0 {
			if _, err := fmt.Fprintf(vm.Console, "%c", lo); err != nil {
				return err
			}
		}
	}
}

func (vm *VM) trapHALT() error {
	_, err := fmt.Fprint(vm.Console, "[!] HALT")
	vm.Running = false
	return err
}
