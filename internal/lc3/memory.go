package lc3

import "fmt"

// MemSize is the size of the LC-3 address space: exactly 65536 words.
const MemSize = 1 << 16

// Memory-mapped addresses.
const (
	mrKBSR = 0xFE00 // keyboard status
	mrKBDR = 0xFE02 // keyboard data
	mrZero = 0xFFFF // hard-wired zero register
)

// memRead reads a word from memory. Reading mrKBSR first polls the
// console for an available byte: if one is ready, KBSR gets its high
// bit set and KBDR gets the byte; otherwise KBSR is cleared. Reading
// mrZero always returns 0.
func (vm *VM) memRead(addr uint16) (uint16, error) {
	if addr == mrKBSR {
		ready, err := vm.Console.Ready()
		if err != nil {
			return 0, fmt.Errorf("keyboard poll: %w", err)
		}
		if ready {
			var b [1]byte
			if _, err := vm.Console.Read(b[:]); err != nil {
				return 0, fmt.Errorf("keyboard read: %w", err)
			}
			vm.Mem[mrKBSR] = 1 << 15
			vm.Mem[mrKBDR] = uint16(b[0])
		} else {
			vm.Mem[mrKBSR] = 0
		}
	}

	if addr == mrZero {
		return 0, nil
	}
	return vm.Mem[addr], nil
}

// memWrite writes a word to memory. Writes to mrZero are forced to 0.
func (vm *VM) memWrite(addr, val uint16) {
	if addr == mrZero {
		vm.Mem[addr] = 0
		return
	}
	vm.Mem[addr] = val
}
