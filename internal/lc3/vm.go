// Package lc3 implements the LC-3 instruction interpreter: the
// fetch-decode-execute loop, its sixteen opcodes, the condition-flag
// logic, the memory-mapped keyboard, and the trap service routines.
package lc3

// Console is the host I/O surface the interpreter reads and writes
// through. It is satisfied by a real terminal (internal/term) or, in
// tests, by an in-memory fake, so the core never imports os directly.
type Console interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)

	// Ready reports whether a byte can be read without blocking. It
	// backs the KBSR memory-mapped register poll.
	Ready() (bool, error)
}

// pcStart is the address execution begins at; 0x3000 is the LC-3
// convention and the only value this interpreter uses.
const pcStart = 0x3000

// VM holds everything that is process-wide while the emulator runs: the
// register file, memory, the running flag, and the console it brokers
// I/O through.
type VM struct {
	Reg     [RegCount]uint16
	Mem     [MemSize]uint16
	Running bool
	Console Console
}

// New returns a VM with zeroed registers and memory, ready to have
// images loaded into it via LoadImage.
func New(console Console) *VM {
	return &VM{Console: console}
}

// Run sets PC to the start address, marks the VM running, and executes
// instructions until TRAP HALT clears the running flag or a fatal
// condition (unknown opcode, RTI, unknown trap vector, host I/O
// failure) is reached.
func (vm *VM) Run() error {
	vm.Reg[RPC] = pcStart
	vm.Running = true

	for vm.Running {
		if err := vm.step(); err != nil {
			return err
		}
	}
	return nil
}

// step fetches, decodes, and dispatches a single instruction.
func (vm *VM) step() error {
	instr, err := vm.memRead(vm.Reg[RPC])
	if err != nil {
		return err
	}
	vm.Reg[RPC]++

	op := instr >> 12
	fn := opTable[op]
	if fn == nil {
		return &OpcodeError{Op: op}
	}
	return fn(vm, instr)
}
