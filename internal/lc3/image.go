package lc3

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"lc3vm/internal/utils"
)

// LoadImage reads a raw LC-3 object file: the first big-endian word is
// the load base address, and each subsequent big-endian word is copied
// into memory starting there. An image that would run past the end of
// the address space is truncated to the space available. A VM may have
// more than one image loaded into it, at different bases, by calling
// LoadImage once per file.
func (vm *VM) LoadImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load image %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var origin [2]byte
	if _, err := io.ReadFull(r, origin[:]); err != nil {
		return fmt.Errorf("load image %s: %w", path, err)
	}
	addr := uint32(utils.BEWord(origin[:], 0))

	word := make([]byte, 2)
	for addr < MemSize {
		_, err := io.ReadFull(r, word)
		if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("load image %s: %w", path, err)
		}
		vm.Mem[addr] = utils.BEWord(word, 0)
		addr++
	}
	return nil
}
