package lang

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Disassemble writes a human-readable listing of the block to w under the
// given heading. Each line shows the byte offset, the source line (elided
// with '|' when unchanged from the previous instruction), the mnemonic, and
// any operands.
func Disassemble(block *ByteBlock, name string, w io.Writer) {
	fmt.Fprintf(w, "== %s ==\n", name)

	for offset := 0; offset < len(block.Code); {
		offset = disassembleInstruction(block, offset, w)
	}
}

func disassembleInstruction(block *ByteBlock, offset int, w io.Writer) int {
	fmt.Fprintf(w, "%04d ", offset)

	if offset > 0 && block.Lines[offset] == block.Lines[offset-1] {
		fmt.Fprint(w, "   | ")
	} else {
		fmt.Fprintf(w, "%4d ", block.Lines[offset])
	}

	op := OpCode(block.Code[offset])

	switch op {
	case OpConstant, OpDeclareBinding, OpResolveBinding,
		OpAssignBinding, OpRemoveBinding:
		return constantInstruction(op, block, offset, w)

	case OpConstantLong:
		return longConstantInstruction(op, block, offset, w)

	case OpJz, OpJmp:
		return jumpInstruction(op, 1, block, offset, w)

	case OpLoop:
		return jumpInstruction(op, -1, block, offset, w)

	case OpTrue, OpFalse, OpNull, OpPop, OpEnterScope, OpExitScope,
		OpEqual, OpGreater, OpLess, OpNot, OpNegate,
		OpAdd, OpSub, OpMul, OpDiv, OpPrint, OpReturn:
		return simpleInstruction(op, offset, w)

	default:
		fmt.Fprintf(w, "unknown opcode 0x%02X\n", block.Code[offset])

		return offset + 1
	}
}

func simpleInstruction(op OpCode, offset int, w io.Writer) int {
	fmt.Fprintf(w, "%s\n", op)

	return offset + 1
}

func constantInstruction(op OpCode, block *ByteBlock, offset int, w io.Writer) int {
	idx := block.Code[offset+1]
	fmt.Fprintf(w, "%-18s %4d '%s'\n", op, idx, block.Constants[idx].Format())

	return offset + 2
}

func longConstantInstruction(op OpCode, block *ByteBlock, offset int, w io.Writer) int {
	idx := int(block.Code[offset+1])<<16 |
		int(block.Code[offset+2])<<8 |
		int(block.Code[offset+3])
	fmt.Fprintf(w, "%-18s %4d '%s'\n", op, idx, block.Constants[idx].Format())

	return offset + 4
}

func jumpInstruction(op OpCode, sign int, block *ByteBlock, offset int, w io.Writer) int {
	dist := int(binary.BigEndian.Uint16(block.Code[offset+1:]))
	fmt.Fprintf(w, "%-18s %4d -> %d\n", op, offset, offset+3+sign*dist)

	return offset + 3
}
