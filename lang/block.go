package lang

// OpCode identifies a virtual machine instruction.
type OpCode byte

const (
	// OpConstant pushes the constant at the 1-byte operand index.
	OpConstant OpCode = iota
	// OpConstantLong pushes the constant at the 3-byte big-endian operand
	// index, for blocks with more than 256 constants.
	OpConstantLong

	// Immediate values.
	OpTrue
	OpFalse
	OpNull

	// OpPop discards the top of the value stack.
	OpPop

	// Binding stack operations. Each carries a 1-byte operand indexing the
	// identifier's name constant.
	OpDeclareBinding
	OpResolveBinding
	OpAssignBinding
	OpRemoveBinding

	// Scope boundaries.
	OpEnterScope
	OpExitScope

	// Comparison and logic.
	OpEqual
	OpGreater
	OpLess
	OpNot

	// Arithmetic.
	OpNegate
	OpAdd
	OpSub
	OpMul
	OpDiv

	// OpPrint pops the top of the stack and hands it to the print writer.
	OpPrint

	// Control flow. Each carries a 2-byte big-endian distance operand.
	OpJz   // jump forward when top of stack is falsey (does not pop)
	OpJmp  // jump forward unconditionally
	OpLoop // jump backward unconditionally

	// OpReturn ends execution of the block.
	OpReturn
)

// opName maps each opcode to its disassembly mnemonic.
var opName = map[OpCode]string{
	OpConstant:       "OP_CONSTANT",
	OpConstantLong:   "OP_CONSTANT_LONG",
	OpTrue:           "OP_TRUE",
	OpFalse:          "OP_FALSE",
	OpNull:           "OP_NULL",
	OpPop:            "OP_POP",
	OpDeclareBinding: "OP_DECLARE_BINDING",
	OpResolveBinding: "OP_RESOLVE_BINDING",
	OpAssignBinding:  "OP_ASSIGN_BINDING",
	OpRemoveBinding:  "OP_REMOVE_BINDING",
	OpEnterScope:     "OP_ENTER_SCOPE",
	OpExitScope:      "OP_EXIT_SCOPE",
	OpEqual:          "OP_EQUAL",
	OpGreater:        "OP_GREATER",
	OpLess:           "OP_LESS",
	OpNot:            "OP_NOT",
	OpNegate:         "OP_NEGATE",
	OpAdd:            "OP_ADD",
	OpSub:            "OP_SUB",
	OpMul:            "OP_MUL",
	OpDiv:            "OP_DIV",
	OpPrint:          "OP_PRINT",
	OpJz:             "OP_JUMP_IF_FALSE",
	OpJmp:            "OP_JUMP",
	OpLoop:           "OP_LOOP",
	OpReturn:         "OP_RETURN",
}

// String returns the disassembly mnemonic for the opcode.
func (op OpCode) String() string {
	if name, ok := opName[op]; ok {
		return name
	}

	return "OP_UNKNOWN"
}

// maxShortConstant is the largest constant index addressable by OpConstant.
const maxShortConstant = 0xFF

// maxLongConstant is the largest constant index addressable by
// OpConstantLong.
const maxLongConstant = 0xFFFFFF

// ByteBlock is a compiled unit of bytecode: instruction bytes, a parallel
// slice of source lines for diagnostics, and a constant pool.
type ByteBlock struct {
	Code      []byte
	Lines     []int
	Constants []Value
}

// NewByteBlock creates an empty byte block.
func NewByteBlock() *ByteBlock {
	return &ByteBlock{}
}

// Push appends a raw byte attributed to the given source line.
func (b *ByteBlock) Push(c byte, line int) {
	b.Code = append(b.Code, c)
	b.Lines = append(b.Lines, line)
}

// PushOp appends an opcode attributed to the given source line.
func (b *ByteBlock) PushOp(op OpCode, line int) {
	b.Push(byte(op), line)
}

// AddConstant appends a value to the constant pool and returns its index.
// It fails when the pool exceeds the long-operand address space.
func (b *ByteBlock) AddConstant(v Value) (int, error) {
	if len(b.Constants) > maxLongConstant {
		return 0, ErrTooManyConst
	}

	b.Constants = append(b.Constants, v)

	return len(b.Constants) - 1, nil
}

// WriteConstant appends a load of the given constant, selecting the short or
// long form by index width.
func (b *ByteBlock) WriteConstant(v Value, line int) error {
	idx, err := b.AddConstant(v)
	if err != nil {
		return err
	}

	if idx <= maxShortConstant {
		b.PushOp(OpConstant, line)
		b.Push(byte(idx), line)

		return nil
	}

	b.PushOp(OpConstantLong, line)
	b.Push(byte(idx>>16), line)
	b.Push(byte(idx>>8), line)
	b.Push(byte(idx), line)

	return nil
}
