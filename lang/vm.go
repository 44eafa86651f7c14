package lang

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// VM executes compiled byte blocks against a binding stack. One VM owns one
// binding stack for its whole lifetime, so successive Interpret calls (as in
// the REPL) share declared bindings.
type VM struct {
	block    *ByteBlock
	ip       int
	stack    []Value
	bindings *BindingStack
	stdout   io.Writer
	logger   *slog.Logger
}

// VMOption configures a VM at construction.
type VMOption func(*VM)

// WithStdout directs print statement output to w instead of os.Stdout.
func WithStdout(w io.Writer) VMOption {
	return func(m *VM) { m.stdout = w }
}

// WithLogger attaches a structured logger for instruction-level tracing.
func WithLogger(logger *slog.Logger) VMOption {
	return func(m *VM) { m.logger = logger }
}

// NewVM creates a VM with an empty binding stack.
func NewVM(opts ...VMOption) *VM {
	m := &VM{
		bindings: NewBindingStack(),
		stdout:   os.Stdout,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Bindings exposes the VM's binding stack for inspection. The caller must not
// mutate it while Interpret is running.
func (m *VM) Bindings() *BindingStack { return m.bindings }

// Interpret executes the block to completion. Failures are reported as
// *RuntimeError carrying the source line of the failing instruction; the
// binding stack retains whatever state execution reached before the failure.
func (m *VM) Interpret(block *ByteBlock) error {
	m.block = block
	m.ip = 0
	m.stack = m.stack[:0]

	for {
		op := OpCode(m.readByte())

		if m.logger != nil {
			m.logger.Debug("exec", slog.String("op", op.String()), slog.Int("ip", m.ip-1))
		}

		switch op {
		case OpConstant:
			m.push(m.block.Constants[m.readByte()])

		case OpConstantLong:
			idx := int(m.readByte())<<16 | int(m.readByte())<<8 | int(m.readByte())
			m.push(m.block.Constants[idx])

		case OpTrue:
			m.push(Bool(true))

		case OpFalse:
			m.push(Bool(false))

		case OpNull:
			m.push(Null())

		case OpPop:
			m.pop()

		case OpDeclareBinding:
			name := m.readName()
			m.bindings.Declare(name, m.pop())

		case OpResolveBinding:
			name := m.readName()

			v, err := m.bindings.Resolve(name)
			if err != nil {
				return m.fail(err)
			}

			m.push(v)

		case OpAssignBinding:
			name := m.readName()

			// Assignment is an expression; its value stays on the stack.
			if err := m.bindings.Assign(name, m.peek(0)); err != nil {
				return m.fail(err)
			}

		case OpRemoveBinding:
			name := m.readName()

			if err := m.bindings.Remove(name); err != nil {
				return m.fail(err)
			}

		case OpEnterScope:
			m.bindings.EnterScope()

		case OpExitScope:
			m.bindings.ExitScope(m.bindings.Depth())

		case OpEqual:
			b, a := m.pop(), m.pop()
			m.push(Bool(a.Equal(b)))

		case OpGreater:
			b, a, err := m.popNumericPair()
			if err != nil {
				return err
			}

			m.push(Bool(a > b))

		case OpLess:
			b, a, err := m.popNumericPair()
			if err != nil {
				return err
			}

			m.push(Bool(a < b))

		case OpNot:
			m.push(Bool(m.pop().Falsey()))

		case OpNegate:
			if m.peek(0).Kind != KindNumber {
				return m.failf("operand of '-' must be a number, got %s", m.peek(0).TypeName())
			}

			m.push(Number(-m.pop().AsNumber()))

		case OpAdd:
			if err := m.add(); err != nil {
				return err
			}

		case OpSub:
			b, a, err := m.popNumericPair()
			if err != nil {
				return err
			}

			m.push(Number(a - b))

		case OpMul:
			b, a, err := m.popNumericPair()
			if err != nil {
				return err
			}

			m.push(Number(a * b))

		case OpDiv:
			b, a, err := m.popNumericPair()
			if err != nil {
				return err
			}

			m.push(Number(a / b))

		case OpPrint:
			fmt.Fprintln(m.stdout, m.pop().Format())

		case OpJz:
			dist := m.readShort()
			if m.peek(0).Falsey() {
				m.ip += dist
			}

		case OpJmp:
			m.ip += m.readShort()

		case OpLoop:
			m.ip -= m.readShort()

		case OpReturn:
			return nil

		default:
			return m.failf("unknown opcode 0x%02X", byte(op))
		}
	}
}

// add implements OpAdd: numeric addition or string concatenation.
func (m *VM) add() error {
	b, a := m.pop(), m.pop()

	switch {
	case a.Kind == KindNumber && b.Kind == KindNumber:
		m.push(Number(a.AsNumber() + b.AsNumber()))
	case a.Kind == KindString && b.Kind == KindString:
		m.push(String(a.AsString() + b.AsString()))
	default:
		return m.failf("operands of '+' must both be numbers or both be strings, got %s and %s",
			a.TypeName(), b.TypeName())
	}

	return nil
}

// popNumericPair pops the two operands of a numeric binary operator, second
// operand first.
func (m *VM) popNumericPair() (b, a float64, err error) {
	if m.peek(0).Kind != KindNumber || m.peek(1).Kind != KindNumber {
		return 0, 0, m.failf("operands must be numbers, got %s and %s",
			m.peek(1).TypeName(), m.peek(0).TypeName())
	}

	bv, av := m.pop(), m.pop()

	return bv.AsNumber(), av.AsNumber(), nil
}

// ---------------------------------------------------------------------------
// Stack and operand plumbing
// ---------------------------------------------------------------------------

func (m *VM) push(v Value) {
	m.stack = append(m.stack, v)
}

func (m *VM) pop() Value {
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]

	return v
}

func (m *VM) peek(n int) Value {
	return m.stack[len(m.stack)-1-n]
}

func (m *VM) readByte() byte {
	b := m.block.Code[m.ip]
	m.ip++

	return b
}

func (m *VM) readShort() int {
	v := binary.BigEndian.Uint16(m.block.Code[m.ip:])
	m.ip += 2

	return int(v)
}

// readName reads a 1-byte name constant operand and returns the identifier.
func (m *VM) readName() string {
	return m.block.Constants[m.readByte()].AsString()
}

// line returns the source line of the most recently decoded instruction.
func (m *VM) line() int {
	if m.ip == 0 || m.ip > len(m.block.Lines) {
		return 0
	}

	return m.block.Lines[m.ip-1]
}

func (m *VM) fail(err error) error {
	return &RuntimeError{Line: m.line(), Err: err}
}

func (m *VM) failf(format string, args ...any) error {
	return m.fail(fmt.Errorf(format, args...))
}
