package implementor

import (
	"io"

	"github.com/Iron-Ham/bridge/internal/errors"
)

// Labels emitted by the concrete implementors.
const (
	LabelA = "Concrete Implementor A"
	LabelB = "Concrete Implementor B"
)

// Implementor is the implementation side of the bridge.
type Implementor interface {
	// Action performs the implementor's effect. It takes no input; an error
	// means the effect could not be delivered, never that the implementor
	// refused to act.
	Action() error
}

// Labeler is implemented by implementors that can name themselves.
type Labeler interface {
	Label() string
}

// ConcreteImplementorA writes LabelA.
type ConcreteImplementorA struct {
	out io.Writer
}

// NewConcreteImplementorA returns an implementor writing to w.
// A nil w discards output.
func NewConcreteImplementorA(w io.Writer) *ConcreteImplementorA {
	return &ConcreteImplementorA{out: orDiscard(w)}
}

// Action writes the label followed by a newline.
func (c *ConcreteImplementorA) Action() error {
	return writeLabel(c.out, LabelA)
}

// Label returns LabelA.
func (c *ConcreteImplementorA) Label() string { return LabelA }

// ConcreteImplementorB writes LabelB.
type ConcreteImplementorB struct {
	out io.Writer
}

// NewConcreteImplementorB returns an implementor writing to w.
// A nil w discards output.
func NewConcreteImplementorB(w io.Writer) *ConcreteImplementorB {
	return &ConcreteImplementorB{out: orDiscard(w)}
}

// Action writes the label followed by a newline.
func (c *ConcreteImplementorB) Action() error {
	return writeLabel(c.out, LabelB)
}

// Label returns LabelB.
func (c *ConcreteImplementorB) Label() string { return LabelB }

// writeLabel emits one line in a single Write call so that a label is never
// split across writers.
func writeLabel(w io.Writer, label string) error {
	if _, err := io.WriteString(w, label+"\n"); err != nil {
		return errors.Wrapf(err, "write %q", label)
	}
	return nil
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

var (
	_ Implementor = (*ConcreteImplementorA)(nil)
	_ Implementor = (*ConcreteImplementorB)(nil)
	_ Labeler     = (*ConcreteImplementorA)(nil)
	_ Labeler     = (*ConcreteImplementorB)(nil)
)
