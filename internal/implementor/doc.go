// Package implementor defines the low-level half of the bridge: the
// [Implementor] capability and its concrete variants.
//
// An Implementor performs one action and knows nothing about the
// abstractions that call it. The two shipped variants,
// [ConcreteImplementorA] and [ConcreteImplementorB], each write a fixed label
// line to the writer they were built with.
//
// A [Registry] maps short names ("a", "b") to factories so that callers can
// select variants by name without knowing the concrete types:
//
//	reg := implementor.DefaultRegistry()
//	impl, err := reg.New("a", os.Stdout)
//	if err != nil {
//	    return err
//	}
//	_ = impl.Action() // prints "Concrete Implementor A"
package implementor
