package frontend

import (
	"github.com/benbjohnson/immutable"

	"github.com/carlos-lang/carlos/frontend/ast"
	"github.com/carlos-lang/carlos/frontend/carloserr"
	"github.com/carlos-lang/carlos/frontend/ir"
)

// Context is one node of the lexical scope chain. It tracks the bindings
// visible at this point of the traversal, whether the point is inside a
// loop body, and the enclosing function entity if any.
//
// Bindings live in a persistent map: a child context starts from a snapshot
// of its parent's map, so the whole visible chain is answerable from one
// lookup. That snapshot is also what makes the no-shadowing rule cheap —
// Add never has to walk ancestors.
type Context struct {
	parent   *Context
	bindings *immutable.Map[string, ir.Entity]
	inLoop   bool
	function *ir.Function
}

// NewContext returns a root context seeded with the given bindings,
// normally the standard-library prelude.
func NewContext(prelude map[string]ir.Entity) *Context {
	b := immutable.NewMapBuilder[string, ir.Entity](nil)
	for name, entity := range prelude {
		b.Set(name, entity)
	}
	return &Context{bindings: b.Map()}
}

// Sees reports whether name is bound in this context or any ancestor.
func (c *Context) Sees(name string) bool {
	_, ok := c.bindings.Get(name)
	return ok
}

// Add binds name locally. Shadowing is not permitted anywhere along the
// chain, so a name visible from any ancestor fails with AlreadyDeclared.
func (c *Context) Add(name string, entity ir.Entity, at ast.Positioner) error {
	if c.Sees(name) {
		return carloserr.New(carloserr.NewAlreadyDeclared{Positioner: at, Name: name})
	}
	c.bindings = c.bindings.Set(name, entity)
	return nil
}

// Lookup returns the nearest binding for name.
func (c *Context) Lookup(name string, at ast.Positioner) (ir.Entity, error) {
	if entity, ok := c.bindings.Get(name); ok {
		return entity, nil
	}
	return nil, carloserr.New(carloserr.NewNotDeclared{Positioner: at, Name: name})
}

// InLoop reports whether this context is inside a loop body.
func (c *Context) InLoop() bool { return c.inLoop }

// Function returns the enclosing function entity, or nil at top level.
func (c *Context) Function() *ir.Function { return c.function }

// NewChild returns a child context inheriting the loop flag and enclosing
// function. Used for if consequents and else blocks.
func (c *Context) NewChild() *Context {
	return &Context{
		parent:   c,
		bindings: c.bindings,
		inLoop:   c.inLoop,
		function: c.function,
	}
}

// NewChildInLoop returns a child context for a loop body.
func (c *Context) NewChildInLoop() *Context {
	child := c.NewChild()
	child.inLoop = true
	return child
}

// NewChildInFunction returns a child context for the body of f. The loop
// flag resets: a loop around a function declaration does not make the
// function body a loop context.
func (c *Context) NewChildInFunction(f *ir.Function) *Context {
	child := c.NewChild()
	child.inLoop = false
	child.function = f
	return child
}
