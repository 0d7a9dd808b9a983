package flow

// Engine maps a flow id and named inputs to output text: registry lookup,
// placeholder resolution, then heuristic transformation.
type Engine struct {
	reg *Registry
	tr  Transformer
}

// NewEngine creates an engine over the given registry and transformer.
func NewEngine(reg *Registry, tr Transformer) *Engine {
	return &Engine{reg: reg, tr: tr}
}

// Execute runs the named flow with the given inputs. The only possible
// error is apperr.ErrUnknownFlow; every other input transforms best-effort.
func (e *Engine) Execute(id ID, in Inputs) (string, error) {
	tpl, err := e.reg.Lookup(id)
	if err != nil {
		return "", err
	}
	header, body := SplitInstruction(Resolve(tpl, in))
	return e.tr.Transform(header, body), nil
}

// IDs returns the registered flow ids in lexical order.
func (e *Engine) IDs() []ID {
	return e.reg.IDs()
}
