package record

import "slices"

// properties is a small name -> value map kept as two parallel slices.
// Records usually carry a handful of properties, where a linear scan beats
// hashing and keeps insertion order.
type properties struct {
	names  []string
	values []any
}

func (p *properties) find(name string) int {
	for i, n := range p.names {
		if n == name {
			return i
		}
	}
	return -1
}

func (p *properties) clear() {
	clear(p.values)
	p.names = p.names[:0]
	p.values = p.values[:0]
}

func (p *properties) clone() properties {
	return properties{names: slices.Clone(p.names), values: slices.Clone(p.values)}
}

// Property returns the named property.
func (g *GenericObject) Property(name string) (any, bool) {
	i := g.props.find(name)
	if i < 0 {
		return nil, false
	}
	return g.props.values[i], true
}

// SetProperty sets the named property and returns the previous value, or nil
// if it was unset.
func (g *GenericObject) SetProperty(name string, v any) any {
	if i := g.props.find(name); i >= 0 {
		prev := g.props.values[i]
		g.props.values[i] = v
		return prev
	}
	g.props.names = append(g.props.names, name)
	g.props.values = append(g.props.values, v)
	return nil
}

// RemoveProperty deletes the named property and returns its value.
func (g *GenericObject) RemoveProperty(name string) (any, bool) {
	i := g.props.find(name)
	if i < 0 {
		return nil, false
	}
	prev := g.props.values[i]
	g.props.names = slices.Delete(g.props.names, i, i+1)
	g.props.values = slices.Delete(g.props.values, i, i+1)
	return prev, true
}

// PropertyNames returns the property names in insertion order.
func (g *GenericObject) PropertyNames() []string {
	return slices.Clone(g.props.names)
}

// PropertyCount returns the number of properties.
func (g *GenericObject) PropertyCount() int {
	return len(g.props.names)
}
