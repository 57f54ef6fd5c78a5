package vtparser

// dispatchAPC implements ESC _ ... ST (Application Program Command): the
// entire payload is used as the pane/window title, the same path OSC 0/2
// uses.
func (c *Ctx) dispatchAPC() {
	c.setTitle(string(c.stringValue()))
}
