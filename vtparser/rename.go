package vtparser

import "unicode/utf8"

// dispatchRename implements ESC k ... ST (DECDWINR-style window rename,
// historically a tmux/screen convention): the payload is the new window
// name, subject to Options.AllowRename. An empty payload removes the
// automatic-rename override rather than setting an empty name; invalid
// UTF-8 is dropped rather than forwarded.
func (c *Ctx) dispatchRename() {
	if c.col.Options != nil && !c.col.Options.AllowRename() {
		return
	}
	payload := c.stringValue()
	if len(payload) > 0 && !utf8.Valid(payload) {
		return
	}
	name := string(payload)
	if c.col.Notifier != nil {
		c.col.Notifier.NotifyWindowRenamed(name)
	}
}
