package listing

// Debouncer hands out increasing tickets. Only the newest ticket is current,
// so a timer that fires for an older ticket is ignored.
type Debouncer struct {
	latest uint64
}

// Next issues a new ticket, superseding every earlier one
func (d *Debouncer) Next() uint64 {
	d.latest++
	return d.latest
}

// IsCurrent reports whether ticket is the newest one issued
func (d *Debouncer) IsCurrent(ticket uint64) bool {
	return ticket != 0 && ticket == d.latest
}

// Cancel invalidates any outstanding ticket
func (d *Debouncer) Cancel() {
	d.latest++
}
