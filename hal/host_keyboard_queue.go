//go:build !tinygo

package hal

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// push queues ev, dropping it when the queue is full.
func (k *hostKeyboard) push(ev KeyEvent) bool {
	select {
	case k.ch <- ev:
		return true
	default:
		return false
	}
}

func (k *hostKeyboard) pushRune(r rune) bool {
	switch r {
	case 0x1b:
		return k.push(KeyEvent{Code: KeyEscape, Press: true})
	case '\n', '\r':
		return k.push(KeyEvent{Code: KeyEnter, Press: true})
	}
	return k.push(KeyEvent{Press: true, Rune: r})
}

// drainPress empties the queue and reports whether any press was in it.
func (k *hostKeyboard) drainPress() bool {
	pressed := false
	for {
		select {
		case ev := <-k.ch:
			if ev.Press {
				pressed = true
			}
		default:
			return pressed
		}
	}
}
