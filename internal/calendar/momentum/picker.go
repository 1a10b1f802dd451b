package momentum

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	SlotMinutes    = 30
	PickerItemSize = 48.0
)

// TimeSlots devuelve "00:00", "00:30", ... "23:30".
func TimeSlots() []string {
	out := make([]string, 0, 24*60/SlotMinutes)
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += SlotMinutes {
			out = append(out, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return out
}

// FormatSlot pasa "HH:MM" a formato de 12 horas ("9:00 AM").
func FormatSlot(slot string) (string, error) {
	hs, ms, ok := strings.Cut(slot, ":")
	if !ok {
		return "", fmt.Errorf("invalid slot %q", slot)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 || h > 23 {
		return "", fmt.Errorf("invalid slot %q", slot)
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 0 || m > 59 {
		return "", fmt.Errorf("invalid slot %q", slot)
	}

	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	dh := h % 12
	if dh == 0 {
		dh = 12
	}
	return fmt.Sprintf("%d:%02d %s", dh, m, period), nil
}

// Picker es la rueda vertical del selector de hora.
type Picker struct {
	slots    []string
	scroller *Scroller
}

// NewPicker arma una rueda de slots de 30 minutos para un viewport de la
// altura dada.
func NewPicker(viewport float64) *Picker {
	slots := TimeSlots()
	p := &Picker{
		slots: slots,
		scroller: NewScroller(Config{
			ItemSize: PickerItemSize,
			Items:    len(slots),
			Viewport: viewport,
		}),
	}
	p.scrollTo(0)
	return p
}

func (p *Picker) Scroller() *Scroller { return p.scroller }

// Value devuelve el slot centrado.
func (p *Picker) Value() string {
	return p.slots[p.scroller.Index()]
}

// Select centra el slot indicado; un valor desconocido centra el primero.
func (p *Picker) Select(slot string) {
	idx := 0
	for i, s := range p.slots {
		if s == slot {
			idx = i
			break
		}
	}
	p.scrollTo(idx)
}

// Wheel avanza o retrocede un slot según el signo de deltaY.
func (p *Picker) Wheel(deltaY float64) string {
	idx := p.scroller.Index()
	if deltaY > 0 {
		idx = min(idx+1, len(p.slots)-1)
	} else {
		idx = max(idx-1, 0)
	}
	p.scrollTo(idx)
	return p.slots[idx]
}

func (p *Picker) scrollTo(idx int) {
	s := p.scroller
	s.mu.Lock()
	off := s.offsetFor(idx)
	s.mu.Unlock()
	s.SetOffset(off)
}
