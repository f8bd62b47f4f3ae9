package model

import (
	"github.com/soocke/collage-go/domain/bitmap"
)

// Slot identifies one of the two collage inputs.
type Slot int

const (
	SlotA Slot = iota // main photo, large upper zone
	SlotB             // small centered zone at the bottom
)

func (s Slot) String() string {
	switch s {
	case SlotA:
		return "A"
	case SlotB:
		return "B"
	default:
		return "?"
	}
}

// Valid reports whether s names one of the two slots.
func (s Slot) Valid() bool { return s == SlotA || s == SlotB }

// SlotListener is called after every slot change with the slot that changed.
// Reset reports SlotA once; listeners needing both slots read them back.
type SlotListener func(changed Slot)

// SlotModel holds the bitmaps for both slots. It is created empty and is not
// safe for concurrent use; all mutation happens on the UI goroutine.
// The zero value is ready to use.
type SlotModel struct {
	slots     [2]*bitmap.Bitmap
	listeners []SlotListener
}

// NewSlotModel returns an empty model.
func NewSlotModel() *SlotModel { return &SlotModel{} }

// OnChange registers l. Listeners run in registration order.
func (m *SlotModel) OnChange(l SlotListener) {
	if m == nil || l == nil {
		return
	}
	m.listeners = append(m.listeners, l)
}

// Get returns the bitmap in s or nil.
func (m *SlotModel) Get(s Slot) *bitmap.Bitmap {
	if m == nil || !s.Valid() {
		return nil
	}
	return m.slots[s]
}

// Both returns the bitmaps of SlotA and SlotB.
func (m *SlotModel) Both() (a, b *bitmap.Bitmap) {
	if m == nil {
		return nil, nil
	}
	return m.slots[SlotA], m.slots[SlotB]
}

// Empty reports whether neither slot holds a bitmap.
func (m *SlotModel) Empty() bool {
	a, b := m.Both()
	return a == nil && b == nil
}

// Set replaces the bitmap in s and notifies listeners once. A nil bm
// clears the slot.
func (m *SlotModel) Set(s Slot, bm *bitmap.Bitmap) {
	if m == nil || !s.Valid() {
		return
	}
	m.slots[s] = bm
	m.notify(s)
}

// Reset clears both slots with a single notification.
func (m *SlotModel) Reset() {
	if m == nil {
		return
	}
	m.slots = [2]*bitmap.Bitmap{}
	m.notify(SlotA)
}

func (m *SlotModel) notify(s Slot) {
	for _, l := range m.listeners {
		l(s)
	}
}
