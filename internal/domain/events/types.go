package events

import "encoding/json"

// Color es sólo visual; no afecta comportamiento.
type Color string

const (
	ColorBlue   Color = "#3b82f6"
	ColorGreen  Color = "#10b981"
	ColorRed    Color = "#ef4444"
	ColorPurple Color = "#8b5cf6"
	ColorOrange Color = "#f59e0b"
	ColorPink   Color = "#ec4899"
	ColorYellow Color = "#eab308"
	ColorGray   Color = "#6b7280"

	DefaultColor = ColorBlue
)

// Palette en el orden en que la muestra el cliente.
var Palette = []Color{
	ColorBlue, ColorGreen, ColorRed, ColorPurple,
	ColorOrange, ColorPink, ColorYellow, ColorGray,
}

// Nullable distingue, en un PATCH, "campo no enviado" (Present=false) de
// "campo enviado como null" (Present=true, Value=nil).
type Nullable[T any] struct {
	Present bool
	Value   *T
}

func Set[T any](v T) Nullable[T] {
	return Nullable[T]{Present: true, Value: &v}
}

func Null[T any]() Nullable[T] {
	return Nullable[T]{Present: true}
}

// UnmarshalJSON sólo se invoca cuando la clave está en el JSON.
func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Present = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}
