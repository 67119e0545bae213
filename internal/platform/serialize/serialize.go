// Package serialize convierte records del dominio en mappings
// ordenados nombre→valor listos para codificar como JSON.
//
// Cada tipo de record declara su lista de campos una sola vez vía
// Fields(); no hay descubrimiento por reflection ni campos dinámicos.
package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field es un par nombre/valor de un record.
type Field struct {
	Name  string
	Value any
}

// Serializable es la capacidad que implementa cada tipo de record:
// devolver su lista de campos declarada, en orden estable.
type Serializable interface {
	Fields() []Field
}

// Options configura la serialización de un record.
// En el core mínimo no se configura nada: todos los campos salen.
type Options struct {
	// Exclude omite campos por nombre (deny-list).
	Exclude []string
}

// TypeMismatchError indica que el valor de un campo no es representable
// como escalar JSON (string/number/boolean/null).
type TypeMismatchError struct {
	Field string
	Value any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("serialize: field %q has unsupported type %T", e.Field, e.Value)
}

// Dict es un mapping ordenado nombre→valor. Preserva el orden de
// declaración del record al codificar a JSON (map nativo no lo haría).
type Dict struct {
	fields []Field
}

func (d Dict) Len() int { return len(d.fields) }

// Names devuelve los nombres de campo en orden de declaración.
func (d Dict) Names() []string {
	out := make([]string, 0, len(d.fields))
	for _, f := range d.fields {
		out = append(out, f.Name)
	}
	return out
}

// Get devuelve el valor de un campo por nombre.
func (d Dict) Get(name string) (any, bool) {
	for _, f := range d.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON codifica el dict como objeto JSON en orden de declaración.
func (d Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Record serializa un record con la configuración por defecto
// (sin exclusiones). Pura: no muta el record ni guarda estado.
func Record(v Serializable) (Dict, error) {
	return RecordWith(v, Options{})
}

// RecordWith serializa un record aplicando Options.
func RecordWith(v Serializable, opts Options) (Dict, error) {
	declared := v.Fields()
	out := make([]Field, 0, len(declared))

	for _, f := range declared {
		if excluded(opts.Exclude, f.Name) {
			continue
		}
		val, err := scalar(f)
		if err != nil {
			return Dict{}, err
		}
		out = append(out, Field{Name: f.Name, Value: val})
	}

	return Dict{fields: out}, nil
}

// Records serializa una colección, record por record, preservando el
// orden de entrada (el que haya devuelto el storage).
func Records(vs []Serializable) ([]Dict, error) {
	out := make([]Dict, 0, len(vs))
	for _, v := range vs {
		d, err := Record(v)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Collect es el equivalente genérico de Records para slices de tipos
// concretos ([]pets.Pet, etc.) sin convertir a []Serializable a mano.
func Collect[T Serializable](vs []T) ([]Dict, error) {
	out := make([]Dict, 0, len(vs))
	for _, v := range vs {
		d, err := Record(v)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func excluded(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// scalar valida que el valor sea un escalar representable y devuelve su
// representación nativa. Punteros nil => null JSON.
func scalar(f Field) (any, error) {
	switch v := f.Value.(type) {
	case nil:
		return nil, nil
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v, nil
	case *string:
		return deref(v), nil
	case *bool:
		return deref(v), nil
	case *int:
		return deref(v), nil
	case *int8:
		return deref(v), nil
	case *int16:
		return deref(v), nil
	case *int32:
		return deref(v), nil
	case *int64:
		return deref(v), nil
	case *uint:
		return deref(v), nil
	case *uint8:
		return deref(v), nil
	case *uint16:
		return deref(v), nil
	case *uint32:
		return deref(v), nil
	case *uint64:
		return deref(v), nil
	case *float32:
		return deref(v), nil
	case *float64:
		return deref(v), nil
	default:
		return nil, &TypeMismatchError{Field: f.Name, Value: f.Value}
	}
}

// deref desreferencia un puntero a escalar; nil => null JSON.
func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
