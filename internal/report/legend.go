package report

import (
	"fmt"

	"github.com/mtrachs/neotoma-lakes/internal/domain"
)

// FieldKind declares how a mapped field is colored.
type FieldKind int

const (
	Categorical FieldKind = iota
	Continuous
)

// Field describes one mappable attribute of a lake record. The Value
// accessor returns nil when the record has no value for the field.
type Field struct {
	Name  string
	Kind  FieldKind
	Value func(domain.LakeRecord) *float64
}

// MapFields lists the report's map layers: edit code as categories,
// displacement and area delta on a shared continuous ramp.
func MapFields() []Field {
	return []Field{
		{
			Name: "edit_code",
			Kind: Categorical,
			Value: func(r domain.LakeRecord) *float64 {
				code := r.Code()
				if code == nil {
					return nil
				}
				v := float64(*code)
				return &v
			},
		},
		{
			Name:  "displacement",
			Kind:  Continuous,
			Value: func(r domain.LakeRecord) *float64 { return r.Displacement },
		},
		{
			Name: "area_delta",
			Kind: Continuous,
			Value: func(r domain.LakeRecord) *float64 {
				v := r.AreaDelta
				return &v
			},
		},
	}
}

// Legend assigns a display color to a field value. Null values always map to
// the neutral color so an unreviewed site is visibly distinct.
type Legend interface {
	Color(v *float64) string
}

const neutralColor = "#bdbdbd"

// NewLegend selects the color strategy from the field's declared kind. A
// continuous legend scales to the value range observed in the records.
func NewLegend(f Field, records []domain.LakeRecord) Legend {
	if f.Kind == Categorical {
		return categoricalLegend{palette: editCodePalette}
	}

	l := continuousLegend{ramp: continuousRamp}
	first := true
	for _, r := range records {
		v := f.Value(r)
		if v == nil {
			continue
		}
		if first || *v < l.min {
			l.min = *v
		}
		if first || *v > l.max {
			l.max = *v
		}
		first = false
	}
	return l
}

var editCodePalette = map[int]string{
	int(domain.EditArtifact):  "#9e9e9e",
	int(domain.EditMoved):     "#e4572e",
	int(domain.EditUnchanged): "#76b041",
	int(domain.EditNoMatch):   "#6a4c93",
}

type categoricalLegend struct {
	palette map[int]string
}

func (l categoricalLegend) Color(v *float64) string {
	if v == nil {
		return neutralColor
	}
	if c, ok := l.palette[int(*v)]; ok {
		return c
	}
	return neutralColor
}

// continuousRamp is a light-to-dark sequential ramp (ColorBrewer YlGnBu).
var continuousRamp = []string{"#ffffcc", "#a1dab4", "#41b6c4", "#2c7fb8", "#253494"}

type continuousLegend struct {
	min, max float64
	ramp     []string
}

func (l continuousLegend) Color(v *float64) string {
	if v == nil {
		return neutralColor
	}
	if l.max <= l.min {
		return l.ramp[0]
	}

	t := (*v - l.min) / (l.max - l.min)
	idx := int(t * float64(len(l.ramp)))
	if idx >= len(l.ramp) {
		idx = len(l.ramp) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return l.ramp[idx]
}

func (f Field) layerFilename() string {
	return fmt.Sprintf("layer_%s.geojson", f.Name)
}
