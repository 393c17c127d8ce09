package factory

import (
	"housefactory/domain"
	"reflect"
	"strings"
)

// Variant describes one creator/house pairing.
type Variant struct {
	Kind    domain.Kind `json:"kind" yaml:"kind"`
	Creator string      `json:"creator" yaml:"creator"`
	House   string      `json:"house" yaml:"house"`
	Message string      `json:"message" yaml:"message"`
}

// pairings is the closed creator/house table in demonstration order.
var pairings = []struct {
	creator domain.Creator
	house   domain.House
}{
	{(*PanelCreator)(nil), &domain.PanelHouse{}},
	{(*WoodCreator)(nil), &domain.WoodHouse{}},
	{(*BrickCreator)(nil), &domain.BrickHouse{}},
	{(*FoamBlockCreator)(nil), &domain.FoamBlockHouse{}},
}

// Kinds returns every house kind in demonstration order.
func Kinds() []domain.Kind {
	out := make([]domain.Kind, 0, len(pairings))
	for _, p := range pairings {
		out = append(out, p.house.Kind())
	}
	return out
}

// Variants describes the creator/house table in demonstration order.
func Variants() []Variant {
	out := make([]Variant, 0, len(pairings))
	for _, p := range pairings {
		out = append(out, Variant{
			Kind:    p.house.Kind(),
			Creator: reflect.TypeOf(p.creator).Elem().Name(),
			House:   reflect.TypeOf(p.house).Elem().Name(),
			Message: p.house.Message(),
		})
	}
	return out
}

// ParseKind resolves a kind name without building anything.
// Matching is case-insensitive and accepts a few spelling aliases.
func ParseKind(kind string) (domain.Kind, error) {
	switch k := domain.Kind(strings.ToLower(strings.TrimSpace(kind))); k {
	case domain.KindPanel, domain.KindWood, domain.KindBrick, domain.KindFoamBlock:
		return k, nil
	case "wooden":
		return domain.KindWood, nil
	case "foam", "foamblock":
		return domain.KindFoamBlock, nil
	default:
		return "", domain.NewUnknownKindError(kind)
	}
}

// NewCreator constructs a domain.Creator by kind: "panel", "wood", "brick" or "foam-block".
func NewCreator(kind string, r domain.Reporter) (domain.Creator, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	switch k {
	case domain.KindPanel:
		return NewPanelCreator(r), nil
	case domain.KindWood:
		return NewWoodCreator(r), nil
	case domain.KindBrick:
		return NewBrickCreator(r), nil
	default:
		return NewFoamBlockCreator(r), nil
	}
}

// validator is implemented by creators that can detect a nil receiver.
type validator interface {
	valid() bool
}

// Build hands c's product back to the caller without knowing which variant c is.
func Build(c domain.Creator) (domain.House, error) {
	if c == nil {
		return nil, domain.NewInvalidReferenceError("build")
	}
	if v, ok := c.(validator); ok && !v.valid() {
		return nil, domain.NewInvalidReferenceError("build")
	}
	return c.Produce(), nil
}
