// Package domain defines the house and creator contracts of the factory.
package domain

// Kind identifies one concrete house variant.
type Kind string

// The closed set of house kinds, one per creator.
const (
	// KindPanel is built by PanelCreator
	KindPanel Kind = "panel"
	// KindWood is built by WoodCreator
	KindWood Kind = "wood"
	// KindBrick is built by BrickCreator
	KindBrick Kind = "brick"
	// KindFoamBlock is built by FoamBlockCreator
	KindFoamBlock Kind = "foam-block"
)

// House is the product built by a Creator
type House interface {
	ID() string
	Kind() Kind
	Message() string
}

// Creator produces exactly one concrete House variant per call.
// Each call returns a new instance owned by the caller.
type Creator interface {
	Produce() House
}

// Reporter receives every freshly built house
type Reporter interface {
	Built(h House)
}

// PanelHouse is built by a panel creator
type PanelHouse struct {
	HouseID string `json:"id"`
}

func (h *PanelHouse) ID() string      { return h.HouseID }
func (h *PanelHouse) Kind() Kind      { return KindPanel }
func (h *PanelHouse) Message() string { return "Panel house built" }

// WoodHouse is built by a wood creator
type WoodHouse struct {
	HouseID string `json:"id"`
}

func (h *WoodHouse) ID() string      { return h.HouseID }
func (h *WoodHouse) Kind() Kind      { return KindWood }
func (h *WoodHouse) Message() string { return "Wooden house built" }

// BrickHouse is built by a brick creator
type BrickHouse struct {
	HouseID string `json:"id"`
}

func (h *BrickHouse) ID() string      { return h.HouseID }
func (h *BrickHouse) Kind() Kind      { return KindBrick }
func (h *BrickHouse) Message() string { return "Brick house built" }

// FoamBlockHouse is built by a foam block creator
type FoamBlockHouse struct {
	HouseID string `json:"id"`
}

func (h *FoamBlockHouse) ID() string      { return h.HouseID }
func (h *FoamBlockHouse) Kind() Kind      { return KindFoamBlock }
func (h *FoamBlockHouse) Message() string { return "Foam block house built" }

// compile-time assertions
var (
	_ House = (*PanelHouse)(nil)
	_ House = (*WoodHouse)(nil)
	_ House = (*BrickHouse)(nil)
	_ House = (*FoamBlockHouse)(nil)
)
