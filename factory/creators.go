// Package factory provides the concrete house creators and the build routine.
package factory

import (
	"housefactory/domain"
	"housefactory/util"
)

// PanelCreator produces PanelHouse instances
type PanelCreator struct {
	reporter domain.Reporter
}

// NewPanelCreator constructs a PanelCreator reporting to r
func NewPanelCreator(r domain.Reporter) *PanelCreator {
	return &PanelCreator{reporter: r}
}

// Produce builds a new PanelHouse and reports it once.
// A nil receiver still builds but reports nothing.
func (c *PanelCreator) Produce() domain.House {
	h := &domain.PanelHouse{HouseID: util.NewHouseID()}
	if c.valid() {
		report(c.reporter, h)
	}
	return h
}

func (c *PanelCreator) valid() bool { return c != nil }

// WoodCreator produces WoodHouse instances
type WoodCreator struct {
	reporter domain.Reporter
}

// NewWoodCreator constructs a WoodCreator reporting to r
func NewWoodCreator(r domain.Reporter) *WoodCreator {
	return &WoodCreator{reporter: r}
}

// Produce builds a new WoodHouse and reports it once.
// A nil receiver still builds but reports nothing.
func (c *WoodCreator) Produce() domain.House {
	h := &domain.WoodHouse{HouseID: util.NewHouseID()}
	if c.valid() {
		report(c.reporter, h)
	}
	return h
}

func (c *WoodCreator) valid() bool { return c != nil }

// BrickCreator produces BrickHouse instances
type BrickCreator struct {
	reporter domain.Reporter
}

// NewBrickCreator constructs a BrickCreator reporting to r
func NewBrickCreator(r domain.Reporter) *BrickCreator {
	return &BrickCreator{reporter: r}
}

// Produce builds a new BrickHouse and reports it once.
// A nil receiver still builds but reports nothing.
func (c *BrickCreator) Produce() domain.House {
	h := &domain.BrickHouse{HouseID: util.NewHouseID()}
	if c.valid() {
		report(c.reporter, h)
	}
	return h
}

func (c *BrickCreator) valid() bool { return c != nil }

// FoamBlockCreator produces FoamBlockHouse instances
type FoamBlockCreator struct {
	reporter domain.Reporter
}

// NewFoamBlockCreator constructs a FoamBlockCreator reporting to r
func NewFoamBlockCreator(r domain.Reporter) *FoamBlockCreator {
	return &FoamBlockCreator{reporter: r}
}

// Produce builds a new FoamBlockHouse and reports it once.
// A nil receiver still builds but reports nothing.
func (c *FoamBlockCreator) Produce() domain.House {
	h := &domain.FoamBlockHouse{HouseID: util.NewHouseID()}
	if c.valid() {
		report(c.reporter, h)
	}
	return h
}

func (c *FoamBlockCreator) valid() bool { return c != nil }

// compile-time assertions that every creator implements domain.Creator
var (
	_ domain.Creator = (*PanelCreator)(nil)
	_ domain.Creator = (*WoodCreator)(nil)
	_ domain.Creator = (*BrickCreator)(nil)
	_ domain.Creator = (*FoamBlockCreator)(nil)
)

// report tolerates a zero-value creator with no reporter set.
func report(r domain.Reporter, h domain.House) {
	if r != nil {
		r.Built(h)
	}
}
